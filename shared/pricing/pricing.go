// Package pricing turns a ride duration into a charge in rupees.
package pricing

const (
	BaseFare        = 10
	ShortRideFare   = 20
	ExtraBlockFare  = 39
	BaseWindow      = 15
	ShortRideWindow = 30
	ExtraBlock      = 30
)

// Cost returns the fare for a ride of the given whole minutes.
// Up to 15 minutes costs 10, up to 30 costs 20, and each started
// 30 minute block beyond that adds 39. Negative input counts as zero.
func Cost(minutes int) int {
	if minutes < 0 {
		minutes = 0
	}

	switch {
	case minutes <= BaseWindow:
		return BaseFare
	case minutes <= ShortRideWindow:
		return ShortRideFare
	}

	extra := minutes - ShortRideWindow
	blocks := (extra + ExtraBlock - 1) / ExtraBlock

	return ShortRideFare + blocks*ExtraBlockFare
}
