package model

// Topics published on the notification bus.
const (
	TopicNewBooking        = "newBooking"
	TopicRideStarted       = "rideStarted"
	TopicRideStopped       = "rideStopped"
	TopicCycleStatusUpdate = "cycleStatusUpdate"
)

var Topics = []string{
	TopicNewBooking,
	TopicRideStarted,
	TopicRideStopped,
	TopicCycleStatusUpdate,
}
