// Package timezone keeps every timestamp the service produces in one configured location.
//
//	timezone.Init(cfg.App.Timezone)
//	now := timezone.Now()
//	formatted := timezone.Format(now, time.RFC3339)
//
// The location is read from APP_TIMEZONE and defaults to UTC.
package timezone
