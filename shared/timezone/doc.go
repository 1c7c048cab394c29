// Package timezone holds the application clock. Every date-sensitive
// derivation in the engine (event-day boundaries, payment-status cutoffs,
// audit timestamps) runs in a single configured location so that a booking's
// "day after the event" means the same instant regardless of where the
// server or the operator sits.
//
//	now := timezone.Now()                  // current time in the app timezone
//	local := timezone.ToAppTime(someTime)  // shift any time into it
//	day, err := timezone.Parse("2006-01-02", "2026-06-15")
//
// The location is read from APP_TIMEZONE when the package is imported and
// must be an IANA name ("UTC", "America/Chicago", "Asia/Jakarta"). Fixed
// numeric offsets are not accepted because day-boundary math has to follow
// DST transitions.
package timezone
