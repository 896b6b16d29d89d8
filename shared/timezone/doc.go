// Package timezone pins the service to the single zone configured in APP_TIMEZONE.
//
//	now := timezone.Now()
//	day, err := timezone.Parse(time.DateOnly, "2024-03-10")
//	first, last := timezone.MonthRange(day)
//
// Calendar dates read back from Postgres DATE columns carry no zone information and
// must be formatted as-is, not through Format, or they can shift by a day.
package timezone
