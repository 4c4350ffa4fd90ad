package timezone

import "time"

// DefaultTimezone is the clinic's wall-clock zone. Queue dates are calendar
// days in this zone, not UTC.
const DefaultTimezone = "Asia/Kolkata"

// DayFormat is the canonical calendar-day layout. Day strings in this format
// compare correctly with plain string ordering, which is what the follow-up
// due check relies on.
const DayFormat = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Day renders t as a calendar-day string.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}
