package render

import (
	"errors"
	"time"
)

// TimeLayout renders like en-US short date with long time, e.g. "3/14/26, 9:05:00 AM JST".
const TimeLayout = "1/2/06, 3:04:05 PM MST"

var errLocalZone = errors.New("ambiguous timezone identifier")

// FormatLocalTime formats now in the IANA timezone as a "local time" hint
// for the named destination.
func FormatLocalTime(now time.Time, timezone, name string) (string, error) {
	if timezone == "Local" {
		return "", errLocalZone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", err
	}
	return "Local time in " + name + ": " + now.In(loc).Format(TimeLayout), nil
}
