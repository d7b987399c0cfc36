package client

import (
	"context"
	"net/url"
	"regexp"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

// AttendanceStatus is a single calendar day's mark.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceHoliday AttendanceStatus = "holiday"
)

type AttendanceDay struct {
	Date   string           `json:"date"` // YYYY-MM-DD
	Status AttendanceStatus `json:"status"`
	Remark null.String      `json:"remark,omitempty"`
}

var monthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Attendance fetches the calendar for a month given as "YYYY-MM".
func (c *Client) Attendance(ctx context.Context, month string) ([]AttendanceDay, error) {
	if !monthRegex.MatchString(month) {
		return nil, errors.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	var days []AttendanceDay
	if err := c.get(ctx, "/attendance?month="+url.QueryEscape(month), &days); err != nil {
		return nil, err
	}
	return days, nil
}
