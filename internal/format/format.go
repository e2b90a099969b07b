// Package format provides locale-aware date and label formatting for
// rendered reports. All helpers are pure; the rendering locale is pt-BR.
package format

import (
	"bytes"
	"fmt"
	"time"
)

// monthNames maps month numbers (1-12) to their pt-BR names.
var monthNames = [13]string{
	1:  "Janeiro",
	2:  "Fevereiro",
	3:  "Março",
	4:  "Abril",
	5:  "Maio",
	6:  "Junho",
	7:  "Julho",
	8:  "Agosto",
	9:  "Setembro",
	10: "Outubro",
	11: "Novembro",
	12: "Dezembro",
}

// MonthName returns the pt-BR name for a 1-indexed month number,
// or an empty string when the month is out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month]
}

// Date is a calendar date or timestamp pinned to UTC. Bare dates
// ("2006-01-02") are interpreted at midnight UTC so that rendering never
// shifts the displayed day in negative-offset timezones.
type Date struct {
	time.Time
}

// ParseDate parses a bare date or an RFC3339 timestamp. Timestamps are
// normalized to UTC.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	return Date{t.UTC()}, nil
}

// UnmarshalJSON accepts bare dates and RFC3339 timestamps. Null and the
// empty string decode to the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		*d = Date{}
		return nil
	}
	var s string
	if err := jsonUnquote(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON renders the underlying instant as RFC3339 in UTC.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.UTC().Format(time.RFC3339) + `"`), nil
}

// Display renders the date as DD/MM/YYYY.
func (d Date) Display() string {
	return d.UTC().Format("02/01/2006")
}

// Month returns the 1-indexed month in UTC.
func (d Date) Month() int { return int(d.UTC().Month()) }

// Year returns the calendar year in UTC.
func (d Date) Year() int { return d.UTC().Year() }

// DisplayDate renders a timestamp as DD/MM/YYYY in UTC.
func DisplayDate(t time.Time) string {
	return t.UTC().Format("02/01/2006")
}

// TimeRange renders a reservation window as "HH:MM - HH:MM" in UTC.
func TimeRange(start, end time.Time) string {
	return start.UTC().Format("15:04") + " - " + end.UTC().Format("15:04")
}

// jsonUnquote strips the surrounding quotes of a JSON string literal.
func jsonUnquote(data []byte, out *string) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid JSON string %s", data)
	}
	*out = string(data[1 : len(data)-1])
	return nil
}
