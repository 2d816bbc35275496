package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"BrentDash/pkg/util"
)

// Date is a calendar date. Raw keeps the upstream text for display; Time is zero when Raw did not parse.
type Date struct {
	Raw  string
	Time time.Time
}

// NewDate parses s. Unparseable input is kept as Raw with a zero Time.
func NewDate(s string) Date {
	t, _ := util.ParseDate(s)
	return Date{Raw: s, Time: t}
}

func (d Date) Valid() bool { return !d.Time.IsZero() }

// String renders the date as YYYY-MM-DD, or the raw text when it did not parse.
func (d Date) String() string {
	if d.Valid() {
		return d.Time.Format(util.DateLayout)
	}
	return d.Raw
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	*d = NewDate(s)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Impact is a nullable number. Upstream sends numbers, numeric strings, "" or null.
// Anything else (free text like "5-10", booleans) decodes as not available.
type Impact struct {
	Value float64
	Valid bool
}

func ImpactOf(v float64) Impact { return Impact{Value: v, Valid: true} }

func (i *Impact) UnmarshalJSON(b []byte) error {
	*i = Impact{}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("impact: %w", err)
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "%")
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*i = ImpactOf(v)
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err == nil && !bytes.Equal(b, []byte("null")) {
		*i = ImpactOf(v)
	}
	return nil
}

func (i Impact) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(i.Value)
}

func (i Impact) String() string {
	if !i.Valid {
		return "n/a"
	}
	return strconv.FormatFloat(i.Value, 'f', -1, 64)
}
