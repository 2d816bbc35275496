package usecase

import (
	"fmt"
	"time"

	"BrentDash/internal/domain/models"
	"BrentDash/pkg/util"
)

// Dated is a record carrying a calendar date.
type Dated interface {
	Day() models.Date
}

// DateRange is an inclusive calendar range. A zero bound is open.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange parses optional YYYY-MM-DD bounds. Empty strings leave the side open.
func NewDateRange(start, end string) (DateRange, error) {
	var r DateRange
	if start != "" {
		t, err := time.Parse(util.DateLayout, start)
		if err != nil {
			return r, fmt.Errorf("start date: %w", err)
		}
		r.Start = t
	}
	if end != "" {
		t, err := time.Parse(util.DateLayout, end)
		if err != nil {
			return r, fmt.Errorf("end date: %w", err)
		}
		r.End = t
	}
	return r, nil
}

func (r DateRange) Unbounded() bool { return r.Start.IsZero() && r.End.IsZero() }

// Contains reports whether d falls inside the range. Undated records are outside any bounded range.
func (r DateRange) Contains(d models.Date) bool {
	if r.Unbounded() {
		return true
	}
	if !d.Valid() {
		return false
	}
	if !r.Start.IsZero() && d.Time.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && d.Time.After(r.End) {
		return false
	}
	return true
}

// FilterByDateRange keeps the items whose date lies in r. An unbounded range returns items as is.
func FilterByDateRange[T Dated](items []T, r DateRange) []T {
	if r.Unbounded() {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if r.Contains(it.Day()) {
			out = append(out, it)
		}
	}
	return out
}

// FilterEvents keeps events matching eventType and source. "All" (or empty) matches anything.
// The source selection matches either the event's Source or its Region.
func FilterEvents(events []models.Event, eventType, source string) []models.Event {
	anyType := isAll(eventType)
	anySource := isAll(source)
	if anyType && anySource {
		return events
	}
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !anyType && e.Type != eventType {
			continue
		}
		if !anySource && e.Source != source && e.Region != source {
			continue
		}
		out = append(out, e)
	}
	return out
}

func isAll(sel string) bool { return sel == "" || sel == models.All }

// DropdownOptions returns "All" followed by the distinct values of field across events,
// in first-seen order. Supported fields are type, source and region.
func DropdownOptions(events []models.Event, field string) []string {
	opts := []string{models.All}
	get := eventField(field)
	if get == nil {
		return opts
	}
	seen := map[string]struct{}{models.All: {}}
	for _, e := range events {
		v := get(e)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		opts = append(opts, v)
	}
	return opts
}

func eventField(field string) func(models.Event) string {
	switch field {
	case "type":
		return func(e models.Event) string { return e.Type }
	case "source":
		return func(e models.Event) string { return e.Source }
	case "region":
		return func(e models.Event) string { return e.Region }
	default:
		return nil
	}
}
