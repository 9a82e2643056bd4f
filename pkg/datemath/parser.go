package datemath

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Date layouts in priority order: yyyy-MM-dd, dd/MM/yyyy, d/M/yyyy,
// MM/dd/yyyy, M/d/yyyy, yyyy/MM/dd, yyyy/M/d.
var dateLayouts = []string{
	"2006-01-02", // 2019-12-02
	"02/01/2006", // 02/12/2019
	"2/1/2006",   // 2/12/2019
	"01/02/2006", // 12/02/2019
	"1/2/2006",   // 12/2/2019
	"2006/01/02", // 2019/12/02
	"2006/1/2",   // 2019/12/2
}

// Time layouts in priority order: HHmm, HH:mm, h:mma, h:mm a, ha, h a.
var timeLayouts = []string{
	"1504",    // 1800
	"15:04",   // 18:00
	"3:04PM",  // 6:00PM
	"3:04 PM", // 6:00 PM
	"3PM",     // 6PM
	"3 PM",    // 6 PM
}

// ISO-8601 local date-time, used when the input has more than two tokens.
var isoLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

const (
	defaultHour   = 23
	defaultMinute = 59
)

// Resolver converts free-form date and date-time strings to time.Time values
// in a fixed location, trying a fixed, ordered list of layouts.
type Resolver struct {
	location *time.Location
	cache    *expirable.LRU[string, time.Time]
	clock    func() time.Time
}

// NewResolver creates a resolver for the given IANA timezone string, or
// "Local" for the system zone. e.g. "Asia/Singapore"
func NewResolver(timezone string, opts ...Option) (*Resolver, error) {
	if timezone == "" {
		timezone = "Local"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidZone, timezone, err)
	}

	r := &Resolver{location: loc}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Location returns the zone resolved values live in.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// ResolveDate parses text as a calendar date and returns midnight of that day.
// The first layout that consumes the entire string wins.
func (r *Resolver) ResolveDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	return r.cached("d|"+text, func() (time.Time, bool, error) {
		return r.resolveDate(text)
	})
}

// ResolveDateTime parses text as a date with an optional time of day.
//
// One token is a date at 23:59, two tokens are a date and a time, and
// anything longer must be an ISO-8601 local date-time literal. With relative
// dates enabled, a whole phrase like "next monday" is a date at 23:59.
func (r *Resolver) ResolveDateTime(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	return r.cached("dt|"+text, func() (time.Time, bool, error) {
		return r.resolveDateTime(text)
	})
}

// EndOfDay returns 23:59 on the day of t in the resolver's location.
func (r *Resolver) EndOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), defaultHour, defaultMinute, 0, 0, r.location)
}

// resolveDate reports whether the result is stable and may be cached;
// relative words depend on the clock and never are.
func (r *Resolver) resolveDate(text string) (time.Time, bool, error) {
	for _, layout := range dateLayouts {
		if d, err := time.ParseInLocation(layout, text, r.location); err == nil {
			return d, true, nil
		}
	}

	if r.clock != nil {
		if d, ok := r.parseRelative(text, r.clock()); ok {
			return d, false, nil
		}
	}

	return time.Time{}, false, &ParseError{Err: ErrDateFormat, Input: text}
}

func (r *Resolver) resolveDateTime(text string) (time.Time, bool, error) {
	parts := strings.Fields(text)
	fail := &ParseError{Err: ErrDateTimeFormat, Input: text}

	// Multi-word phrases such as "in 3 days" would otherwise be split.
	if r.clock != nil && len(parts) > 1 {
		if d, ok := r.parseRelative(strings.Join(parts, " "), r.clock()); ok {
			return r.EndOfDay(d), false, nil
		}
	}

	switch len(parts) {
	case 0:
		return time.Time{}, false, fail
	case 1:
		d, stable, err := r.resolveDate(parts[0])
		if err != nil {
			return time.Time{}, false, fail
		}
		return r.EndOfDay(d), stable, nil
	case 2:
		d, stable, err := r.resolveDate(parts[0])
		if err != nil {
			return time.Time{}, false, fail
		}
		hour, minute, err := parseTime(parts[1])
		if err != nil {
			return time.Time{}, false, fail
		}
		return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, r.location), stable, nil
	default:
		for _, layout := range isoLayouts {
			if dt, err := time.ParseInLocation(layout, text, r.location); err == nil {
				return dt, true, nil
			}
		}
		return time.Time{}, false, fail
	}
}

// parseTime upper-cases the meridiem marker and separates it from the digits
// before trying each time layout.
func parseTime(text string) (int, int, error) {
	normalized := strings.ToUpper(text)
	normalized = strings.ReplaceAll(normalized, "PM", " PM")
	normalized = strings.ReplaceAll(normalized, "AM", " AM")

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, &ParseError{Err: ErrTimeFormat, Input: text}
}

// cached memoizes successful, stable resolutions. Failures are never stored.
func (r *Resolver) cached(key string, resolve func() (time.Time, bool, error)) (time.Time, error) {
	if r.cache != nil {
		if t, ok := r.cache.Get(key); ok {
			return t, nil
		}
	}
	t, stable, err := resolve()
	if err != nil {
		return time.Time{}, err
	}
	if r.cache != nil && stable {
		r.cache.Add(key, t)
	}
	return t, nil
}
