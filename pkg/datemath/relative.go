package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

var inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// WithCache memoizes successful resolutions in an LRU of the given size.
// A ttl <= 0 keeps entries until they are evicted by size.
func WithCache(size int, ttl time.Duration) Option {
	return func(r *Resolver) {
		if size <= 0 {
			return
		}
		r.cache = expirable.NewLRU[string, time.Time](size, nil, ttl)
	}
}

// WithRelativeDates lets ResolveDate accept today, tomorrow, yesterday,
// "in N days/weeks/months" and "next <weekday>" once every fixed layout
// has failed. ResolveDateTime accepts the same phrases, at 23:59, and a
// single relative word followed by a time ("tomorrow 0900"). clock supplies
// the reference time.
func WithRelativeDates(clock func() time.Time) Option {
	return func(r *Resolver) {
		r.clock = clock
	}
}

// parseRelative converts a relative date phrase to midnight of the target day.
func (r *Resolver) parseRelative(text string, base time.Time) (time.Time, bool) {
	text = strings.ToLower(strings.TrimSpace(text))

	switch text {
	case "today":
		return r.startOfDay(base), true
	case "tomorrow":
		return r.startOfDay(base.AddDate(0, 0, 1)), true
	case "yesterday":
		return r.startOfDay(base.AddDate(0, 0, -1)), true
	}

	if strings.HasPrefix(text, "in ") {
		return r.parseInDuration(text, base)
	}
	if strings.HasPrefix(text, "next ") {
		return r.parseNextWeekday(text, base)
	}
	return time.Time{}, false
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (r *Resolver) parseInDuration(text string, base time.Time) (time.Time, bool) {
	matches := inDurationPattern.FindStringSubmatch(text)
	if len(matches) != 3 {
		return time.Time{}, false
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, false
	}

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return r.startOfDay(base.AddDate(0, 0, amount)), true
	case strings.HasPrefix(unit, "week"):
		return r.startOfDay(base.AddDate(0, 0, amount*7)), true
	default:
		return r.startOfDay(base.AddDate(0, amount, 0)), true
	}
}

// parseNextWeekday handles patterns like "next monday". The same weekday
// as base means one week later.
func (r *Resolver) parseNextWeekday(text string, base time.Time) (time.Time, bool) {
	target, ok := weekdays[strings.TrimPrefix(text, "next ")]
	if !ok {
		return time.Time{}, false
	}

	base = base.In(r.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return r.startOfDay(base.AddDate(0, 0, daysUntil)), true
}

// startOfDay returns midnight at the start of the given day in the resolver's timezone.
func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}
