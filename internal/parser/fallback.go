package parser

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/pkg/datemath"
	pkgLog "smart-todo-backend/pkg/log"
)

// ruleEngine is the deterministic fallback extractor. It never fails; at
// worst the result carries the sentinel title and nothing else.
type ruleEngine struct {
	l pkgLog.Logger
}

var priorityPatterns = []struct {
	level string
	re    *regexp.Regexp
}{
	{model.PriorityHigh, regexp.MustCompile(`(?i)\b(high|urgent|important|critical)\s*priority\b`)},
	{model.PriorityMedium, regexp.MustCompile(`(?i)\b(medium|normal)\s*priority\b`)},
	{model.PriorityLow, regexp.MustCompile(`(?i)\b(low|minor)\s*priority\b`)},
}

// datePattern pairs a matcher with its resolver. Patterns are evaluated in
// order with first-match-wins semantics; the order encodes disambiguation
// ("next week" must be tested before a bare weekday would be).
type datePattern struct {
	re      *regexp.Regexp
	resolve func(m []string, now time.Time) (time.Time, error)
}

var datePatterns = buildDatePatterns()

func buildDatePatterns() []datePattern {
	patterns := []datePattern{
		{
			re: regexp.MustCompile(`(?i)\b(today)\b`),
			resolve: func(m []string, now time.Time) (time.Time, error) {
				return datemath.EndOfDay(now), nil
			},
		},
		{
			re: regexp.MustCompile(`(?i)\b(tomorrow)\b`),
			resolve: func(m []string, now time.Time) (time.Time, error) {
				return now.AddDate(0, 0, 1), nil
			},
		},
	}

	weekdays := []struct {
		name string
		day  time.Weekday
	}{
		{"monday", time.Monday},
		{"tuesday", time.Tuesday},
		{"wednesday", time.Wednesday},
		{"thursday", time.Thursday},
		{"friday", time.Friday},
		{"saturday", time.Saturday},
		{"sunday", time.Sunday},
	}
	for _, wd := range weekdays {
		day := wd.day
		patterns = append(patterns, datePattern{
			re: regexp.MustCompile(`(?i)\b(next ` + wd.name + `)\b`),
			resolve: func(m []string, now time.Time) (time.Time, error) {
				return datemath.NextWeekday(day, now), nil
			},
		})
	}

	patterns = append(patterns,
		datePattern{
			re: regexp.MustCompile(`(?i)\b(next week)\b`),
			resolve: func(m []string, now time.Time) (time.Time, error) {
				return now.AddDate(0, 0, 7), nil
			},
		},
		datePattern{
			re: regexp.MustCompile(`(?i)\bin (\d+) days?\b`),
			resolve: func(m []string, now time.Time) (time.Time, error) {
				n, err := strconv.Atoi(m[1])
				if err != nil {
					return time.Time{}, err
				}
				return now.AddDate(0, 0, n), nil
			},
		},
		datePattern{
			re: regexp.MustCompile(`(?i)\bin (\d+) hours?\b`),
			resolve: func(m []string, now time.Time) (time.Time, error) {
				n, err := strconv.Atoi(m[1])
				if err != nil {
					return time.Time{}, err
				}
				return now.Add(time.Duration(n) * time.Hour), nil
			},
		},
	)

	return patterns
}

var (
	timeOfDayRe  = regexp.MustCompile(`(?i)\b(?:at\s*)?(\d{1,2})(?::(\d{2}))?\s*(am|pm|noon|midnight)\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	prefixRe     = regexp.MustCompile(`(?i)^(remind me to|remember to|don't forget to)\s+`)
)

// Extract runs the ordered rule pipeline: priority, date, time-of-day,
// title cleanup. Each step removes its matched span from the working text
// before the next step runs.
func (e *ruleEngine) Extract(ctx context.Context, text string, tzOffsetMinutes *int) model.StructuredTask {
	now := datemath.Now(tzOffsetMinutes)
	working := text

	var result model.StructuredTask

	// Priority: first matching level wins.
	for _, p := range priorityPatterns {
		if p.re.MatchString(working) {
			result.Priority = p.level
			working = strings.TrimSpace(p.re.ReplaceAllString(working, ""))
			break
		}
	}

	// Date: ordered patterns, first match wins. A pattern whose resolver
	// errors is skipped so a single bad expression never aborts extraction.
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(working)
		if m == nil {
			continue
		}
		due, err := p.resolve(m, now)
		if err != nil {
			e.l.Warnf(ctx, "parser: failed to resolve date pattern %q in %q: %v", p.re.String(), working, err)
			continue
		}
		result.DueDate = &due
		span := p.re.FindStringIndex(working)
		working = working[:span[0]] + working[span[1]:]
		break
	}

	// Time of day: only meaningful once a date is known.
	if result.DueDate != nil {
		working = e.applyTimeOfDay(ctx, working, &result)
	}

	// Title cleanup: collapse whitespace, strip conversational prefixes.
	working = strings.TrimSpace(whitespaceRe.ReplaceAllString(working, " "))
	working = prefixRe.ReplaceAllString(working, "")
	if working == "" {
		working = model.DefaultTaskTitle
	}
	result.Title = working

	return result
}

// applyTimeOfDay overwrites the hour/minute of the extracted due date when
// the text names an explicit time, and returns the text with that span
// removed. Out-of-range values (e.g. "15pm") leave the date untouched.
func (e *ruleEngine) applyTimeOfDay(ctx context.Context, working string, result *model.StructuredTask) string {
	m := timeOfDayRe.FindStringSubmatch(working)
	if m == nil {
		return working
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return working
	}
	minute := 0
	if m[2] != "" {
		if minute, err = strconv.Atoi(m[2]); err != nil {
			return working
		}
	}

	switch strings.ToLower(m[3]) {
	case "noon":
		hour, minute = 12, 0
	case "midnight":
		hour, minute = 0, 0
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		e.l.Warnf(ctx, "parser: skipping out-of-range time of day %q", m[0])
		return working
	}

	d := *result.DueDate
	due := time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
	result.DueDate = &due

	span := timeOfDayRe.FindStringIndex(working)
	return working[:span[0]] + working[span[1]:]
}
