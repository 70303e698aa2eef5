package parser_test

import (
	"context"
	"testing"
	"time"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/parser"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// newFallbackOnly builds a parser with no remote client, so Parse runs the
// rule-based extractor directly.
func newFallbackOnly() parser.Parser {
	return parser.New(&mockLogger{}, nil)
}

func TestFallback_Simple(t *testing.T) {
	p := newFallbackOnly()

	result := p.Parse(context.Background(), "Call mom", nil)

	if result.Title != "Call mom" {
		t.Errorf("title = %q, want %q", result.Title, "Call mom")
	}
	if result.Description != "" {
		t.Errorf("description = %q, want empty", result.Description)
	}
	if result.DueDate != nil {
		t.Errorf("due date = %v, want nil", result.DueDate)
	}
	if result.Priority != "" {
		t.Errorf("priority = %q, want empty", result.Priority)
	}
}

func TestFallback_Tomorrow(t *testing.T) {
	p := newFallbackOnly()

	result := p.Parse(context.Background(), "Buy groceries tomorrow", nil)

	if result.Title != "Buy groceries" {
		t.Errorf("title = %q, want %q", result.Title, "Buy groceries")
	}
	if result.DueDate == nil {
		t.Fatal("due date = nil, want tomorrow")
	}
	wantDay := time.Now().AddDate(0, 0, 1)
	gotY, gotM, gotD := result.DueDate.Date()
	wantY, wantM, wantD := wantDay.Date()
	if gotY != wantY || gotM != wantM || gotD != wantD {
		t.Errorf("due date = %v, want calendar day %04d-%02d-%02d", result.DueDate, wantY, wantM, wantD)
	}
}

func TestFallback_Priority(t *testing.T) {
	p := newFallbackOnly()

	tests := []struct {
		name  string
		input string
		title string
		level string
	}{
		{"high", "Submit report high priority", "Submit report", model.PriorityHigh},
		{"urgent maps to high", "Submit report urgent priority", "Submit report", model.PriorityHigh},
		{"important maps to high", "Fix the build important priority", "Fix the build", model.PriorityHigh},
		{"critical maps to high", "Patch the server critical priority", "Patch the server", model.PriorityHigh},
		{"medium", "Water plants medium priority", "Water plants", model.PriorityMedium},
		{"normal maps to medium", "Water plants normal priority", "Water plants", model.PriorityMedium},
		{"low", "Sort inbox low priority", "Sort inbox", model.PriorityLow},
		{"minor maps to low", "Sort inbox minor priority", "Sort inbox", model.PriorityLow},
		{"case insensitive", "Submit report HIGH PRIORITY", "Submit report", model.PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := p.Parse(context.Background(), tt.input, nil)
			if result.Title != tt.title {
				t.Errorf("title = %q, want %q", result.Title, tt.title)
			}
			if result.Priority != tt.level {
				t.Errorf("priority = %q, want %q", result.Priority, tt.level)
			}
		})
	}
}

func TestFallback_TimeOfDay(t *testing.T) {
	p := newFallbackOnly()

	tests := []struct {
		name       string
		input      string
		title      string
		wantHour   int
		wantMinute int
	}{
		{"pm", "Meeting tomorrow at 3pm", "Meeting", 15, 0},
		{"pm with minutes", "Meeting tomorrow at 3:30pm", "Meeting", 15, 30},
		{"12pm stays noon", "Lunch tomorrow at 12pm", "Lunch", 12, 0},
		{"12am becomes zero", "Launch tomorrow at 12am", "Launch", 0, 0},
		{"am", "Standup tomorrow at 9am", "Standup", 9, 0},
		{"noon", "Lunch tomorrow at 12 noon", "Lunch", 12, 0},
		{"midnight", "Deploy tomorrow at 12 midnight", "Deploy", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := p.Parse(context.Background(), tt.input, nil)
			if result.Title != tt.title {
				t.Errorf("title = %q, want %q", result.Title, tt.title)
			}
			if result.DueDate == nil {
				t.Fatal("due date = nil, want set")
			}
			if result.DueDate.Hour() != tt.wantHour || result.DueDate.Minute() != tt.wantMinute {
				t.Errorf("due time = %02d:%02d, want %02d:%02d",
					result.DueDate.Hour(), result.DueDate.Minute(), tt.wantHour, tt.wantMinute)
			}
		})
	}
}

func TestFallback_TimeOfDayRequiresDate(t *testing.T) {
	p := newFallbackOnly()

	// A bare clock time without a date expression is kept in the title.
	result := p.Parse(context.Background(), "Meeting at 3pm", nil)

	if result.DueDate != nil {
		t.Errorf("due date = %v, want nil without a date expression", result.DueDate)
	}
	if result.Title != "Meeting at 3pm" {
		t.Errorf("title = %q, want %q", result.Title, "Meeting at 3pm")
	}
}

func TestFallback_OutOfRangeTimeOfDay(t *testing.T) {
	p := newFallbackOnly()

	// "15pm" would be hour 27; the date survives, the time is ignored.
	result := p.Parse(context.Background(), "Meeting tomorrow at 15pm", nil)

	if result.DueDate == nil {
		t.Fatal("due date = nil, want tomorrow")
	}
	wantDay := time.Now().AddDate(0, 0, 1)
	if result.DueDate.Day() != wantDay.Day() {
		t.Errorf("due day = %d, want %d", result.DueDate.Day(), wantDay.Day())
	}
}

func TestFallback_Today(t *testing.T) {
	p := newFallbackOnly()

	result := p.Parse(context.Background(), "Finish slides today", nil)

	if result.Title != "Finish slides" {
		t.Errorf("title = %q, want %q", result.Title, "Finish slides")
	}
	if result.DueDate == nil {
		t.Fatal("due date = nil, want end of today")
	}
	now := time.Now()
	if result.DueDate.Day() != now.Day() {
		t.Errorf("due day = %d, want today (%d)", result.DueDate.Day(), now.Day())
	}
	if result.DueDate.Hour() != 23 || result.DueDate.Minute() != 59 || result.DueDate.Second() != 59 {
		t.Errorf("due time = %v, want 23:59:59", result.DueDate)
	}
}

func TestFallback_NextWeekday(t *testing.T) {
	p := newFallbackOnly()

	result := p.Parse(context.Background(), "Dentist next monday", nil)

	if result.Title != "Dentist" {
		t.Errorf("title = %q, want %q", result.Title, "Dentist")
	}
	if result.DueDate == nil {
		t.Fatal("due date = nil, want next Monday")
	}
	if result.DueDate.Weekday() != time.Monday {
		t.Errorf("due weekday = %v, want Monday", result.DueDate.Weekday())
	}
	ahead := int(result.DueDate.Sub(time.Now()).Hours()/24) + 1
	if ahead < 1 || ahead > 7 {
		t.Errorf("due date %v is %d days ahead, want 1-7", result.DueDate, ahead)
	}
}

func TestFallback_NextWeek(t *testing.T) {
	p := newFallbackOnly()

	result := p.Parse(context.Background(), "Plan sprint next week", nil)

	if result.Title != "Plan sprint" {
		t.Errorf("title = %q, want %q", result.Title, "Plan sprint")
	}
	if result.DueDate == nil {
		t.Fatal("due date = nil, want +7 days")
	}
	want := time.Now().AddDate(0, 0, 7)
	if result.DueDate.Day() != want.Day() {
		t.Errorf("due day = %d, want %d", result.DueDate.Day(), want.Day())
	}
}

func TestFallback_RelativeSpans(t *testing.T) {
	p := newFallbackOnly()

	t.Run("in N days", func(t *testing.T) {
		result := p.Parse(context.Background(), "Renew passport in 3 days", nil)
		if result.Title != "Renew passport" {
			t.Errorf("title = %q, want %q", result.Title, "Renew passport")
		}
		if result.DueDate == nil {
			t.Fatal("due date = nil, want +3 days")
		}
		want := time.Now().AddDate(0, 0, 3)
		if result.DueDate.Day() != want.Day() {
			t.Errorf("due day = %d, want %d", result.DueDate.Day(), want.Day())
		}
	})

	t.Run("in N hours", func(t *testing.T) {
		result := p.Parse(context.Background(), "Check oven in 2 hours", nil)
		if result.Title != "Check oven" {
			t.Errorf("title = %q, want %q", result.Title, "Check oven")
		}
		if result.DueDate == nil {
			t.Fatal("due date = nil, want +2 hours")
		}
		diff := time.Until(*result.DueDate)
		if diff < time.Hour+59*time.Minute || diff > 2*time.Hour+time.Minute {
			t.Errorf("due date %v is %v away, want ~2 hours", result.DueDate, diff)
		}
	})
}

func TestFallback_PrefixStripping(t *testing.T) {
	p := newFallbackOnly()

	tests := []struct {
		input string
		title string
	}{
		{"Remind me to submit taxes", "submit taxes"},
		{"remember to water the plants", "water the plants"},
		{"Don't forget to call the bank", "call the bank"},
	}

	for _, tt := range tests {
		result := p.Parse(context.Background(), tt.input, nil)
		if result.Title != tt.title {
			t.Errorf("Parse(%q) title = %q, want %q", tt.input, result.Title, tt.title)
		}
	}
}

func TestFallback_DefaultTitle(t *testing.T) {
	p := newFallbackOnly()

	tests := []string{"", "   ", "tomorrow", "today", "next monday"}

	for _, input := range tests {
		result := p.Parse(context.Background(), input, nil)
		if result.Title != model.DefaultTaskTitle {
			t.Errorf("Parse(%q) title = %q, want %q", input, result.Title, model.DefaultTaskTitle)
		}
	}
}

func TestFallback_WhitespaceCollapse(t *testing.T) {
	p := newFallbackOnly()

	result := p.Parse(context.Background(), "  Buy   groceries   tomorrow  ", nil)

	if result.Title != "Buy groceries" {
		t.Errorf("title = %q, want %q", result.Title, "Buy groceries")
	}
}

func TestFallback_FirstDatePatternWins(t *testing.T) {
	p := newFallbackOnly()

	// "today" is matched before "tomorrow"; only its span is removed.
	result := p.Parse(context.Background(), "Prepare today for tomorrow", nil)

	if result.DueDate == nil {
		t.Fatal("due date = nil, want end of today")
	}
	if result.DueDate.Hour() != 23 {
		t.Errorf("due hour = %d, want 23 (end of today wins)", result.DueDate.Hour())
	}
	if result.Title != "Prepare for tomorrow" {
		t.Errorf("title = %q, want %q", result.Title, "Prepare for tomorrow")
	}
}

func TestFallback_TimezoneOffset(t *testing.T) {
	p := newFallbackOnly()

	// -420 is what a browser in UTC+7 reports.
	offset := -420
	result := p.Parse(context.Background(), "Finish slides today", &offset)

	if result.DueDate == nil {
		t.Fatal("due date = nil, want end of caller's today")
	}
	_, zoneOffset := result.DueDate.Zone()
	if zoneOffset != 7*3600 {
		t.Errorf("due date zone offset = %d seconds, want %d", zoneOffset, 7*3600)
	}
	if result.DueDate.Hour() != 23 || result.DueDate.Minute() != 59 {
		t.Errorf("due time = %02d:%02d in caller zone, want 23:59", result.DueDate.Hour(), result.DueDate.Minute())
	}
}

func TestFallback_Deterministic(t *testing.T) {
	p := newFallbackOnly()
	input := "Remind me to submit the report today at 5pm high priority"

	first := p.Parse(context.Background(), input, nil)
	second := p.Parse(context.Background(), input, nil)

	if first.Title != second.Title {
		t.Errorf("titles differ: %q vs %q", first.Title, second.Title)
	}
	if first.Priority != second.Priority {
		t.Errorf("priorities differ: %q vs %q", first.Priority, second.Priority)
	}
	if first.DueDate == nil || second.DueDate == nil {
		t.Fatal("due dates missing")
	}
	if !first.DueDate.Equal(*second.DueDate) {
		t.Errorf("due dates differ: %v vs %v", first.DueDate, second.DueDate)
	}
	if first.Title != "submit the report" {
		t.Errorf("title = %q, want %q", first.Title, "submit the report")
	}
	if first.Priority != model.PriorityHigh {
		t.Errorf("priority = %q, want %q", first.Priority, model.PriorityHigh)
	}
	if first.DueDate.Hour() != 17 {
		t.Errorf("due hour = %d, want 17", first.DueDate.Hour())
	}
}
