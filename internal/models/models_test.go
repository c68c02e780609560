package models

import (
	"testing"
	"time"
)

func TestAttemptStatusIsTerminal(t *testing.T) {
	tests := []struct {
		status AttemptStatus
		want   bool
	}{
		{AttemptInProgress, false},
		{AttemptCompleted, true},
		{AttemptCancelled, true},
		{AttemptFailed, true},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.want {
			t.Errorf("%s: expected IsTerminal %v, got %v", tt.status, tt.want, got)
		}
	}
}

func TestFormattedDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{65, "1:05"},
		{180, "3:00"},
		{3601, "60:01"},
	}

	for _, tt := range tests {
		a := Attempt{DurationSeconds: tt.seconds}
		if got := a.FormattedDuration(); got != tt.want {
			t.Errorf("%d seconds: expected %q, got %q", tt.seconds, tt.want, got)
		}
	}
}

func TestGreeting(t *testing.T) {
	p := UserProfile{Nickname: "Reader"}
	at := func(hour int) time.Time {
		return time.Date(2026, 8, 26, hour, 0, 0, 0, time.Local)
	}

	tests := []struct {
		hour int
		want string
	}{
		{7, "Good morning, Reader"},
		{13, "Good afternoon, Reader"},
		{19, "Good evening, Reader"},
		{23, "Burning the midnight oil, Reader"},
		{3, "Burning the midnight oil, Reader"},
	}

	for _, tt := range tests {
		if got := p.Greeting(at(tt.hour)); got != tt.want {
			t.Errorf("hour %d: expected %q, got %q", tt.hour, tt.want, got)
		}
	}
}

func TestDaysUsingApp(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.Local)

	p := UserProfile{CreatedAt: now.Add(-2 * time.Hour)}
	if got := p.DaysUsingApp(now); got != 1 {
		t.Errorf("expected at least 1 day, got %d", got)
	}

	p = UserProfile{CreatedAt: now.AddDate(0, 0, -10)}
	if got := p.DaysUsingApp(now); got != 10 {
		t.Errorf("expected 10 days, got %d", got)
	}
}

func TestFindTemplate(t *testing.T) {
	tmpl, ok := FindTemplate("Reading")
	if !ok {
		t.Fatal("expected to find the Reading template")
	}
	if tmpl.Category != CategoryLearning {
		t.Errorf("expected learning category, got %s", tmpl.Category)
	}

	draft := tmpl.Draft()
	if draft.Title != tmpl.Title || draft.FocusMinutes != tmpl.RecommendedDuration {
		t.Errorf("draft did not carry template fields: %+v", draft)
	}

	if _, ok := FindTemplate("Nonsense"); ok {
		t.Error("expected lookup miss for unknown template")
	}
}

func TestTemplatesByCategory(t *testing.T) {
	total := 0
	for _, cat := range []TemplateCategory{
		CategoryFitness, CategoryLearning, CategoryMindfulness,
		CategoryCreativity, CategoryHealth, CategorySocial,
	} {
		total += len(TemplatesByCategory(cat))
	}
	if total != len(BuiltinTemplates) {
		t.Errorf("every template should belong to a category: %d of %d", total, len(BuiltinTemplates))
	}

	for _, tmpl := range BuiltinTemplates {
		if tmpl.RecommendedDuration < 1 {
			t.Errorf("template %s has invalid duration %d", tmpl.Name, tmpl.RecommendedDuration)
		}
	}
}
