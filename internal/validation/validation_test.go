package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
)

func TestHabitName(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "Drink water", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"at limit", strings.Repeat("a", 100), false},
		{"over limit", strings.Repeat("a", 101), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := HabitName(tc.input)
			if (err != nil) != tc.wantErr {
				t.Errorf("HabitName(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
		})
	}
}

func TestTaskName(t *testing.T) {
	if err := TaskName("Write report"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := TaskName(""); err == nil {
		t.Error("expected error for empty task")
	}
	if err := TaskName(strings.Repeat("x", 201)); err == nil {
		t.Error("expected error for oversized task")
	}
}

func TestFrequency(t *testing.T) {
	cases := []struct {
		input   string
		want    constants.Frequency
		wantErr bool
	}{
		{"daily", constants.FrequencyDaily, false},
		{"Weekly", constants.FrequencyWeekly, false},
		{"  twice-a-week ", constants.FrequencyTwiceAWeek, false},
		{"hourly", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := Frequency(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("Frequency(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("Frequency(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestEmail(t *testing.T) {
	for _, valid := range []string{"a@b.com", "first.last@example.org"} {
		if err := Email(valid); err != nil {
			t.Errorf("Email(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "not-an-email", "@example.com"} {
		if err := Email(invalid); err == nil {
			t.Errorf("Email(%q) expected error", invalid)
		}
	}
}

func TestPassword(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "Sup3rSecret", false},
		{"too short", "Ab1", true},
		{"no upper", "lowercase1", true},
		{"no lower", "UPPERCASE1", true},
		{"no digit", "NoDigitsHere", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Password(tc.input)
			if (err != nil) != tc.wantErr {
				t.Errorf("Password(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
		})
	}
}

func TestDay(t *testing.T) {
	got, err := Day("2026-08-31")
	if err != nil || got != "2026-08-31" {
		t.Errorf("Day(2026-08-31) = %q, %v", got, err)
	}

	got, err = Day("")
	if err != nil {
		t.Fatalf("Day(\"\") unexpected error: %v", err)
	}
	if got != time.Now().Format(constants.DateFormat) {
		t.Errorf("expected today for empty input, got %q", got)
	}

	for _, invalid := range []string{"31-08-2026", "2026/08/31", "not-a-date"} {
		if _, err := Day(invalid); err == nil {
			t.Errorf("Day(%q) expected error", invalid)
		}
	}
}

func TestTimeOfDay(t *testing.T) {
	if err := TimeOfDay("08:00"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, invalid := range []string{"8am", "25:00", ""} {
		if err := TimeOfDay(invalid); err == nil {
			t.Errorf("TimeOfDay(%q) expected error", invalid)
		}
	}
}

func TestLogDays(t *testing.T) {
	for _, valid := range []int{1, 14, constants.MaxLogDays} {
		if err := LogDays(valid); err != nil {
			t.Errorf("LogDays(%d) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []int{0, -4, constants.MaxLogDays + 1} {
		if err := LogDays(invalid); err == nil {
			t.Errorf("LogDays(%d) expected error", invalid)
		}
	}
}

func TestFocusMinutes(t *testing.T) {
	if err := FocusMinutes(25); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := FocusMinutes(constants.MaxFocusMinutes); err != nil {
		t.Errorf("unexpected error at limit: %v", err)
	}
	for _, invalid := range []int{0, -5, constants.MaxFocusMinutes + 1} {
		if err := FocusMinutes(invalid); err == nil {
			t.Errorf("FocusMinutes(%d) expected error", invalid)
		}
	}
}
