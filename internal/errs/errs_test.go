package errs

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("something broke"),
			expected: "Error: something broke",
		},
		{
			name:     "sentinel error",
			err:      ErrNotFound,
			expected: "Error: not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("failed to open %s: %v", "data.db", errors.New("permission denied"))
	want := "Error: failed to open data.db: permission denied"
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}
