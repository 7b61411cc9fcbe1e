package habits

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/keyring"
	"github.com/julianstephens/habitkit/internal/kv"
	"github.com/julianstephens/habitkit/internal/store"
)

func setupTestContext(t *testing.T) *cli.Context {
	t.Helper()
	keyring.MockInit()

	backend, err := kv.OpenBadgerInMemory()
	if err != nil {
		t.Fatalf("failed to open in-memory backend: %v", err)
	}
	st := store.New(backend, t.TempDir())
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return &cli.Context{Store: st}
}

func TestLogRejectsBadDayWindow(t *testing.T) {
	ctx := setupTestContext(t)
	if _, err := ctx.Store.AddHabit("Read", "", constants.FrequencyDaily); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	for _, days := range []int{-4, 0, constants.MaxLogDays + 1} {
		cmd := &LogCmd{Days: days}
		if err := cmd.Run(ctx); err == nil {
			t.Errorf("expected error for --days=%d", days)
		}
	}

	cmd := &LogCmd{Days: 7}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("unexpected error for --days=7: %v", err)
	}
}

func TestPadName(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"short ascii", "Read"},
		{"exact width", strings.Repeat("a", 20)},
		{"long ascii", "A very long habit name indeed"},
		{"emoji", "🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃"},
		{"cjk", "毎日水を飲んで運動する習慣"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := padName(tc.input)
			if w := runewidth.StringWidth(got); w != nameWidth {
				t.Errorf("padName(%q) has display width %d, want %d", tc.input, w, nameWidth)
			}
		})
	}

	if got := padName("A very long habit name indeed"); !strings.Contains(got, "...") {
		t.Errorf("expected truncated name to carry an ellipsis, got %q", got)
	}
}
