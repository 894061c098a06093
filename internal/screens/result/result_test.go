package result

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/agequiz/internal/confetti"
	"github.com/abhisek/agequiz/internal/reveal"
	"github.com/abhisek/agequiz/internal/screen"
)

var epoch = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func testResult() *ResultScreen {
	s := New()
	s.now = func() time.Time { return epoch }
	return s
}

func frameAt(s *ResultScreen, d time.Duration) tea.Cmd {
	_, cmd := s.Update(frameMsg{gen: s.gen, at: epoch.Add(d)})
	return cmd
}

func TestResultScreen_Title(t *testing.T) {
	if New().Title() != "결과" {
		t.Errorf("Title = %q", New().Title())
	}
}

func TestInit_WithoutPrepareDoesNothing(t *testing.T) {
	s := testResult()
	if cmd := s.Init(); cmd != nil {
		t.Error("Init without a prepared value should not animate")
	}
}

func TestCountUp_EndsOnFinalAndFiresConfetti(t *testing.T) {
	s := testResult()
	s.Prepare(33)
	if cmd := s.Init(); cmd == nil {
		t.Fatal("Init should start the count-up")
	}

	if cmd := frameAt(s, time.Second); cmd == nil {
		t.Fatal("mid-animation frame should schedule another")
	}
	if s.Shown() != 28 { // floor(33 * 0.875)
		t.Errorf("Shown at 1s = %d, want 28", s.Shown())
	}

	cmd := frameAt(s, reveal.DefaultDuration)
	if s.Shown() != 33 {
		t.Errorf("Shown at end = %d, want 33", s.Shown())
	}
	if !s.Done() {
		t.Error("expected Done")
	}
	if cmd == nil {
		t.Fatal("completion should emit the confetti burst")
	}
	if _, ok := cmd().(confetti.BurstMsg); !ok {
		t.Errorf("expected confetti.BurstMsg")
	}

	if !strings.Contains(ansi.Strip(s.View(80, 24)), "맞았나요") {
		t.Error("finished view should show the closing line")
	}
}

func TestStop_DropsPendingFrames(t *testing.T) {
	s := testResult()
	s.Prepare(50)
	s.Init()
	gen := s.gen

	s.Stop()
	_, cmd := s.Update(frameMsg{gen: gen, at: epoch.Add(reveal.DefaultDuration)})
	if cmd != nil {
		t.Error("frame after Stop should be ignored")
	}
	if s.Done() || s.Shown() != 0 {
		t.Errorf("Stop should freeze the counter: shown=%d done=%v", s.Shown(), s.Done())
	}
}

func TestPrepare_ResetsForNextRun(t *testing.T) {
	s := testResult()
	s.Prepare(10)
	s.Init()
	frameAt(s, reveal.DefaultDuration)

	s.Prepare(20)
	if s.Done() || s.Shown() != 0 {
		t.Fatal("Prepare should reset the counter")
	}
	s.Init()
	frameAt(s, reveal.DefaultDuration)
	if s.Shown() != 20 {
		t.Errorf("Shown = %d, want 20", s.Shown())
	}
}

func TestRestartKeys(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: 'r', Text: "r"},
	} {
		s := testResult()
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Fatalf("%q should restart", key.String())
		}
		if _, ok := cmd().(screen.RestartMsg); !ok {
			t.Errorf("%q: expected RestartMsg", key.String())
		}
	}
}

func TestRenderBig(t *testing.T) {
	got := renderBig(42)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("rows = %d, want 3", len(lines))
	}
	if lines[0] != "█ █ ▀▀█" {
		t.Errorf("top row = %q", lines[0])
	}
}
