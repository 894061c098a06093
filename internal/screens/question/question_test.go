package question

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/agequiz/internal/catalog"
	"github.com/abhisek/agequiz/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestion(prompt string) catalog.Question {
	return catalog.Question{Prompt: prompt, Hint: "hint for " + prompt}
}

func activeScreen() *QuestionScreen {
	s := New(5)
	s.Present(0, testQuestion("첫 번째"))
	s.Init()
	return s
}

func typeString(s *QuestionScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func TestQuestionScreen_Title(t *testing.T) {
	s := New(5)
	if s.Title() != "질문" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestEnterEmitsSubmitWithRawText(t *testing.T) {
	s := activeScreen()
	typeString(s, "42")

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(screen.SubmitMsg)
	if !ok {
		t.Fatalf("expected SubmitMsg, got %T", cmd())
	}
	if msg.Raw != "42" {
		t.Errorf("Raw = %q, want %q", msg.Raw, "42")
	}
}

func TestEnterOnEmptyInputStillSubmits(t *testing.T) {
	s := activeScreen()
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("empty input must still reach validation")
	}
	if msg := cmd().(screen.SubmitMsg); msg.Raw != "" {
		t.Errorf("Raw = %q, want empty", msg.Raw)
	}
}

func TestReject_ShowsErrorAndShakes(t *testing.T) {
	s := activeScreen()
	typeString(s, "abc")

	cmd := s.Reject("숫자만 입력 가능해요 🔢")
	if cmd == nil {
		t.Fatal("Reject should schedule the shake")
	}
	if s.ErrorMessage() != "숫자만 입력 가능해요 🔢" {
		t.Errorf("ErrorMessage = %q", s.ErrorMessage())
	}
	if !strings.Contains(ansi.Strip(s.View(80, 24)), "숫자만 입력 가능해요") {
		t.Error("view should show the error")
	}
	if s.input.Value() != "abc" {
		t.Error("rejected input should be kept for editing")
	}

	gen := s.shakeGen
	var next tea.Cmd
	for step := 1; step <= len(shakeOffsets); step++ {
		_, next = s.Update(shakeMsg{gen: gen, step: step})
	}
	if next != nil {
		t.Error("shake should stop after its last step")
	}
}

func TestReject_NewShakeSupersedesOld(t *testing.T) {
	s := activeScreen()
	s.Reject("first")
	old := s.shakeGen
	s.Reject("second")

	if _, cmd := s.Update(shakeMsg{gen: old, step: 1}); cmd != nil {
		t.Error("stale shake step should be ignored")
	}
}

func TestAdvance_FadesThenPresents(t *testing.T) {
	s := activeScreen()
	typeString(s, "7")

	cmd := s.Advance(1, testQuestion("두 번째"))
	if cmd == nil {
		t.Fatal("Advance should schedule the fade")
	}
	if !s.Fading() {
		t.Fatal("expected fading")
	}
	if s.Index() != 0 {
		t.Error("old question stays on screen while fading")
	}

	// Keys are ignored during the handoff.
	if _, cmd := s.Update(specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("Enter during fade should be ignored")
	}

	_, cmd = s.Update(fadeDoneMsg{gen: s.fadeGen})
	if s.Fading() {
		t.Error("fade should be finished")
	}
	if s.Index() != 1 {
		t.Errorf("Index = %d, want 1", s.Index())
	}
	if s.input.Value() != "" {
		t.Error("input should be cleared for the next question")
	}
	view := ansi.Strip(s.View(80, 24))
	if !strings.Contains(view, "두 번째") || !strings.Contains(view, "Q. 02") {
		t.Errorf("view should show the next question, got:\n%s", view)
	}
}

func TestPresent_CancelsFade(t *testing.T) {
	s := activeScreen()
	s.Advance(1, testQuestion("두 번째"))
	stale := s.fadeGen

	s.Present(0, testQuestion("첫 번째"))
	s.Update(fadeDoneMsg{gen: stale})

	if s.Index() != 0 {
		t.Errorf("stale fade changed the question: index %d", s.Index())
	}
}

func TestView_ProgressDots(t *testing.T) {
	s := New(5)
	s.Present(2, testQuestion("세 번째"))
	view := ansi.Strip(s.View(80, 24))
	if !strings.Contains(view, "● ● ● ○ ○") {
		t.Errorf("expected three lit dots, got:\n%s", view)
	}
}

func TestKeyHints(t *testing.T) {
	if len(New(5).KeyHints()) != 2 {
		t.Error("expected 2 key hints")
	}
}
