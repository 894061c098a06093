package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestProgressDots_Active(t *testing.T) {
	d := NewProgressDots(5, 2)
	for i := 0; i < 5; i++ {
		want := i <= 2
		if d.Active(i) != want {
			t.Errorf("Active(%d) = %v, want %v", i, d.Active(i), want)
		}
	}

	plain := ansi.Strip(d.View())
	if plain != "● ● ● ○ ○" {
		t.Errorf("View = %q", plain)
	}
}

func TestButton_EnterPresses(t *testing.T) {
	pressed := false
	b := NewButton("시작하기", func() tea.Cmd {
		pressed = true
		return nil
	})

	b.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if pressed {
		t.Fatal("non-enter key should not press the button")
	}
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !pressed {
		t.Error("enter should press the button")
	}
	if !strings.Contains(ansi.Strip(b.View()), "시작하기") {
		t.Error("button view should contain its label")
	}
}

func TestTextInput_OffsetShiftsBox(t *testing.T) {
	ti := NewTextInput("", 12)

	base := firstLineIndent(ti.View())
	ti.SetOffset(1)
	if got := firstLineIndent(ti.View()); got != base+1 {
		t.Errorf("indent with offset 1 = %d, want %d", got, base+1)
	}
	ti.SetOffset(-10)
	if got := firstLineIndent(ti.View()); got != 0 {
		t.Errorf("indent with clamped offset = %d, want 0", got)
	}
}

func TestTextInput_ClearResetsError(t *testing.T) {
	ti := NewTextInput("", 12)
	ti.Model.SetValue("abc")
	ti.SetInvalid(true)
	ti.SetOffset(2)

	ti.Clear()
	if ti.Value() != "" || ti.Invalid() {
		t.Errorf("Clear left value=%q invalid=%v", ti.Value(), ti.Invalid())
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct{ in, want int }{
		{10, 20},
		{40, 34},
		{200, 52},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.in); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func firstLineIndent(s string) int {
	line := ansi.Strip(strings.Split(s, "\n")[0])
	return len(line) - len(strings.TrimLeft(line, " "))
}
