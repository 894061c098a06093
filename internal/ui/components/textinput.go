package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/agequiz/internal/ui/theme"
)

// ShakeAmplitude is the widest offset a shake can use, in cells.
const ShakeAmplitude = 2

// TextInput wraps bubbles/textinput in a bordered box that can show an
// error state and be nudged sideways for a shake cue.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
	invalid  bool
	offset   int
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the boxed input, shifted by the current shake offset.
func (t TextInput) View() string {
	box := theme.InputBox
	if t.invalid {
		box = theme.InputBoxError
	}
	rendered := box.Render(t.Model.View())

	pad := ShakeAmplitude + t.offset
	if pad <= 0 {
		return rendered
	}
	lines := strings.Split(rendered, "\n")
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Clear empties the input and its error state.
func (t *TextInput) Clear() {
	t.Model.SetValue("")
	t.invalid = false
	t.offset = 0
}

// SetInvalid toggles the error border.
func (t *TextInput) SetInvalid(invalid bool) {
	t.invalid = invalid
}

// Invalid reports whether the error border is shown.
func (t TextInput) Invalid() bool {
	return t.invalid
}

// SetOffset moves the box sideways, clamped to ±ShakeAmplitude.
func (t *TextInput) SetOffset(offset int) {
	if offset > ShakeAmplitude {
		offset = ShakeAmplitude
	}
	if offset < -ShakeAmplitude {
		offset = -ShakeAmplitude
	}
	t.offset = offset
}
