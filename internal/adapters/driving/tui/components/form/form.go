// Package form provides the record editor used for both add and edit.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

// Form edits the four display fields of a hearing.
type Form struct {
	styles *styles.Styles
	fields []domain.Field
	inputs []textinput.Model
	focus  int
	title  string
	errMsg string
	width  int
}

// New creates a form with one input per field.
func New(s *styles.Styles) *Form {
	if s == nil {
		s = styles.DefaultStyles()
	}

	fields := domain.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 128
		ti.Width = 40
		if f == domain.FieldDate {
			ti.Placeholder = "YYYY-MM-DD"
			ti.CharLimit = 10
		}
		inputs[i] = ti
	}

	return &Form{
		styles: s,
		fields: fields,
		inputs: inputs,
		width:  60,
	}
}

// Open loads a record into the inputs and focuses the first one.
func (f *Form) Open(title string, h domain.Hearing) tea.Cmd {
	f.title = title
	f.errMsg = ""
	for i, field := range f.fields {
		f.inputs[i].SetValue(h.Value(field))
		f.inputs[i].CursorEnd()
	}
	return f.setFocus(0)
}

// Close blurs every input and clears the error line.
func (f *Form) Close() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.errMsg = ""
}

// Hearing returns the values currently typed. The ID is left empty.
func (f *Form) Hearing() domain.Hearing {
	var h domain.Hearing
	for i, field := range f.fields {
		h = h.With(field, f.inputs[i].Value())
	}
	return h
}

// Next moves focus to the following field, wrapping at the end.
func (f *Form) Next() tea.Cmd {
	return f.setFocus((f.focus + 1) % len(f.inputs))
}

// Prev moves focus to the previous field, wrapping at the start.
func (f *Form) Prev() tea.Cmd {
	return f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

// Focused returns the field that has the cursor.
func (f *Form) Focused() domain.Field {
	return f.fields[f.focus]
}

// SetError shows msg under the inputs. An empty string clears it.
func (f *Form) SetError(msg string) {
	f.errMsg = msg
}

// Error returns the message shown under the inputs.
func (f *Form) Error() string {
	return f.errMsg
}

// FocusField moves the cursor to a specific field.
func (f *Form) FocusField(field domain.Field) tea.Cmd {
	for i, candidate := range f.fields {
		if candidate == field {
			return f.setFocus(i)
		}
	}
	return nil
}

// Update forwards key input to the focused field.
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// SetWidth sets the dialog width.
func (f *Form) SetWidth(width int) {
	f.width = width
	for i := range f.inputs {
		if f.fields[i] != domain.FieldDate {
			f.inputs[i].Width = max(width-30, 20)
		}
	}
}

// View renders the dialog.
func (f *Form) View() string {
	var b strings.Builder

	b.WriteString(f.styles.Title.Render(f.title))
	b.WriteString("\n\n")

	for i, field := range f.fields {
		label := f.styles.Muted.Render(field.Label())
		if i == f.focus {
			label = f.styles.Subtitle.Render(field.Label())
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.styles.InputField.Render(f.inputs[i].View()))
		b.WriteString("\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(f.styles.Error.Render(f.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(f.styles.Help.Render("[enter] salvar  [tab] próximo campo  [esc] cancelar"))

	return f.styles.Dialog.Width(f.width).Render(b.String())
}

func (f *Form) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[i].Focus()
}
