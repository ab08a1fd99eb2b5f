package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/mkarev/go-school-admin/models"
)

// userFormModel is the shared state of the three provisioning screens.
// The role is fixed when the form is opened from the menu; the optional
// school id binds the new account to a tenant.
type userFormModel struct {
	role       models.Role
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	// created holds the last successfully provisioned account so the
	// screen can offer copying its email.
	created *models.PublicUser
}

func newUserFormModel(role models.Role) userFormModel {
	fields := make([]textinput.Model, 4)

	fields[0] = textinput.New()
	fields[0].Placeholder = "name"
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "email"
	fields[1].CharLimit = 254
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "password"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "school id (optional)"
	fields[3].CharLimit = 19
	fields[3].Width = 40

	return userFormModel{role: role, inputs: fields}
}

func (m *userFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *userFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m userFormModel) title() string {
	switch m.role {
	case models.RoleSchoolAdmin:
		return "CREATE SCHOOL ADMIN"
	case models.RoleTeacher:
		return "CREATE TEACHER"
	default:
		return "CREATE STUDENT"
	}
}

func (m userFormModel) View() string {
	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────────────────────\n")
	b.WriteString("Name       │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email      │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Password   │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("School ID  │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Creating...]\n")
	} else {
		b.WriteString("\n[Create]\n")
	}

	if m.created != nil {
		b.WriteString("\nCreated: " + m.created.Name + " <" + m.created.Email + ">\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "esc: back │ tab: next field │ enter: submit"
	if m.created != nil {
		hotKeys += " │ ctrl+y: copy email"
	}
	return renderPage(m.title(), strings.TrimRight(b.String(), "\n"), hotKeys)
}
