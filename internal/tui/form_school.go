package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/mkarev/go-school-admin/models"
)

type schoolFormModel struct {
	input      textinput.Model
	submitting bool
	errMsg     string
	created    *models.School
}

func newSchoolFormModel() schoolFormModel {
	input := textinput.New()
	input.Placeholder = "school name"
	input.Width = 40
	input.Focus()
	return schoolFormModel{input: input}
}

func (m schoolFormModel) View() string {
	var b strings.Builder
	b.WriteString("Name │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.created != nil {
		b.WriteString(fmt.Sprintf("\nRegistered: %s (id %d)\n", m.created.Name, m.created.SchoolID))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER SCHOOL", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: submit")
}
