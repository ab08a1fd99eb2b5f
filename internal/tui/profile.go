package tui

import (
	"fmt"
	"strings"

	"github.com/mkarev/go-school-admin/models"
)

type profileModel struct {
	user    models.PublicUser
	loading bool
	errMsg  string
}

func (m profileModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n")
	} else {
		b.WriteString(fmt.Sprintf("ID      │ %d\n", m.user.UserID))
		b.WriteString(fmt.Sprintf("Name    │ %s\n", m.user.Name))
		b.WriteString(fmt.Sprintf("Email   │ %s\n", m.user.Email))
		b.WriteString(fmt.Sprintf("Role    │ %s\n", m.user.Role))
		b.WriteString(fmt.Sprintf("School  │ %s\n", valueOrDash(m.user.SchoolID)))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("MY PROFILE", strings.TrimRight(b.String(), "\n"), "esc: back │ r: refresh")
}
