package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/mkarev/go-school-admin/models"
)

type usersListModel struct {
	users   []models.PublicUser
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string
}

func newUsersListModel() usersListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return usersListModel{spinner: s, loading: true}
}

func (m usersListModel) current() (models.PublicUser, bool) {
	if len(m.users) == 0 || m.idx < 0 || m.idx >= len(m.users) {
		return models.PublicUser{}, false
	}
	return m.users[m.idx], true
}

func (m usersListModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	} else if len(m.users) == 0 {
		b.WriteString("No users\n")
	} else {
		b.WriteString(fmt.Sprintf("%-4s  %-12s  %-24s  %-30s  %s\n", "ID", "Role", "Name", "Email", "School"))
		b.WriteString(strings.Repeat("─", 80))
		b.WriteString("\n")
		for i, user := range m.users {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-4d  %-12s  %-24s  %-30s  %s\n",
				cursor, user.UserID, user.Role, fitText(user.Name, 24), fitText(user.Email, 30), valueOrDash(user.SchoolID)))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("USERS", strings.TrimRight(b.String(), "\n"),
		"esc: back │ ↑/↓: navigate │ c: copy email │ r: reload")
}
