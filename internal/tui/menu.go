package tui

import (
	"fmt"
	"strings"

	"github.com/mkarev/go-school-admin/models"
)

// menuEntry pairs a menu label with its target screen and the roles the
// screen admits. The same allow-lists gate the server endpoints; the menu
// only mirrors them so a denied action fails before a round trip.
type menuEntry struct {
	label   string
	target  screen
	allowed []models.Role
}

var menuEntries = []menuEntry{
	{label: "Create school admin", target: screenCreateUser, allowed: models.AdminOnly},
	{label: "Create teacher", target: screenCreateUser, allowed: models.SchoolAdminAndAbove},
	{label: "Create student", target: screenCreateUser, allowed: models.SchoolAdminAndAbove},
	{label: "Register school", target: screenCreateSchool, allowed: models.AdminOnly},
	{label: "List users", target: screenUserList, allowed: models.SchoolAdminAndAbove},
	{label: "My profile", target: screenProfile},
}

// roleForMenuIndex maps the three provisioning entries to the role they
// create. The order matches menuEntries.
func roleForMenuIndex(idx int) models.Role {
	switch idx {
	case 0:
		return models.RoleSchoolAdmin
	case 1:
		return models.RoleTeacher
	default:
		return models.RoleStudent
	}
}

type menuModel struct {
	entries []menuEntry
	idx     int
	status  string
	errMsg  string
}

func newMenuModel() menuModel {
	return menuModel{entries: menuEntries}
}

func (m menuModel) viewFor(user *models.PublicUser) string {
	var b strings.Builder

	if user != nil {
		b.WriteString(fmt.Sprintf("Signed in as %s <%s> (%s)\n\n", user.Name, user.Email, user.Role))
	}

	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n\n")
	}

	actionColWidth := len("Action")
	for _, entry := range m.entries {
		if len(entry.label) > actionColWidth {
			actionColWidth = len(entry.label)
		}
	}

	b.WriteString(fmt.Sprintf("%-4s │ %-*s\n", "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", 4))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, entry := range m.entries {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-2d │ %-*s\n", cursor, i+1, actionColWidth, entry.label))
	}

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"),
		"enter: select │ ↑/↓: navigate │ l: log out │ v: version │ q: quit")
}
