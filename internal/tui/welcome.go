package tui

import "strings"

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Register bootstrap admin"}}
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString("Choose an action:\n\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}
	return renderPage("SCHOOL ADMIN", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version │ q: quit")
}
