package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkarev/go-school-admin/internal/service"
	"github.com/mkarev/go-school-admin/internal/session"
	"github.com/mkarev/go-school-admin/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenMenu
	screenCreateUser
	screenCreateSchool
	screenUserList
	screenProfile
)

// appModel is the root Bubble Tea model. It owns every screen's state,
// routes key events to the active screen, and turns completed async
// commands back into screen updates. Screen transitions all go through
// [Guard] so the access policy is applied uniformly.
type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	sessions *session.Store

	currentScreen screen
	welcome       welcomeModel
	login         loginModel
	register      registerModel
	menu          menuModel
	userForm      userFormModel
	schoolForm    schoolFormModel
	usersList     usersListModel
	profile       profileModel

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, sessions *session.Store, buildInfo models.AppBuildInfo) appModel {
	model := appModel{
		ctx:           ctx,
		services:      services,
		sessions:      sessions,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		menu:          newMenuModel(),
		buildInfo:     buildInfo,
	}

	// A restored session skips the welcome flow entirely.
	if Guard(sessions.IsLoading(), sessions.IsAuthenticated(), sessions.Role(), nil) == GuardAllow {
		model.currentScreen = screenMenu
	}

	return model
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.quitByUser = true
			return m, tea.Quit
		case "v":
			if m.currentScreen == screenWelcome || m.currentScreen == screenMenu {
				m.showBuildInfo = !m.showBuildInfo
				return m, nil
			}
		case "esc":
			if m.showBuildInfo {
				m.showBuildInfo = false
				return m, nil
			}
		}
		if m.showBuildInfo {
			return m, nil
		}
	}

	switch result := msg.(type) {
	case authDoneMsg:
		return m.onAuthDone(result)
	case registerDoneMsg:
		return m.onRegisterDone(result)
	case loggedOutMsg:
		return m.onLoggedOut(result)
	case userCreatedMsg:
		return m.onUserCreated(result)
	case schoolCreatedMsg:
		return m.onSchoolCreated(result)
	case usersLoadedMsg:
		return m.onUsersLoaded(result)
	case profileLoadedMsg:
		return m.onProfileLoaded(result)
	case copiedMsg:
		return m.onCopied(result)
	case spinner.TickMsg:
		if m.currentScreen == screenUserList && m.usersList.loading {
			var cmd tea.Cmd
			m.usersList.spinner, cmd = m.usersList.spinner.Update(result)
			return m, cmd
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenCreateUser:
		return m.updateUserForm(msg)
	case screenCreateSchool:
		return m.updateSchoolForm(msg)
	case screenUserList:
		return m.updateUsersList(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.welcome.View()
	case screenLogin:
		return m.login.View()
	case screenRegister:
		return m.register.View()
	case screenMenu:
		return m.menu.viewFor(m.sessions.Current().User)
	case screenCreateUser:
		return m.userForm.View()
	case screenCreateSchool:
		return m.schoolForm.View()
	case screenUserList:
		return m.usersList.View()
	case screenProfile:
		return m.profile.View()
	}
	return ""
}

// ─────────────────────────────────────────────
// Screen key handling
// ─────────────────────────────────────────────

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.login.reset()
			m.currentScreen = screenLogin
		} else {
			m.register.reset()
			m.currentScreen = screenRegister
		}
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if email == "" || password == "" {
				m.login.errMsg = "Email and password are required"
				return m, nil
			}

			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.register.inputs[0].Value())
			email := strings.TrimSpace(m.register.inputs[1].Value())
			password := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()

			if name == "" || email == "" || password == "" || repeat == "" {
				m.register.errMsg = "All fields are required"
				return m, nil
			}
			if password != repeat {
				m.register.errMsg = "Passwords do not match"
				return m, nil
			}

			m.register.errMsg = ""
			m.register.submitting = true
			return m, m.cmdRegister(name, email, password)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(m.menu.entries)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m.openMenuEntry(m.menu.entries[m.menu.idx])
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

// openMenuEntry applies the guard and enters the selected screen.
func (m appModel) openMenuEntry(entry menuEntry) (tea.Model, tea.Cmd) {
	decision := Guard(m.sessions.IsLoading(), m.sessions.IsAuthenticated(), m.sessions.Role(), entry.allowed)
	switch decision {
	case GuardWait:
		return m, nil
	case GuardLogin:
		m.login.reset()
		m.currentScreen = screenLogin
		return m, textinput.Blink
	case GuardDenied:
		m.menu.status = ""
		m.menu.errMsg = "access denied"
		return m, nil
	}

	m.menu.errMsg = ""

	switch entry.target {
	case screenCreateUser:
		m.userForm = newUserFormModel(roleForMenuIndex(m.menu.idx))
		m.currentScreen = screenCreateUser
		return m, textinput.Blink
	case screenCreateSchool:
		m.schoolForm = newSchoolFormModel()
		m.currentScreen = screenCreateSchool
		return m, textinput.Blink
	case screenUserList:
		m.usersList = newUsersListModel()
		m.currentScreen = screenUserList
		return m, tea.Batch(m.usersList.spinner.Tick, m.cmdLoadUsers())
	case screenProfile:
		m.profile = profileModel{loading: true}
		m.currentScreen = screenProfile
		return m, m.cmdLoadProfile()
	}

	return m, nil
}

func (m appModel) updateUserForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.userForm.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.userForm.focusPrev()
			return m, nil
		case keyMsg.String() == "ctrl+y":
			if m.userForm.created != nil {
				return m, m.cmdCopy(m.userForm.created.Email)
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.userForm.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.userForm.inputs[0].Value())
			email := strings.TrimSpace(m.userForm.inputs[1].Value())
			password := m.userForm.inputs[2].Value()
			rawSchoolID := strings.TrimSpace(m.userForm.inputs[3].Value())

			if name == "" || email == "" || password == "" {
				m.userForm.errMsg = "Name, email and password are required"
				return m, nil
			}

			req := models.CreateUserRequest{Name: name, Email: email, Password: password}
			if rawSchoolID != "" {
				schoolID, err := strconv.ParseInt(rawSchoolID, 10, 64)
				if err != nil {
					m.userForm.errMsg = "School ID must be a number"
					return m, nil
				}
				req.SchoolID = &schoolID
			}

			m.userForm.errMsg = ""
			m.userForm.submitting = true
			return m, m.cmdCreateUser(m.userForm.role, req)
		}
	}

	var cmd tea.Cmd
	m.userForm.inputs[m.userForm.focus], cmd = m.userForm.inputs[m.userForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateSchoolForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.schoolForm.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.schoolForm.input.Value())
			if name == "" {
				m.schoolForm.errMsg = "School name is required"
				return m, nil
			}

			m.schoolForm.errMsg = ""
			m.schoolForm.submitting = true
			return m, m.cmdCreateSchool(name)
		}
	}

	var cmd tea.Cmd
	m.schoolForm.input, cmd = m.schoolForm.input.Update(msg)
	return m, cmd
}

func (m appModel) updateUsersList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.up):
		if m.usersList.idx > 0 {
			m.usersList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.usersList.idx < len(m.usersList.users)-1 {
			m.usersList.idx++
		}
	case key.Matches(keyMsg, keys.copy):
		if user, ok := m.usersList.current(); ok {
			return m, m.cmdCopy(user.Email)
		}
	case key.Matches(keyMsg, keys.refresh):
		m.usersList.loading = true
		m.usersList.status = ""
		m.usersList.errMsg = ""
		return m, tea.Batch(m.usersList.spinner.Tick, m.cmdLoadUsers())
	}

	return m, nil
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.refresh):
		m.profile.loading = true
		m.profile.errMsg = ""
		return m, m.cmdLoadProfile()
	}

	return m, nil
}

// ─────────────────────────────────────────────
// Async command results
// ─────────────────────────────────────────────

func (m appModel) onAuthDone(result authDoneMsg) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	if result.err != nil {
		m.login.errMsg = humanizeServerUnavailableError(result.err)
		return m, nil
	}

	m.menu = newMenuModel()
	m.menu.status = "Logged in"
	m.currentScreen = screenMenu
	return m, nil
}

func (m appModel) onRegisterDone(result registerDoneMsg) (tea.Model, tea.Cmd) {
	m.register.submitting = false
	if result.err != nil {
		m.register.errMsg = humanizeServerUnavailableError(result.err)
		return m, nil
	}

	// Registration logs the admin in, so land on the menu directly.
	m.menu = newMenuModel()
	m.menu.status = "Admin " + result.email + " registered"
	m.currentScreen = screenMenu
	return m, nil
}

func (m appModel) onLoggedOut(result loggedOutMsg) (tea.Model, tea.Cmd) {
	if result.err != nil {
		m.menu.errMsg = humanizeServerUnavailableError(result.err)
		return m, nil
	}

	m.welcome = newWelcomeModel()
	m.currentScreen = screenWelcome
	return m, nil
}

func (m appModel) onUserCreated(result userCreatedMsg) (tea.Model, tea.Cmd) {
	m.userForm.submitting = false
	if result.err != nil {
		m.userForm.errMsg = humanizeServerUnavailableError(result.err)
		return m, nil
	}

	created := result.user
	m.userForm.created = &created
	for i := range m.userForm.inputs {
		m.userForm.inputs[i].SetValue("")
	}
	m.userForm.focus = 0
	return m, nil
}

func (m appModel) onSchoolCreated(result schoolCreatedMsg) (tea.Model, tea.Cmd) {
	m.schoolForm.submitting = false
	if result.err != nil {
		m.schoolForm.errMsg = humanizeServerUnavailableError(result.err)
		return m, nil
	}

	created := result.school
	m.schoolForm.created = &created
	m.schoolForm.input.SetValue("")
	return m, nil
}

func (m appModel) onUsersLoaded(result usersLoadedMsg) (tea.Model, tea.Cmd) {
	m.usersList.loading = false
	if result.err != nil {
		m.usersList.errMsg = humanizeServerUnavailableError(result.err)
		return m, nil
	}

	m.usersList.users = result.users
	if m.usersList.idx >= len(result.users) {
		m.usersList.idx = 0
	}
	return m, nil
}

func (m appModel) onProfileLoaded(result profileLoadedMsg) (tea.Model, tea.Cmd) {
	m.profile.loading = false
	if result.err != nil {
		m.profile.errMsg = humanizeServerUnavailableError(result.err)
		return m, nil
	}

	m.profile.user = result.user
	return m, nil
}

func (m appModel) onCopied(result copiedMsg) (tea.Model, tea.Cmd) {
	status := "Email copied to clipboard"
	if result.err != nil {
		status = "Clipboard unavailable"
	}

	switch m.currentScreen {
	case screenUserList:
		m.usersList.status = status
	case screenCreateUser:
		m.userForm.errMsg = ""
		if result.err != nil {
			m.userForm.errMsg = status
		}
	}
	return m, nil
}

// ─────────────────────────────────────────────
// Async commands
// ─────────────────────────────────────────────

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		err := auth.Login(ctx, models.LoginRequest{Email: email, Password: password})
		return authDoneMsg{err: err}
	}
}

func (m appModel) cmdRegister(name, email, password string) tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		err := auth.RegisterAdmin(ctx, models.CreateUserRequest{Name: name, Email: email, Password: password})
		return registerDoneMsg{email: email, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdCreateUser(role models.Role, req models.CreateUserRequest) tea.Cmd {
	ctx, users := m.ctx, m.services.UserService
	return func() tea.Msg {
		var (
			user models.PublicUser
			err  error
		)
		switch role {
		case models.RoleSchoolAdmin:
			user, err = users.CreateSchoolAdmin(ctx, req)
		case models.RoleTeacher:
			user, err = users.CreateTeacher(ctx, req)
		default:
			user, err = users.CreateStudent(ctx, req)
		}
		return userCreatedMsg{user: user, err: err}
	}
}

func (m appModel) cmdCreateSchool(name string) tea.Cmd {
	ctx, schools := m.ctx, m.services.SchoolService
	return func() tea.Msg {
		school, err := schools.CreateSchool(ctx, models.CreateSchoolRequest{Name: name})
		return schoolCreatedMsg{school: school, err: err}
	}
}

func (m appModel) cmdLoadUsers() tea.Cmd {
	ctx, users := m.ctx, m.services.UserService
	return func() tea.Msg {
		loaded, err := users.ListUsers(ctx, models.UserFilter{})
		return usersLoadedMsg{users: loaded, err: err}
	}
}

func (m appModel) cmdLoadProfile() tea.Cmd {
	ctx, users := m.ctx, m.services.UserService
	return func() tea.Msg {
		me, err := users.RefreshMe(ctx)
		return profileLoadedMsg{user: me, err: err}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
