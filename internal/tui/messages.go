package tui

import (
	"github.com/mkarev/go-school-admin/models"
)

type authDoneMsg struct {
	err error
}

type registerDoneMsg struct {
	email string
	err   error
}

type userCreatedMsg struct {
	user models.PublicUser
	err  error
}

type schoolCreatedMsg struct {
	school models.School
	err    error
}

type usersLoadedMsg struct {
	users []models.PublicUser
	err   error
}

type profileLoadedMsg struct {
	user models.PublicUser
	err  error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct {
	err error
}
