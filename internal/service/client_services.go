package service

import (
	"github.com/mkarev/go-school-admin/internal/adapter"
	"github.com/mkarev/go-school-admin/internal/session"
)

type ClientServices struct {
	AuthService   ClientAuthService
	UserService   ClientUserService
	SchoolService ClientSchoolService
}

func NewClientServices(sessions *session.Store, serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		AuthService:   NewClientAuthService(sessions, serverAdapter),
		UserService:   NewClientUserService(sessions, serverAdapter),
		SchoolService: NewClientSchoolService(sessions, serverAdapter),
	}
}
