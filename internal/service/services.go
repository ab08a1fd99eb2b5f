package service

import (
	"github.com/mkarev/go-school-admin/internal/config"
	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/store"
)

type Services struct {
	AuthService   AuthService
	UserService   UserService
	SchoolService SchoolService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg, logger),
		UserService:   NewUserService(storages.UserRepository, storages.SchoolRepository, cfg, logger),
		SchoolService: NewSchoolService(storages.SchoolRepository, logger),
	}
}
