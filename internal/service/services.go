package service

import (
	"github.com/apryandito/user-directory/internal/config"
	"github.com/apryandito/user-directory/internal/logger"
	"github.com/apryandito/user-directory/internal/store"
	"github.com/apryandito/user-directory/internal/validators"
)

type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) *Services {
	validator := validators.NewUserValidator()

	return &Services{
		AuthService: NewAuthService(userRepository, validator, cfg, logger),
		UserService: NewUserService(userRepository, validator, logger),
	}
}
