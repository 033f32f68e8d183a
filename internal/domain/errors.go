package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	ErrUsernameTaken = fmt.Errorf("%w: username already exists", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email already exists", ErrConflict)

	// 用户不存在与密码错误共用同一个错误，避免泄露用户名是否存在
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrUnauthorized)
)
