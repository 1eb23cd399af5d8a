package apperrors

import "errors"

var (
	ErrServerNotFound          = errors.New("server not found")
	ErrServerNameAlreadyExists = errors.New("server name already exists")
	ErrConfigKeyNotFound       = errors.New("config key not found")
	ErrInvalidPayload          = errors.New("invalid monitor payload")
	ErrNoCredentials           = errors.New("server has no stored credentials")
)
