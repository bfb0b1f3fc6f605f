package config

import "errors"

var (
	// ErrProviderNotFound возвращается, когда провайдер не найден в каталоге
	ErrProviderNotFound = errors.New("config.service: provider not found")

	// ErrAccessDenied возвращается при отсутствии прав на операцию
	ErrAccessDenied = errors.New("config.service: access denied")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config.service: invalid config values")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("config.service: internal error")
)
