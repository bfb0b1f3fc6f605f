package providerconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда у провайдера нет сохранённой конфигурации
	ErrConfigNotFound = errors.New("providerconfig.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("providerconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("providerconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("providerconfig.repository: failed to scan row")
)
