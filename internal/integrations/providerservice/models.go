package providerservice

// Provider модель провайдера (фотограф, студия, ведущий) из каталога маркетплейса
type Provider struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	OwnerUserID    int64   `json:"owner_user_id"`
	ManagerUserIDs []int64 `json:"manager_user_ids"`
	City           *string `json:"city,omitempty"`
	IsActive       bool    `json:"is_active"`
}

// IsManagedBy возвращает true, если пользователь управляет провайдером
func (p *Provider) IsManagedBy(userID int64) bool {
	if p.OwnerUserID == userID {
		return true
	}
	for _, id := range p.ManagerUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Listing модель листинга услуги из каталога маркетплейса
type Listing struct {
	ID         int64  `json:"id"`
	ProviderID int64  `json:"provider_id"`
	Title      string `json:"title"`

	// TariffUnit единица тарификации: hour | half_day | day | session | package
	TariffUnit string `json:"tariff_unit"`

	// UnitPrice цена за единицу тарификации
	// nil означает договорную цену: сумма приходит из принятой заявки
	UnitPrice *float64 `json:"unit_price,omitempty"`

	// UnitHours объявленная провайдером длительность одной единицы в часах
	// Обязательно для session/package
	UnitHours int `json:"unit_hours"`

	// DepositPercent перекрывает процент предоплаты провайдера для этого листинга
	DepositPercent *int `json:"deposit_percent,omitempty"`

	IsActive bool `json:"is_active"`
}

// HasFixedPricing возвращает true, если листинг тарифицируется по прайсу
func (l *Listing) HasFixedPricing() bool {
	return l.UnitPrice != nil
}

// ErrorResponse модель ошибки от ProviderService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
