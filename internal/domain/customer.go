package domain

// CustomerStatus — статус учётной записи покупателя.
type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "active"
	CustomerSuspended CustomerStatus = "suspended"
)

// Customer описывает покупателя магазина
type Customer struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	TotalOrders int64          `json:"totalOrders"`
	TotalSpent  int64          `json:"totalSpentCents"`
	Status      CustomerStatus `json:"status"`
	JoinDate    string         `json:"joinDate"`
	LastActive  string         `json:"lastActive"`
	AvatarURL   string         `json:"avatarUrl,omitempty"`
}

func (c Customer) RecordID() string { return c.ID }

// ValidCustomerStatus проверяет, что строка является допустимым статусом покупателя.
func ValidCustomerStatus(s CustomerStatus) bool {
	return s == CustomerActive || s == CustomerSuspended
}
