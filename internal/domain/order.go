package domain

// OrderStatus — статус заказа. Строковые значения фиксированы контрактом API.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

// PaymentMethod — способ оплаты заказа.
type PaymentMethod string

const (
	PaymentMobileMoney PaymentMethod = "Mobile Money"
	PaymentVisa        PaymentMethod = "Visa"
	PaymentGooglePay   PaymentMethod = "Google Pay"
)

// OrderItem — позиция заказа с денормализованным названием товара.
type OrderItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
	Price       int64  `json:"priceCents"`
}

// Order описывает заказ покупателя.
// customerName денормализовано: переименование покупателя не переписывает историю заказов.
type Order struct {
	ID                    string        `json:"id"`
	CustomerID            string        `json:"customerId"`
	CustomerName          string        `json:"customerName"`
	Total                 int64         `json:"totalCents"`
	Status                OrderStatus   `json:"status"`
	Date                  string        `json:"date"` // формат 2006-01-02
	Items                 []OrderItem   `json:"items"`
	PaymentMethod         PaymentMethod `json:"paymentMethod"`
	TrackingNumber        string        `json:"trackingNumber,omitempty"`
	EstimatedDeliveryDate string        `json:"estimatedDeliveryDate,omitempty"`
}

func (o Order) RecordID() string { return o.ID }

// ValidOrderStatus проверяет, что строка является допустимым статусом заказа.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
