package domain

// ProductStatus — статус видимости товара в каталоге.
type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
)

// Product описывает товар каталога
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Price       int64         `json:"priceCents"` // Цена хранится в копейках
	Category    string        `json:"category"`
	Stock       int64         `json:"stock"`
	ImageURL    string        `json:"imageUrl"` // Основное изображение
	Images      []string      `json:"images"`   // Галерея
	Status      ProductStatus `json:"status"`
	Description string        `json:"description,omitempty"`
}

func NewProduct(name string, price int64, category string, stock int64, imageURL string, images []string, description string) *Product {
	return &Product{
		ID:          NewProductID(),
		Name:        name,
		Price:       price,
		Category:    category,
		Stock:       stock,
		ImageURL:    imageURL,
		Images:      images,
		Status:      ProductActive,
		Description: description,
	}
}

func (p Product) RecordID() string { return p.ID }

// ValidProductStatus проверяет, что строка является допустимым статусом товара.
func ValidProductStatus(s ProductStatus) bool {
	return s == ProductActive || s == ProductInactive
}
