package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/koliko-tech/admin-backend/internal/domain"
)

// AUTH

// LoginReq — запрос аутентификации администратора.
type LoginReq struct {
	Email    string
	Password string
}

// LoginRes — выданная сессия.
type LoginRes struct {
	Token string
	Email string
	Role  string
}

// PRODUCTS

// CreateProductReq — запрос на создание товара. Цена уже в копейках.
type CreateProductReq struct {
	Name        string
	Price       int64
	Category    string
	Stock       int64
	ImageURL    string
	Images      []string
	Description string
}

// ORDERS

// OrderPatch — частичное обновление заказа. Применяются только ненулевые поля,
// последняя запись выигрывает по каждому полю в отдельности.
type OrderPatch struct {
	Status                *domain.OrderStatus
	TrackingNumber        *string
	EstimatedDeliveryDate *string
}

// REPAIRS

// CreateRepairReq — запрос на создание заявки на ремонт.
type CreateRepairReq struct {
	CustomerName            string
	Email                   string
	Phone                   string
	ProductName             string
	IssueDescription        string
	Status                  domain.RepairStatus
	Date                    string
	EstimatedCost           int64
	ImageURL                string
	EstimatedCompletionDate string
}

// RepairPatch — частичное обновление заявки на ремонт.
type RepairPatch struct {
	Status                  *domain.RepairStatus
	EstimatedCost           *int64
	EstimatedCompletionDate *string
	IssueDescription        *string
}

// INVENTORY

// AdjustStockReq — запрос на корректировку остатка товара.
type AdjustStockReq struct {
	ProductID  string
	Adjustment int64
	Reason     domain.AdjustmentReason
	User       string
}

// PROMOTIONS

// CreatePromotionReq — запрос на создание промокода.
type CreatePromotionReq struct {
	Code           string
	Type           domain.PromotionType
	Value          int64
	StartDate      string
	EndDate        string
	MinOrderAmount int64
}

// PromotionInfo — промокод с вычисленным на момент чтения статусом.
type PromotionInfo struct {
	domain.Promotion
	Status domain.PromotionStatus `json:"status"`
}

// FINANCE

// FinanceSummary — сводка по финансовому журналу, в копейках.
type FinanceSummary struct {
	TotalIncome   int64 `json:"totalIncomeCents"`
	TotalExpenses int64 `json:"totalExpensesCents"`
	NetProfit     int64 `json:"netProfitCents"`
}

// ANALYTICS

// MonthlyRevenue — выручка и число заказов за месяц.
type MonthlyRevenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenueCents"`
	Orders  int64  `json:"orders"`
}

// AnalyticsPoint — одна точка аналитики (название/значение).
type AnalyticsPoint struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// SETTINGS

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Preferences struct {
	EmailNotifications bool `json:"emailNotifications"`
	LowStockAlerts     bool `json:"lowStockAlerts"`
	OrderUpdates       bool `json:"orderUpdates"`
}

type ProfileUpdateReq struct {
	Name  string
	Email string
	Phone string
}

type PreferencesUpdateReq struct {
	EmailNotifications *bool
	LowStockAlerts     *bool
	OrderUpdates       *bool
}

// STORAGE

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// UploadImagesReq — запрос на загрузку изображений товара.
type UploadImagesReq struct {
	Name   string
	Images []ProductImage
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	StockChanged OutboxEventType = "stock.changed"
)

// OutboxEvent — событие, ожидающее публикации в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	EntityID    string // ID товара, ключ партиционирования
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// StockChangedPayload — JSON-тело события stock.changed.
type StockChangedPayload struct {
	EventID      string `json:"eventId"`
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	Change       int64  `json:"change"`
	CurrentStock int64  `json:"currentStock"`
	Reason       string `json:"reason"`
	User         string `json:"user"`
	OccurredAt   string `json:"occurredAt"`
}

type WriteRawMessageReq struct {
	EntityID string
	Payload  []byte
}

// MAPPERS

func NewLoginReq(email, password string) *LoginReq {
	return &LoginReq{Email: email, Password: password}
}

func NewLoginRes(token, email, role string) *LoginRes {
	return &LoginRes{Token: token, Email: email, Role: role}
}

func NewAdjustStockReq(productID string, adjustment int64, reason domain.AdjustmentReason, user string) *AdjustStockReq {
	return &AdjustStockReq{
		ProductID:  productID,
		Adjustment: adjustment,
		Reason:     reason,
		User:       user,
	}
}

func NewPromotionInfo(promo domain.Promotion, now time.Time) PromotionInfo {
	return PromotionInfo{
		Promotion: promo,
		Status:    promo.StatusAt(now),
	}
}

func NewFinanceSummary(income, expenses int64) *FinanceSummary {
	return &FinanceSummary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetProfit:     income - expenses,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImagesReq(name string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Name:   name,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{ImagesKeys: imagesKeys}
}

func NewWriteRawMessageReq(entityID string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{EntityID: entityID, Payload: payload}
}

// NewStockChangedOutboxEvent формирует outbox-событие из записи журнала.
// Вызывается хранилищем внутри той же атомарной операции, что и корректировка.
func NewStockChangedOutboxEvent(log *domain.InventoryLog) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	payload, err := json.Marshal(StockChangedPayload{
		EventID:      eventID,
		ProductID:    log.ProductID,
		ProductName:  log.ProductName,
		Change:       log.Change,
		CurrentStock: log.CurrentStock,
		Reason:       string(log.Reason),
		User:         log.User,
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		EventID:   eventID,
		EventType: StockChanged,
		EntityID:  log.ProductID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}, nil
}
