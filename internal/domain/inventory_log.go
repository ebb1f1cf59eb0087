package domain

// AdjustmentReason — причина изменения остатка.
type AdjustmentReason string

const (
	ReasonRestock    AdjustmentReason = "Restock"
	ReasonOrder      AdjustmentReason = "Order"
	ReasonAdjustment AdjustmentReason = "Adjustment"
	ReasonDamage     AdjustmentReason = "Damage"
	ReasonReturn     AdjustmentReason = "Return"
)

// InventoryLog описывает одну корректировку складского остатка.
// currentStock — остаток товара сразу после применения change; записи
// создаются только вместе с изменением остатка, в одной операции хранилища.
type InventoryLog struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"productId"`
	ProductName  string           `json:"productName"`
	Change       int64            `json:"change"`
	CurrentStock int64            `json:"currentStock"`
	Reason       AdjustmentReason `json:"reason"`
	Date         string           `json:"date"` // формат 2006-01-02 15:04
	User         string           `json:"user"`
}

func (l InventoryLog) RecordID() string { return l.ID }

// ValidAdjustmentReason проверяет, что строка является допустимой причиной корректировки.
func ValidAdjustmentReason(r AdjustmentReason) bool {
	switch r {
	case ReasonRestock, ReasonOrder, ReasonAdjustment, ReasonDamage, ReasonReturn:
		return true
	}
	return false
}
