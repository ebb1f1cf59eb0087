package domain

// TransactionType — направление финансовой операции.
type TransactionType string

const (
	TransactionCredit TransactionType = "Credit"
	TransactionDebit  TransactionType = "Debit"
)

// TransactionCategory — категория финансовой операции.
type TransactionCategory string

const (
	CategoryOrder     TransactionCategory = "Order"
	CategoryRefund    TransactionCategory = "Refund"
	CategoryExpense   TransactionCategory = "Expense"
	CategorySalary    TransactionCategory = "Salary"
	CategoryInventory TransactionCategory = "Inventory"
)

// TransactionStatus — статус финансовой операции.
type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "Completed"
	TransactionPending   TransactionStatus = "Pending"
	TransactionFailed    TransactionStatus = "Failed"
)

// Transaction описывает запись финансового журнала
type Transaction struct {
	ID          string              `json:"id"`
	Date        string              `json:"date"`
	Reference   string              `json:"reference"`
	Type        TransactionType     `json:"type"`
	Category    TransactionCategory `json:"category"`
	Amount      int64               `json:"amountCents"`
	Status      TransactionStatus   `json:"status"`
	Description string              `json:"description"`
}

func (t Transaction) RecordID() string { return t.ID }
