package domain

// RepairStatus — статус заявки на ремонт.
type RepairStatus string

const (
	RepairPending         RepairStatus = "Pending"
	RepairInProgress      RepairStatus = "In Progress"
	RepairWaitingForParts RepairStatus = "Waiting for Parts"
	RepairCompleted       RepairStatus = "Completed"
	RepairRejected        RepairStatus = "Rejected"
)

// RepairRequest описывает заявку на ремонт обуви
type RepairRequest struct {
	ID                      string       `json:"id"`
	CustomerName            string       `json:"customerName"`
	Email                   string       `json:"email"`
	Phone                   string       `json:"phone"`
	ProductName             string       `json:"productName"`
	IssueDescription        string       `json:"issueDescription"`
	Status                  RepairStatus `json:"status"`
	Date                    string       `json:"date"`
	EstimatedCost           int64        `json:"estimatedCostCents"`
	ImageURL                string       `json:"imageUrl,omitempty"`
	EstimatedCompletionDate string       `json:"estimatedCompletionDate,omitempty"`
}

func (r RepairRequest) RecordID() string { return r.ID }

// ValidRepairStatus проверяет, что строка является допустимым статусом заявки.
func ValidRepairStatus(s RepairStatus) bool {
	switch s {
	case RepairPending, RepairInProgress, RepairWaitingForParts, RepairCompleted, RepairRejected:
		return true
	}
	return false
}
