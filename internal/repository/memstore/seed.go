package memstore

import (
	"github.com/koliko-tech/admin-backend/internal/domain"
)

// seed наполняет хранилище демонстрационными данными магазина.
func (s *Store) seed() {
	s.products = []domain.Product{
		{
			ID:       "1",
			Name:     "Koliko Runner V1",
			Price:    8999,
			Category: "Sneakers",
			Stock:    45,
			ImageURL: "https://picsum.photos/seed/shoe1/400/400",
			Images: []string{
				"https://picsum.photos/seed/shoe1/400/400",
				"https://picsum.photos/seed/shoe1b/400/400",
				"https://picsum.photos/seed/shoe1c/400/400",
			},
			Status:      domain.ProductActive,
			Description: "Lightweight running shoe with breathable mesh upper.",
		},
		{
			ID:          "2",
			Name:        "Urban Street Loafer",
			Price:       12050,
			Category:    "Formal",
			Stock:       12,
			ImageURL:    "https://picsum.photos/seed/shoe2/400/400",
			Images:      []string{"https://picsum.photos/seed/shoe2/400/400"},
			Status:      domain.ProductActive,
			Description: "Classic leather loafer for everyday wear.",
		},
		{
			ID:          "3",
			Name:        "Velocity Trainer",
			Price:       9500,
			Category:    "Sports",
			Stock:       0,
			ImageURL:    "https://picsum.photos/seed/shoe3/400/400",
			Images:      []string{"https://picsum.photos/seed/shoe3/400/400"},
			Status:      domain.ProductInactive,
			Description: "High performance trainer for the gym.",
		},
		{
			ID:          "4",
			Name:        "Summer Breeze Sandal",
			Price:       4599,
			Category:    "Sandals",
			Stock:       100,
			ImageURL:    "https://picsum.photos/seed/shoe4/400/400",
			Images:      []string{"https://picsum.photos/seed/shoe4/400/400"},
			Status:      domain.ProductActive,
			Description: "Comfortable sandal for warm days.",
		},
		{
			ID:          "5",
			Name:        "Classic High Top",
			Price:       7800,
			Category:    "Sneakers",
			Stock:       8,
			ImageURL:    "https://picsum.photos/seed/shoe5/400/400",
			Images:      []string{"https://picsum.photos/seed/shoe5/400/400"},
			Status:      domain.ProductActive,
			Description: "Timeless high top silhouette in canvas.",
		},
	}

	s.orders = []domain.Order{
		{
			ID:           "ORD-7721",
			CustomerID:   "CUST-001",
			CustomerName: "Alex Mensah",
			Total:        17998,
			Status:       domain.OrderDelivered,
			Date:         "2023-10-15",
			PaymentMethod: domain.PaymentMobileMoney,
			Items: []domain.OrderItem{
				{ProductID: "1", ProductName: "Koliko Runner V1", Quantity: 2, Price: 8999},
			},
			TrackingNumber: "TRK-553819",
		},
		{
			ID:           "ORD-7722",
			CustomerID:   "CUST-002",
			CustomerName: "Sarah Osei",
			Total:        12050,
			Status:       domain.OrderProcessing,
			Date:         "2023-10-18",
			PaymentMethod: domain.PaymentVisa,
			Items: []domain.OrderItem{
				{ProductID: "2", ProductName: "Urban Street Loafer", Quantity: 1, Price: 12050},
			},
		},
		{
			ID:           "ORD-7723",
			CustomerID:   "CUST-003",
			CustomerName: "Kwame Boateng",
			Total:        9198,
			Status:       domain.OrderPending,
			Date:         "2023-10-19",
			PaymentMethod: domain.PaymentGooglePay,
			Items: []domain.OrderItem{
				{ProductID: "4", ProductName: "Summer Breeze Sandal", Quantity: 2, Price: 4599},
			},
		},
		{
			ID:           "ORD-7724",
			CustomerID:   "CUST-004",
			CustomerName: "Ama Darko",
			Total:        7800,
			Status:       domain.OrderCancelled,
			Date:         "2023-10-20",
			PaymentMethod: domain.PaymentMobileMoney,
			Items: []domain.OrderItem{
				{ProductID: "5", ProductName: "Classic High Top", Quantity: 1, Price: 7800},
			},
		},
	}

	s.customers = []domain.Customer{
		{
			ID:          "CUST-001",
			Name:        "Alex Mensah",
			Email:       "alex.mensah@example.com",
			Phone:       "+233 24 111 2233",
			TotalOrders: 8,
			TotalSpent:  124500,
			Status:      domain.CustomerActive,
			JoinDate:    "2023-01-12",
			LastActive:  "2023-10-15",
			AvatarURL:   "https://picsum.photos/seed/cust1/100/100",
		},
		{
			ID:          "CUST-002",
			Name:        "Sarah Osei",
			Email:       "sarah.osei@example.com",
			Phone:       "+233 20 444 5566",
			TotalOrders: 3,
			TotalSpent:  36150,
			Status:      domain.CustomerActive,
			JoinDate:    "2023-03-04",
			LastActive:  "2023-10-18",
			AvatarURL:   "https://picsum.photos/seed/cust2/100/100",
		},
		{
			ID:          "CUST-003",
			Name:        "Kwame Boateng",
			Email:       "kwame.b@example.com",
			Phone:       "+233 26 777 8899",
			TotalOrders: 1,
			TotalSpent:  9198,
			Status:      domain.CustomerActive,
			JoinDate:    "2023-09-22",
			LastActive:  "2023-10-19",
			AvatarURL:   "https://picsum.photos/seed/cust3/100/100",
		},
		{
			ID:          "CUST-004",
			Name:        "Ama Darko",
			Email:       "ama.darko@example.com",
			Phone:       "+233 27 222 3344",
			TotalOrders: 5,
			TotalSpent:  64200,
			Status:      domain.CustomerSuspended,
			JoinDate:    "2022-11-30",
			LastActive:  "2023-10-01",
			AvatarURL:   "https://picsum.photos/seed/cust4/100/100",
		},
		{
			ID:          "CUST-005",
			Name:        "Kofi Adjei",
			Email:       "kofi.adjei@example.com",
			Phone:       "+233 54 999 0011",
			TotalOrders: 2,
			TotalSpent:  18500,
			Status:      domain.CustomerActive,
			JoinDate:    "2023-06-17",
			LastActive:  "2023-09-28",
			AvatarURL:   "https://picsum.photos/seed/cust5/100/100",
		},
	}

	s.repairs = []domain.RepairRequest{
		{
			ID:               "REP-1001",
			CustomerName:     "Alex Mensah",
			Email:            "alex.mensah@example.com",
			Phone:            "+233 24 111 2233",
			ProductName:      "Koliko Runner V1",
			IssueDescription: "Sole separation on the left shoe.",
			Status:           domain.RepairInProgress,
			Date:             "2023-10-10",
			EstimatedCost:    2500,
			ImageURL:         "https://picsum.photos/seed/rep1/300/300",
			EstimatedCompletionDate: "2023-10-25",
		},
		{
			ID:               "REP-1002",
			CustomerName:     "Sarah Osei",
			Email:            "sarah.osei@example.com",
			Phone:            "+233 20 444 5566",
			ProductName:      "Urban Street Loafer",
			IssueDescription: "Broken heel, needs replacement.",
			Status:           domain.RepairPending,
			Date:             "2023-10-17",
			EstimatedCost:    4000,
		},
		{
			ID:               "REP-1003",
			CustomerName:     "Kofi Adjei",
			Email:            "kofi.adjei@example.com",
			Phone:            "+233 54 999 0011",
			ProductName:      "Classic High Top",
			IssueDescription: "Torn canvas near the toe box.",
			Status:           domain.RepairWaitingForParts,
			Date:             "2023-10-05",
			EstimatedCost:    1800,
			EstimatedCompletionDate: "2023-11-02",
		},
		{
			ID:               "REP-1004",
			CustomerName:     "Ama Darko",
			Email:            "ama.darko@example.com",
			Phone:            "+233 27 222 3344",
			ProductName:      "Velocity Trainer",
			IssueDescription: "Eyelet came off, lacing impossible.",
			Status:           domain.RepairCompleted,
			Date:             "2023-09-20",
			EstimatedCost:    1200,
		},
	}

	s.transactions = []domain.Transaction{
		{ID: "TRX-9001", Date: "2023-10-15", Reference: "ORD-7721", Type: domain.TransactionCredit, Category: domain.CategoryOrder, Amount: 17998, Status: domain.TransactionCompleted, Description: "Payment for order ORD-7721"},
		{ID: "TRX-9002", Date: "2023-10-18", Reference: "ORD-7722", Type: domain.TransactionCredit, Category: domain.CategoryOrder, Amount: 12050, Status: domain.TransactionPending, Description: "Payment for order ORD-7722"},
		{ID: "TRX-9003", Date: "2023-10-19", Reference: "ORD-7723", Type: domain.TransactionCredit, Category: domain.CategoryOrder, Amount: 9198, Status: domain.TransactionCompleted, Description: "Payment for order ORD-7723"},
		{ID: "TRX-9004", Date: "2023-10-20", Reference: "ORD-7724", Type: domain.TransactionDebit, Category: domain.CategoryRefund, Amount: 7800, Status: domain.TransactionCompleted, Description: "Refund for cancelled order ORD-7724"},
		{ID: "TRX-9005", Date: "2023-10-01", Reference: "PAYROLL-OCT", Type: domain.TransactionDebit, Category: domain.CategorySalary, Amount: 250000, Status: domain.TransactionCompleted, Description: "October payroll"},
		{ID: "TRX-9006", Date: "2023-10-03", Reference: "SUPPLY-204", Type: domain.TransactionDebit, Category: domain.CategoryInventory, Amount: 98000, Status: domain.TransactionFailed, Description: "Stock replenishment, payment bounced"},
	}

	s.logs = []domain.InventoryLog{
		{ID: "LOG-001", ProductID: "1", ProductName: "Koliko Runner V1", Change: 50, CurrentStock: 50, Reason: domain.ReasonRestock, Date: "2023-10-01 09:15", User: "admin@koliko.com"},
		{ID: "LOG-002", ProductID: "1", ProductName: "Koliko Runner V1", Change: -5, CurrentStock: 45, Reason: domain.ReasonOrder, Date: "2023-10-15 14:02", User: "system"},
		{ID: "LOG-003", ProductID: "3", ProductName: "Velocity Trainer", Change: -2, CurrentStock: 0, Reason: domain.ReasonDamage, Date: "2023-10-12 11:40", User: "admin@koliko.com"},
		{ID: "LOG-004", ProductID: "4", ProductName: "Summer Breeze Sandal", Change: 100, CurrentStock: 100, Reason: domain.ReasonRestock, Date: "2023-10-08 16:25", User: "admin@koliko.com"},
	}

	s.promotions = []domain.Promotion{
		{ID: "PRO-1", Code: "WELCOME10", Type: domain.PromotionPercentage, Value: 10, StartDate: "2023-01-01", EndDate: "2026-12-31", UsageCount: 342, MinOrderAmount: 5000},
		{ID: "PRO-2", Code: "FLASH50", Type: domain.PromotionFixed, Value: 5000, StartDate: "2023-10-18", EndDate: "2026-10-21", UsageCount: 27, MinOrderAmount: 15000},
		{ID: "PRO-3", Code: "SUMMER23", Type: domain.PromotionPercentage, Value: 25, StartDate: "2023-06-01", EndDate: "2023-08-31", UsageCount: 1204, Disabled: true},
	}
}
