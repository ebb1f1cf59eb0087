package domain

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Префиксы идентификаторов по типам ресурсов.
const (
	OrderIDPrefix       = "ORD"
	CustomerIDPrefix    = "CUST"
	RepairIDPrefix      = "REP"
	TransactionIDPrefix = "TRX"
	LogIDPrefix         = "LOG"
	PromotionIDPrefix   = "PRO"
)

var (
	idRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	idMu   sync.Mutex
)

// NewPrefixedID генерирует идентификатор вида PREFIX-NNNN.
// Уникальность внутри коллекции обеспечивает хранилище (повторная генерация при коллизии).
func NewPrefixedID(prefix string) string {
	idMu.Lock()
	n := idRand.Intn(10000)
	idMu.Unlock()
	return fmt.Sprintf("%s-%04d", prefix, n)
}

// NewProductID генерирует идентификатор товара. Формат свободный.
func NewProductID() string {
	return uuid.NewString()
}
