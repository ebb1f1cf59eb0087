package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

// Notifier будит outbox-воркера при появлении новых событий.
// Для Postgres это LISTEN/NOTIFY, для in-memory хранилища — канал в процессе.
type Notifier interface {
	// Listen блокируется до отмены контекста, отправляя сигнал в wake
	// при каждом новом событии. Сигнал без свободного места в канале
	// отбрасывается: воркер и так выгребет всё при следующем проходе.
	Listen(ctx context.Context, wake chan<- struct{})
}

// ChanNotifier — notifier для in-memory хранилища: мутация будит воркера
// напрямую через канал.
type ChanNotifier struct {
	signals chan struct{}
}

func NewChanNotifier() *ChanNotifier {
	return &ChanNotifier{signals: make(chan struct{}, 1)}
}

// Notify сигнализирует о новом событии. Неблокирующий.
func (n *ChanNotifier) Notify() {
	select {
	case n.signals <- struct{}{}:
	default:
	}
}

func (n *ChanNotifier) Listen(ctx context.Context, wake chan<- struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-n.signals:
			select {
			case wake <- struct{}{}:
			default:
			}
		}
	}
}

// PgNotifier слушает канал outbox_pending в Postgres.
type PgNotifier struct {
	dbConnStr string
	logger    logger.Logger
}

func NewPgNotifier(dbConnStr string, logger logger.Logger) *PgNotifier {
	return &PgNotifier{dbConnStr: dbConnStr, logger: logger}
}

func (n *PgNotifier) Listen(ctx context.Context, wake chan<- struct{}) {
	var conn *pgx.Conn
	var err error

	connect := func() error {
		conn, err = pgx.Connect(ctx, n.dbConnStr)
		if err != nil {
			return e.Wrap("failed to connect for LISTEN", err)
		}

		_, err = conn.Exec(ctx, "LISTEN outbox_pending")
		if err != nil {
			conn.Close(ctx)
			return e.Wrap("failed to LISTEN", err)
		}

		n.logger.Infof("Subscribed to 'outbox_pending' channel")
		return nil
	}

	if err := connect(); err != nil {
		n.logger.Warnf("Initial connect failed: %v", err)
		return
	}
	defer conn.Close(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
		notif, err := conn.WaitForNotification(ctxWithTimeout)
		cancel()

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				continue
			}
			n.logger.Warnf("Connection lost: %v. Reconnecting...", err)
			conn.Close(ctx)

			time.Sleep(2 * time.Second)
			if err := connect(); err != nil {
				n.logger.Warnf("Reconnect failed: %v", err)
				time.Sleep(5 * time.Second)
			}
			continue
		}

		if notif != nil && notif.Channel == "outbox_pending" {
			select {
			case wake <- struct{}{}:
			default:
			}
		}
	}
}
