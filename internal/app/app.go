package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	config "github.com/koliko-tech/admin-backend/internal/cfg"
	v1Http "github.com/koliko-tech/admin-backend/internal/delivery/v1/http"
	"github.com/koliko-tech/admin-backend/internal/infrastructure/kafka"
	minioInfra "github.com/koliko-tech/admin-backend/internal/infrastructure/minio"
	"github.com/koliko-tech/admin-backend/internal/repository/memstore"
	s3Repo "github.com/koliko-tech/admin-backend/internal/repository/minio"
	"github.com/koliko-tech/admin-backend/internal/repository/pgdb"
	"github.com/koliko-tech/admin-backend/internal/repository/redis"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/clients"
	"github.com/koliko-tech/admin-backend/pkg/closer"
	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/logger"
	"github.com/koliko-tech/admin-backend/pkg/postgres"
)

const (
	shutdownTimeout = 10 * time.Second
	forcedTimeout   = 2 * time.Second
	ensureTimeout   = 10 * time.Second
)

// App собирает все зависимости приложения и управляет их жизненным циклом.
// Redis, MinIO и Kafka опциональны: отсутствие адреса в конфигурации
// отключает соответствующую подсистему, а не роняет запуск.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv *v1Http.Server
	worker  *kafka.OutboxWorker

	// останавливает фоновые горутины воркера и слушателя уведомлений
	workerCancel context.CancelFunc
}

// repositories — набор хранилищ одного бэкенда.
type repositories struct {
	product     usecase.ProductRepository
	order       usecase.OrderRepository
	customer    usecase.CustomerRepository
	repair      usecase.RepairRepository
	transaction usecase.TransactionRepository
	inventory   usecase.InventoryRepository
	promotion   usecase.PromotionRepository
	outbox      usecase.OutboxRepository
	notifier    kafka.Notifier
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(forcedTimeout)

	repos, err := initRepositories(cfg, log, cl)
	if err != nil {
		return nil, err
	}

	cacheRepo, err := initCache(cfg, log, cl)
	if err != nil {
		return nil, err
	}

	// контекст фоновой очистки MinIO живёт до конца shutdown
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())

	imagesInfra, err := initImages(cfg, log, cleanupCtx)
	if err != nil {
		cleanupCancel()
		return nil, err
	}

	app := &App{
		cfg:    cfg,
		logger: log,
		closer: cl,
	}

	if imagesInfra != nil {
		cl.Add(func(ctx context.Context) error {
			defer cleanupCancel()
			return imagesInfra.WaitForCleanup(ctx)
		})
	} else {
		cleanupCancel()
	}

	if len(cfg.Kafka.Brokers) > 0 {
		worker, err := initOutbox(cfg, log, cl, repos)
		if err != nil {
			return nil, err
		}
		app.worker = worker
	} else {
		log.Infof("kafka brokers are not configured, outbox events will stay pending")
	}

	authUC := usecase.NewAuthUC(cfg.Auth, log)

	uc := v1Http.UseCases{
		Auth:      authUC,
		Product:   usecase.NewProductUC(repos.product, cacheRepo, log),
		Order:     usecase.NewOrderUC(repos.order, log),
		Customer:  usecase.NewCustomerUC(repos.customer, log),
		Repair:    usecase.NewRepairUC(repos.repair, log),
		Inventory: usecase.NewInventoryUC(repos.inventory, log),
		Promotion: usecase.NewPromotionUC(repos.promotion, log),
		Finance:   usecase.NewFinanceUC(repos.transaction, log),
		Analytics: usecase.NewAnalyticsUC(repos.order, repos.product, log),
		Settings:  usecase.NewSettingsUC(cfg.Auth.AdminEmail, log),
	}
	if imagesInfra != nil {
		uc.Images = imagesInfra
	}

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(uc)

	app.httpSrv = v1Http.NewServer(r, cfg.Http)

	return app, nil
}

// Run запускает приложение и блокируется до сигнала завершения
// или фатальной ошибки HTTP-сервера.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.worker != nil {
		workerCtx, cancel := context.WithCancel(context.Background())
		a.workerCancel = cancel
		a.worker.Start(workerCtx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-ctx.Done():
		a.logger.Infof("received shutdown signal, stopping gracefully")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	}

	if a.worker != nil {
		a.worker.Stop()
		a.workerCancel()
	}

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		if appErr == nil {
			appErr = err
		}
	}

	a.logger.Infof("application shutdown complete")
	return appErr
}

func initRepositories(cfg *config.Config, log logger.Logger, cl *closer.Closer) (*repositories, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		store := memstore.NewStore(cfg.Store)
		log.Infof("using in-memory store, seed=%t", cfg.Store.Seed)

		return &repositories{
			product:     memstore.NewProductRepo(store),
			order:       memstore.NewOrderRepo(store),
			customer:    memstore.NewCustomerRepo(store),
			repair:      memstore.NewRepairRepo(store),
			transaction: memstore.NewTransactionRepo(store),
			inventory:   memstore.NewInventoryRepo(store),
			promotion:   memstore.NewPromotionRepo(store),
			outbox:      memstore.NewOutboxEventRepo(store),
			notifier:    chanNotifierFor(store),
		}, nil

	case config.BackendPostgres:
		db, err := initPGDB(log, cfg)
		if err != nil {
			return nil, err
		}
		cl.AddSimple(func() error {
			db.Close()
			return nil
		})

		outboxRepo := pgdb.NewOutboxEventRepo(db.Pool)

		return &repositories{
			product:     pgdb.NewProductRepo(db.Pool),
			order:       pgdb.NewOrderRepo(db.Pool),
			customer:    pgdb.NewCustomerRepo(db.Pool),
			repair:      pgdb.NewRepairRepo(db.Pool),
			transaction: pgdb.NewTransactionRepo(db.Pool),
			inventory:   pgdb.NewInventoryRepo(db.Pool, outboxRepo),
			promotion:   pgdb.NewPromotionRepo(db.Pool),
			outbox:      outboxRepo,
			notifier:    kafka.NewPgNotifier(db.Dsn, log),
		}, nil

	default:
		return nil, e.ErrUnknownStoreBackend
	}
}

// chanNotifierFor подключает in-process уведомления:
// запись в outbox memstore сразу будит воркер.
func chanNotifierFor(store *memstore.Store) *kafka.ChanNotifier {
	notifier := kafka.NewChanNotifier()
	store.SetNotifier(notifier.Notify)
	return notifier
}

func initCache(cfg *config.Config, log logger.Logger, cl *closer.Closer) (usecase.CacheRepository, error) {
	if cfg.Redis.Addr == "" {
		log.Infof("redis is not configured, product cache disabled")
		return nil, nil
	}

	redisClient := clients.NewRedisClient(cfg.Redis)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx); err != nil {
		log.Errorf(err, "failed to connect to redis")
		return nil, err
	}

	cl.AddSimple(redisClient.Client.Close)

	return redis.NewCacheRepo(redisClient, cfg.Redis, log), nil
}

func initImages(cfg *config.Config, log logger.Logger, cleanupCtx context.Context) (*minioInfra.MinioInfrastructure, error) {
	if cfg.Minio.MinioEndpoint == "" {
		log.Infof("minio is not configured, image upload disabled")
		return nil, nil
	}

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		log.Errorf(err, "failed to initialize minio client")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), ensureTimeout)
	defer cancel()
	if err := clients.EnsureBucket(ctx, minioClient, cfg.Minio.BucketName); err != nil {
		log.Errorf(err, "failed to initialize minio bucket")
		return nil, err
	}

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	return minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, cleanupCtx), nil
}

func initOutbox(cfg *config.Config, log logger.Logger, cl *closer.Closer, repos *repositories) (*kafka.OutboxWorker, error) {
	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		return nil, err
	}

	if err := producer.EnsureTopic(ensureTimeout); err != nil {
		log.Errorf(err, "failed to ensure kafka topic")
		return nil, err
	}

	cl.AddSimple(producer.Close)

	return kafka.NewOutboxWorker(repos.outbox, log, producer, repos.notifier), nil
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, err
	}

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		return nil, err
	}

	if err := db.Ping(); err != nil {
		log.Errorf(err, "failed to ping database")
		return nil, err
	}

	return db, nil
}
