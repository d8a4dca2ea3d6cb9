package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YelzhanWeb/takeaway/internal/adapter/logger"
	"github.com/YelzhanWeb/takeaway/internal/adapter/memory"
	"github.com/YelzhanWeb/takeaway/internal/adapter/postgres"
	"github.com/YelzhanWeb/takeaway/internal/adapter/rabbitmq"
	"github.com/YelzhanWeb/takeaway/internal/adapter/sms"
	"github.com/YelzhanWeb/takeaway/internal/app/catalog"
	"github.com/YelzhanWeb/takeaway/internal/app/notification"
	"github.com/YelzhanWeb/takeaway/internal/app/order"
	"github.com/YelzhanWeb/takeaway/internal/clock"
	"github.com/YelzhanWeb/takeaway/internal/config"
	"github.com/YelzhanWeb/takeaway/internal/domain"
	"github.com/YelzhanWeb/takeaway/internal/interfaces"

	amqpAdapter "github.com/YelzhanWeb/takeaway/internal/adapter/amqp"
	httpAdapter "github.com/YelzhanWeb/takeaway/internal/adapter/http"
)

const (
	notifierSMS   = "sms"
	notifierQueue = "queue"

	publishTimeout = 5 * time.Second
)

func main() {
	// Parse command-line flags
	mode := flag.String("mode", "", "Service mode: order-service, notification-subscriber")
	configPath := flag.String("config", "config.yaml", "Path to config file")
	envPath := flag.String("env", ".env", "Path to .env file with TWILIO_* and other overrides")
	port := flag.Int("port", 0, "HTTP port (defaults to server.port from config)")
	notifierKind := flag.String("notifier", notifierSMS, "How order confirmations are sent: sms, queue")
	prefetch := flag.Int("prefetch", 1, "RabbitMQ prefetch count")
	flag.Parse()

	if *mode == "" {
		log.Fatal("--mode flag is required")
	}

	if err := config.LoadEnvFile(*envPath); err != nil {
		log.Fatalf("Failed to load env file: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lgr := logger.New(*mode)

	switch *mode {
	case "order-service":
		runOrderService(ctx, cfg, lgr, *notifierKind)

	case "notification-subscriber":
		runNotificationSubscriber(ctx, cancel, cfg, lgr, *prefetch)

	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

func runOrderService(ctx context.Context, cfg *config.Config, lgr logger.Logger, notifierKind string) {
	if err := cfg.ValidateMenu(); err != nil {
		log.Fatalf("Invalid menu config: %v", err)
	}

	repo, closeRepo := openDishRepository(ctx, cfg, lgr)
	defer closeRepo()

	menu := domain.NewMenu()
	catalogService := catalog.NewService(repo, lgr)
	if _, err := catalogService.Load(ctx, menu); err != nil {
		log.Fatalf("Failed to load menu: %v", err)
	}

	notifier, closeNotifier := openNotifier(cfg, lgr, notifierKind)
	defer closeNotifier()

	orderService := order.NewService(menu, notifier, clock.NewSystem(), lgr)

	handler := httpAdapter.NewRouter(
		httpAdapter.NewTakeawayHandler(orderService, lgr),
		httpAdapter.NewMenuHandler(catalogService, menu, lgr),
		lgr,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("Order Service started on port %d", cfg.Server.Port), "startup", map[string]interface{}{
		"port":        cfg.Server.Port,
		"menu_source": cfg.Menu.Source,
		"notifier":    notifierKind,
		"dishes":      len(menu.All()),
	})

	// Graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down Order Service", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}

// openDishRepository returns the catalogue store selected by menu.source
func openDishRepository(ctx context.Context, cfg *config.Config, lgr logger.Logger) (interfaces.DishRepository, func()) {
	if cfg.Menu.Source == config.MenuSourcePostgres {
		db, err := postgres.Connect(ctx, cfg.DatabaseURL())
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			db.Close()
			log.Fatalf("Failed to prepare schema: %v", err)
		}

		lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
			"host": cfg.Database.Host,
			"db":   cfg.Database.Database,
		})
		return postgres.NewDishRepository(db), db.Close
	}

	dishes, err := config.LoadMenuFile(cfg.Menu.File)
	if err != nil {
		log.Fatalf("Failed to read menu file: %v", err)
	}
	return memory.NewDishRepository(dishes...), func() {}
}

// openNotifier builds the confirmation transport used when an order is placed
func openNotifier(cfg *config.Config, lgr logger.Logger, kind string) (interfaces.Notifier, func()) {
	switch kind {
	case notifierSMS:
		if err := cfg.ValidateSMS(); err != nil {
			log.Fatalf("Invalid SMS config: %v", err)
		}
		return sms.NewNotifier(smsConfig(cfg), lgr), func() {}

	case notifierQueue:
		mqConn, err := rabbitmq.Connect(cfg.RabbitMQURL())
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}

		lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
			"host": cfg.RabbitMQ.Host,
		})
		notifier := rabbitmq.NewQueuedNotifier(rabbitmq.NewPublisher(mqConn), publishTimeout, lgr)
		return notifier, func() { mqConn.Close() }

	default:
		log.Fatalf("Invalid notifier: %s", kind)
		return nil, nil
	}
}

func runNotificationSubscriber(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, lgr logger.Logger, prefetch int) {
	if err := cfg.ValidateSMS(); err != nil {
		log.Fatalf("Invalid SMS config: %v", err)
	}

	mqConn, err := rabbitmq.Connect(cfg.RabbitMQURL())
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})

	consumer := rabbitmq.NewConsumer(mqConn, prefetch, lgr)
	notificationService := notification.NewService(sms.NewNotifier(smsConfig(cfg), lgr), lgr)
	confirmationHandler := amqpAdapter.NewConfirmationHandler(notificationService, lgr)

	lgr.Info("service_started", "Notification Subscriber started", "startup", map[string]interface{}{
		"prefetch": prefetch,
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := consumer.ConsumeConfirmations(ctx, confirmationHandler.HandleConfirmation); err != nil && ctx.Err() == nil {
			lgr.Error("consumer_error", "Error consuming confirmations", "runtime", nil, err)
		}
	}()

	// Wait for shutdown signal
	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigint:
	case <-done:
	}

	lgr.Info("shutdown_initiated", "Shutting down Notification Subscriber", "shutdown", nil)
	cancel()
	<-done
}

func smsConfig(cfg *config.Config) sms.Config {
	return sms.Config{
		AccountSID: cfg.SMS.AccountSID,
		AuthToken:  cfg.SMS.AuthToken,
		From:       cfg.SMS.From,
		To:         cfg.SMS.To,
	}
}
