package main

import (
	"context"
	"time"

	config "github.com/davicafu/bizreg/internal/config"
	infraEvents "github.com/davicafu/bizreg/internal/infra/events"
	notifApp "github.com/davicafu/bizreg/internal/notification/application"
	notifDomain "github.com/davicafu/bizreg/internal/notification/domain"
	notifEvents "github.com/davicafu/bizreg/internal/notification/infra/inbound/events"
	"github.com/davicafu/bizreg/internal/notification/infra/outbound/email"
	"github.com/davicafu/bizreg/internal/notification/infra/outbound/tracker"
	regApp "github.com/davicafu/bizreg/internal/registration/application"
	regHttp "github.com/davicafu/bizreg/internal/registration/infra/inbound/http"
	searchApp "github.com/davicafu/bizreg/internal/searchlog/application"
	searchHttp "github.com/davicafu/bizreg/internal/searchlog/infra/inbound/http"
	"github.com/davicafu/bizreg/internal/searchlog/infra/outbound/filesystem"
	sharedBus "github.com/davicafu/bizreg/internal/shared/bus"
	sharedEvents "github.com/davicafu/bizreg/internal/shared/events"

	"github.com/davicafu/bizreg/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ---------------- Main ----------------
func main() {
	logger.Init()
	log := logger.Logger()
	defer log.Sync()

	ctx := context.Background()
	cfg := config.LoadConfig()

	// ------------- Search log -------------
	searchStore := filesystem.NewCSVSearchLogStore(cfg.SearchLogPath)
	searchService := searchApp.NewSearchLogService(searchStore, log)

	// ---------------- Email ----------------
	mailer := email.NewSMTPMailer(email.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
	})

	// Advisory check: a failure is logged but does not stop the service.
	ctxVerify, cancelVerify := context.WithTimeout(ctx, 5*time.Second)
	if err := mailer.Verify(ctxVerify); err != nil {
		log.Warn("⚠️ Email transport unreachable, continuing anyway", zap.Error(err))
	} else {
		log.Info("✅ Email server is ready to send emails")
	}
	cancelVerify()

	// ------------- Dedup tracker -----------
	var processed notifDomain.ProcessedTracker
	if cfg.DedupEnabled {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("⚠️ Redis unavailable, using in-memory processed tracker", zap.Error(err))
			processed = tracker.NewInMemoryTracker()
		} else {
			log.Info("✅ Redis connected, processed tracker enabled")
			processed = tracker.NewRedisTracker(rdb, cfg.DedupTTL)
		}
	}

	// ---------------- Events ---------------
	var registeredPublisher sharedBus.EventPublisher
	var resultPublisher sharedBus.EventPublisher

	if cfg.UseKafka {
		log.Info("🚀 Using Kafka as event bus")

		ctxTopics, cancelTopics := context.WithTimeout(ctx, 10*time.Second)
		if err := infraEvents.EnsureTopics(ctxTopics, cfg.KafkaBrokers[0],
			sharedEvents.TopicBusinessRegistered,
			sharedEvents.TopicSendEmail,
			sharedEvents.TopicSearchLogs,
		); err != nil {
			log.Fatal("failed to provision Kafka topics", zap.Error(err))
		}
		cancelTopics()

		registeredWriter := kafka.NewWriter(kafka.WriterConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   sharedEvents.TopicBusinessRegistered,
		})
		resultWriter := kafka.NewWriter(kafka.WriterConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   sharedEvents.TopicSendEmail,
		})
		defer registeredWriter.Close()
		defer resultWriter.Close()

		registeredPublisher = infraEvents.NewKafkaPublisher(registeredWriter, log)
		resultPublisher = infraEvents.NewKafkaPublisher(resultWriter, log)

		notifService := notifApp.NewNotificationService(
			mailer, resultPublisher, processed, cfg.EmailTimeout, cfg.PublishTimeout, log)
		consumer := notifEvents.NewRegistrationConsumer(notifService, log)

		registeredReader := kafka.NewReader(kafka.ReaderConfig{
			Brokers:  cfg.KafkaBrokers,
			Topic:    sharedEvents.TopicBusinessRegistered,
			GroupID:  cfg.GroupID,
			MinBytes: 10e3, // 10KB
			MaxBytes: 10e6, // 10MB
		})
		defer registeredReader.Close()

		consumerAdapter := infraEvents.NewConsumerAdapter(registeredReader, consumer, log)
		consumerAdapter.Start(ctx)

	} else {
		log.Info("⚡️ Using in-memory event bus (Go channels)")

		registeredBus := infraEvents.NewInMemoryEventBus(sharedEvents.TopicBusinessRegistered)
		resultBus := infraEvents.NewInMemoryEventBus(sharedEvents.TopicSendEmail)

		registeredPublisher = registeredBus
		resultPublisher = resultBus

		notifService := notifApp.NewNotificationService(
			mailer, resultPublisher, processed, cfg.EmailTimeout, cfg.PublishTimeout, log)
		consumer := notifEvents.NewRegistrationConsumer(notifService, log)

		log.Info("🎧 Starting in-memory listener for registration events")
		notifEvents.BackgroundConsumerChan(ctx, registeredBus.Subscribe(10), consumer)
	}

	// --------------- Services --------------
	registrationService := regApp.NewRegistrationService(registeredPublisher, cfg.PublishTimeout, log)

	// ---------------- HTTP ----------------
	registrationHandler := regHttp.NewRegistrationHandler(registrationService)
	searchLogHandler := searchHttp.NewSearchLogHandler(searchService)

	router := gin.Default()
	regHttp.RegisterRegistrationRoutes(router, registrationHandler)
	searchHttp.RegisterSearchLogRoutes(router, searchLogHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Info("🚀 Server running",
		zap.String("url", "http://localhost:"+cfg.HTTPPort),
	)
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
