package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dharmachain/config"
	"dharmachain/cron"
	"dharmachain/database"
	"dharmachain/database/repository"
	causeRepo "dharmachain/database/repository/cause"
	"dharmachain/handlers"
	"dharmachain/middleware"
	"dharmachain/routes"
	"dharmachain/services/admin"
	"dharmachain/services/auth"
	"dharmachain/services/content"
	"dharmachain/services/donation"
	"dharmachain/services/editor"
	ai "dharmachain/services/intelligence"
	"dharmachain/services/notification"
	"dharmachain/services/storage"
	"dharmachain/utils"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	bootLogger := utils.InitializeLogger(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	cfg, err := config.LoadConfig()
	if err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			bootLogger.Fatal("Missing configuration", zap.Strings("missing", cfgErr.Missing))
		}
		bootLogger.Fatal("Failed to load configuration", zap.Error(err))
	}
	logger := utils.InitializeLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pingers := map[string]utils.Pinger{}

	// Backends.
	var (
		firebaseApp *firebase.App
		mongoClient *mongo.Client
		contentRepo repository.ContentRepository
		categories  repository.CategoryRepository
	)
	switch cfg.ContentBackend {
	case "firestore":
		firebaseApp, err = database.InitFirebase(ctx, database.FirebaseOptions{
			ProjectID:       cfg.FirebaseProjectID,
			CredentialsFile: cfg.FirebaseCredentialsFile,
			StorageBucket:   cfg.FirebaseBucket,
		})
		if err != nil {
			logger.Fatal("Failed to initialize Firebase", zap.Error(err))
		}
		fs, err := database.Firestore(ctx, firebaseApp)
		if err != nil {
			logger.Fatal("Failed to open Firestore", zap.Error(err))
		}
		defer fs.Close()
		contentRepo = repository.NewFirestoreContentRepo(fs)
		categories = repository.NewMemoryCategoryRepo(causeRepo.SeedCategories())
	case "mongo":
		mongoClient, err = database.InitMongo(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		defer mongoClient.Disconnect(context.Background())
		contentRepo = repository.NewMongoContentRepo(mongoClient, cfg.MongoDatabase)
		categories = repository.NewMongoCategoryRepo(mongoClient.Database(cfg.MongoDatabase))
		if err := causeRepo.SeedIfEmpty(ctx, categories, causeRepo.SeedCategories()); err != nil {
			logger.Warn("Failed to seed donation categories", zap.Error(err))
		}
	case "memory":
		logger.Warn("Using in-memory content store; edits are lost on restart")
		contentRepo = repository.NewMemoryContentRepo(nil)
		categories = repository.NewMemoryCategoryRepo(causeRepo.SeedCategories())
	default:
		logger.Fatal("Unknown CONTENT_BACKEND", zap.String("backend", cfg.ContentBackend))
	}
	pingers["content"] = contentRepo

	var cacheClient *redis.Client
	if cfg.RedisAddr != "" {
		cacheClient, err = database.InitRedis(database.RedisOptions{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisCacheDB})
		if err != nil {
			logger.Warn("Redis unavailable, running without cache", zap.Error(err))
			cacheClient = nil
		} else {
			defer cacheClient.Close()
			pingers["redis"] = utils.PingFunc(func(ctx context.Context) error { return cacheClient.Ping(ctx).Err() })
		}
	}

	// Content and editor.
	var contentCache content.Cache
	if cacheClient != nil {
		contentCache = content.NewRedisCache(cacheClient, cfg.ContentCacheTTL)
	}
	store := content.NewContentService(contentRepo, contentCache, logger.Named("content"))

	var uploader storage.ImageUploader
	switch cfg.ImageBackend {
	case "cloudinary":
		if u, err := storage.NewCloudinaryUploader(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret); err != nil {
			logger.Warn("Cloudinary not configured, image uploads disabled", zap.Error(err))
		} else {
			uploader = u
		}
	case "firebase":
		if firebaseApp == nil {
			logger.Warn("Firebase storage needs CONTENT_BACKEND=firestore, image uploads disabled")
		} else if u, err := storage.NewFirebaseUploader(ctx, firebaseApp, cfg.FirebaseBucket); err != nil {
			logger.Warn("Firebase storage unavailable, image uploads disabled", zap.Error(err))
		} else {
			uploader = u
		}
	}
	aboutEditor := editor.New(store, uploader, logger.Named("editor"))

	// Authorization gate.
	tokens, err := auth.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		logger.Fatal("Failed to create token manager", zap.Error(err))
	}
	allow := auth.ParseAllowList(cfg.AdminEmails)
	if allow.Len() == 0 {
		logger.Warn("ADMIN_EMAILS is empty; nobody can sign in to the admin panel")
	}
	provider, err := auth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.RedirectURL())
	if err != nil {
		logger.Fatal("Failed to configure Google sign-in", zap.Error(err))
	}
	gate, err := auth.NewGate(allow, provider.Name(), tokens, logger.Named("auth"))
	if err != nil {
		logger.Fatal("Failed to create authorization gate", zap.Error(err))
	}

	// Donations and confirmation emails.
	var sender notification.EmailSender = notification.NewLogSender(logger.Named("mail"))
	if cfg.ResendAPIKey != "" {
		sender = notification.NewResendSender(cfg.ResendAPIKey, cfg.MailFrom, logger.Named("mail"))
	}
	mailer := notification.NewEmailNotifier(sender, cfg.DonationNotifyEmail, logger.Named("mail"))

	var notifier donation.Notifier = mailer
	if cacheClient != nil {
		queueOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisQueueDB}
		queue := asynq.NewClient(queueOpts)
		defer queue.Close()
		notifier = notification.NewQueuedNotifier(queue, logger.Named("queue"))
		worker := cron.InitConfirmationWorker(ctx, queueOpts, mailer, logger.Named("worker"))
		defer worker.Shutdown()
	}

	var gateway donation.PaymentGateway = donation.NewMockGateway(time.Second, logger.Named("payments"))
	if cfg.StripeKey != "" {
		if g, err := donation.NewStripeGateway(cfg.StripeKey, logger.Named("payments")); err != nil {
			logger.Warn("Stripe not configured, using simulated payments", zap.Error(err))
		} else {
			gateway = g
		}
	}
	donationService := donation.NewDonationService(gateway, notifier, logger.Named("donations"))

	// AI appeals.
	var appealService ai.AppealService
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("Gemini unavailable, appeal suggestions disabled", zap.Error(err))
		} else {
			defer gemini.Close()
			var appealStore ai.AppealStore
			if cacheClient != nil {
				appealStore = ai.NewRedisAppealStore(cacheClient, ai.AppealCacheTTL)
			}
			appealService = ai.NewAppealService(gemini, appealStore, logger.Named("ai"))
		}
	}

	adminService := admin.NewAdminService(admin.NewDocsRenderer(cfg.DocsPath, logger.Named("docs")))

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger.Named("http")))

	handlerBundle := &handlers.HandlerBundle{
		AuthHandler:     handlers.NewAuthHandler(gate, provider, auth.NewStateCodec(cfg.SessionSecret, cfg.IsProduction()), cfg.SessionTTL, cfg.IsProduction()),
		AboutHandler:    handlers.NewAboutHandler(store, aboutEditor),
		DonationHandler: handlers.NewDonationHandler(donationService),
		CauseHandler:    handlers.NewCauseHandler(categories),
		AppealHandler:   handlers.NewAppealHandler(appealService),
		AdminHandler:    handlers.NewAdminHandler(adminService),
		AdminGuard:      middleware.AdminGuard(gate),
		RateLimit:       middleware.RateLimitMiddleware(middleware.NewRateLimiterStore(cfg.MaxRequestsPerMin)),
	}
	routes.RegisterRoutes(router, handlerBundle, cfg.AllowedOrigins())

	utils.StartHealthMonitor(ctx, 60*time.Second, pingers)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server stopped gracefully")
}
