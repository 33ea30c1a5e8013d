package bootstrap

import (
	"context"
	"log"

	"bookstore-be/internal/cart"
	"bookstore-be/internal/config"
	"bookstore-be/internal/controller"
	"bookstore-be/internal/pkg/logger"
	"bookstore-be/internal/pkg/mailer"
	"bookstore-be/internal/repository/contract"
	"bookstore-be/internal/repository/memory"
	redisrepo "bookstore-be/internal/repository/redis"
	"bookstore-be/internal/repository/unitofwork"
	"bookstore-be/internal/service"
	"bookstore-be/pkg/embedding"
	"bookstore-be/pkg/llm/factory"
	pktNats "bookstore-be/pkg/nats"
	"bookstore-be/pkg/recommend"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CartController           controller.ICartController
	CatalogController        controller.ICatalogController
	RecommendationController controller.IRecommendationController
	CheckoutController       controller.ICheckoutController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	embeddingProvider := embedding.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.EmbeddingModel,
	)
	log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis backs the cart sessions and the recommendation cache; both
	// degrade to in-process stores when it is unreachable.
	var sessionStore cart.Store
	var recommendationCache contract.RecommendationCache

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory stores", err)
		sessionStore = memory.NewSessionStore()
		recommendationCache = memory.NewRecommendationCache()
	} else {
		sessionStore = redisrepo.NewSessionStore(rdb)
		recommendationCache = redisrepo.NewRecommendationCache(rdb)
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.EmbedBookTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EmbedBookTopic,
		uowFactory,
		embeddingProvider,
	)

	cartService := service.NewCartService(sessionStore, uowFactory, sysLogger)
	catalogService := service.NewCatalogService(uowFactory, publisherService)
	recommendationService := service.NewRecommendationService(
		uowFactory,
		embeddingProvider,
		recommend.NewGenerator(llmProvider),
		recommendationCache,
		sysLogger,
	)
	checkoutService := service.NewCheckoutService(
		cfg,
		sessionStore,
		uowFactory,
		emailService,
		natsPub,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		CartController:           controller.NewCartController(cartService),
		CatalogController:        controller.NewCatalogController(catalogService),
		RecommendationController: controller.NewRecommendationController(recommendationService),
		CheckoutController:       controller.NewCheckoutController(checkoutService),
		ConsumerService:          consumerService,
		Logger:                   sysLogger,
	}
}
