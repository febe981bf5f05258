package bootstrap

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"mentora-be/internal/config"
	"mentora-be/internal/constant"
	"mentora-be/internal/controller"
	"mentora-be/internal/dto"
	"mentora-be/internal/pkg/logger"
	"mentora-be/internal/repository/memory"
	"mentora-be/internal/repository/unitofwork"
	"mentora-be/internal/service"
	"mentora-be/pkg/chatbot"
	"mentora-be/pkg/llm"
	"mentora-be/pkg/llm/factory"
	pktNats "mentora-be/pkg/nats"
	"mentora-be/pkg/nlp"
	"mentora-be/pkg/search"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	AuthController    controller.IAuthController
	SubjectController controller.ISubjectController
	ArchiveController controller.IArchiveController
	InfoController    controller.IInfoController

	// Background Services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	NatsPublisher *pktNats.Publisher
	Logger        logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	chatLogger := logger.NewIsolatedLogger(cfg.App.ChatLogFilePath)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(pubSub, cfg.Topics.UnansweredQueries)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Topics.UnansweredQueries,
		uowFactory,
		sysLogger,
	)

	// 3. Infrastructure
	var natsPub *pktNats.Publisher
	if cfg.App.NatsEnabled {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
	}

	var llmProvider llm.LLMProvider
	if cfg.Ai.LLMProvider != "" {
		var err error
		llmProvider, err = factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, cfg.Ai.OllamaBaseURL)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
		}
		log.Printf("[INFO] Using LLM fallback: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.Auth.SessionTTLHours) * time.Hour)

	// 4. Query pipeline
	normalizer := nlp.NewNormalizer()
	classifier := nlp.NewEmotionClassifier(constant.DefaultEmotionTable)
	synonyms := loadSynonyms(uowFactory, sysLogger)

	router := chatbot.NewRouter(
		normalizer,
		synonyms,
		constant.GreetingKeywords,
		constant.NotesKeywords,
		constant.ArchiveKeywords,
		constant.DefaultEmotionTable,
	)
	engine := search.NewEngine(normalizer, synonyms)

	onUnanswered := func(rawText string) {
		msg := dto.UnansweredQueryMessage{
			Query:   rawText,
			AskedAt: time.Now().UTC().Format(time.RFC3339),
		}
		payload, err := json.Marshal(msg)
		if err != nil {
			return
		}
		if err := publisherService.Publish(context.Background(), payload); err != nil {
			sysLogger.Warn("BOOTSTRAP", "failed to publish unanswered query", map[string]interface{}{
				"error": err,
			})
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	composer := chatbot.NewComposer(normalizer, classifier, rng, onUnanswered)

	// 5. Services
	chatbotService := service.NewChatbotService(
		uowFactory,
		sessionRepo,
		router,
		engine,
		composer,
		classifier,
		natsPub,
		llmProvider,
		chatLogger,
	)
	authService := service.NewAuthService(uowFactory, natsPub)
	subjectService := service.NewSubjectService(uowFactory)
	archiveService := service.NewArchiveService(uowFactory)
	infoService := service.NewInfoService(uowFactory)

	// 6. Controllers
	return &Container{
		ChatController:    controller.NewChatController(chatbotService),
		AuthController:    controller.NewAuthController(authService),
		SubjectController: controller.NewSubjectController(subjectService),
		ArchiveController: controller.NewArchiveController(archiveService),
		InfoController:    controller.NewInfoController(infoService),

		ConsumerService: consumerService,
		NatsPublisher:   natsPub,
		Logger:          sysLogger,
	}
}

// loadSynonyms builds the synonym table from the database rows layered
// over the built-in defaults. A row with a canonical term already in the
// defaults replaces that entry.
func loadSynonyms(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger) nlp.SynonymTable {
	table := make(nlp.SynonymTable, len(constant.DefaultSynonyms))
	for canonical, alternates := range constant.DefaultSynonyms {
		table[canonical] = alternates
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	uow := uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.SynonymRepository().FindAll(ctx)
	if err != nil {
		sysLogger.Warn("BOOTSTRAP", "failed to load synonyms, using defaults", map[string]interface{}{
			"error": err,
		})
		return table
	}

	for _, row := range rows {
		table[row.Canonical] = row.Alternates
	}
	return table
}
