package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"mentora-be/internal/constant"
	"mentora-be/internal/dto"
	"mentora-be/internal/metrics"
	"mentora-be/internal/pkg/logger"
	"mentora-be/internal/repository/memory"
	"mentora-be/internal/repository/specification"
	"mentora-be/internal/repository/unitofwork"
	"mentora-be/pkg/chatbot"
	"mentora-be/pkg/events"
	"mentora-be/pkg/llm"
	pktNats "mentora-be/pkg/nats"
	"mentora-be/pkg/nlp"
	"mentora-be/pkg/search"
	"mentora-be/pkg/store"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPassword = errors.New("invalid password")

type IChatbotService interface {
	Login(ctx context.Context, req *dto.ChatbotLoginRequest) (*dto.ChatbotLoginResponse, error)
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

// chatbotService drives the full query pipeline: session gate, intent
// routing, corpus search and response composition. The heavy lifting
// lives in pkg/chatbot and pkg/search; this layer feeds them corpus
// snapshots and records the outcome.
type chatbotService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *memory.SessionRepository

	router     *chatbot.Router
	engine     *search.Engine
	composer   *chatbot.Composer
	classifier *nlp.EmotionClassifier

	eventPublisher *pktNats.Publisher
	llmProvider    llm.LLMProvider
	chatLogger     logger.ILogger
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	router *chatbot.Router,
	engine *search.Engine,
	composer *chatbot.Composer,
	classifier *nlp.EmotionClassifier,
	eventPublisher *pktNats.Publisher,
	llmProvider llm.LLMProvider,
	chatLogger logger.ILogger,
) IChatbotService {
	return &chatbotService{
		uowFactory:     uowFactory,
		sessions:       sessions,
		router:         router,
		engine:         engine,
		composer:       composer,
		classifier:     classifier,
		eventPublisher: eventPublisher,
		llmProvider:    llmProvider,
		chatLogger:     chatLogger,
	}
}

// Login verifies the shared chatbot password and opens a session. The
// login timestamp is what the per-message gate later compares against
// the credential's last change.
func (s *chatbotService) Login(ctx context.Context, req *dto.ChatbotLoginRequest) (*dto.ChatbotLoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cred, err := uow.CredentialRepository().FindOne(ctx)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, errors.New("chatbot credential not configured")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidPassword
	}

	session := &store.Session{
		ID:             uuid.New().String(),
		LoginTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
	s.sessions.Save(session)

	return &dto.ChatbotLoginResponse{
		SessionId:      session.ID,
		LoginTimestamp: session.LoginTimestamp,
	}, nil
}

// Chat handles one student message end to end.
func (s *chatbotService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	timer := prometheus.NewTimer(metrics.ChatDuration)
	defer timer.ObserveDuration()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, found := s.sessions.Get(req.SessionId)
	if !found {
		metrics.SessionRejections.Inc()
		return s.expiredResponse(req.SessionId), nil
	}

	cred, err := uow.CredentialRepository().FindOne(ctx)
	if err != nil {
		return nil, err
	}
	lastChanged := ""
	if cred != nil {
		lastChanged = cred.LastChanged
	}
	if !chatbot.ValidSession(session.LoginTimestamp, lastChanged) {
		s.sessions.Delete(req.SessionId)
		metrics.SessionRejections.Inc()
		return s.expiredResponse(req.SessionId), nil
	}

	intent, resp, emotion, err := s.respond(ctx, uow, req.Message)
	if err != nil {
		return nil, err
	}

	session.Exchanges++
	session.LastQuery = req.Message
	s.sessions.Save(session)

	s.chatLogger.Info("CHAT", "exchange handled", map[string]interface{}{
		"session_id": req.SessionId,
		"intent":     string(intent),
		"message":    req.Message,
	})

	if s.eventPublisher != nil {
		evt := events.NewChatHandledEvent(req.SessionId, string(intent), emotion)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.chatLogger.Warn("CHAT", "failed to publish chat event", map[string]interface{}{
				"error": err,
			})
		}
	}

	return &dto.ChatResponse{
		SessionId: req.SessionId,
		Intent:    string(intent),
		Response:  resp,
	}, nil
}

func (s *chatbotService) expiredResponse(sessionID string) *dto.ChatResponse {
	return &dto.ChatResponse{
		SessionId: sessionID,
		Intent:    "session_expired",
		Response:  chatbot.NewSessionExpiredResponse(constant.SessionExpiredMessage),
	}
}

// respond routes the message and composes the reply from whichever
// corpus the intent calls for. The third return is the emotion label,
// set only on the mental-health path.
func (s *chatbotService) respond(ctx context.Context, uow unitofwork.UnitOfWork, message string) (chatbot.Intent, chatbot.Response, string, error) {
	if strings.TrimSpace(message) == "" {
		return chatbot.IntentUnknown, s.composer.Fallback(), "", nil
	}

	intent, norm := s.router.Route(message)
	metrics.ChatRequests.WithLabelValues(string(intent)).Inc()

	switch intent {
	case chatbot.IntentGreeting:
		return intent, s.composer.Greeting(), "", nil

	case chatbot.IntentNotesRequest:
		subjects, err := s.loadSubjects(ctx, uow)
		if err != nil {
			// Corpus reads degrade to the empty-corpus text, never a 500.
			s.chatLogger.Warn("CHAT", "note corpus unavailable", map[string]interface{}{
				"error": err,
			})
			return intent, chatbot.NewTextResponse(constant.NoNotesMessage), "", nil
		}
		results := s.engine.SearchUnits(message, subjects)
		return intent, s.composer.Notes(norm, results, subjects), "", nil

	case chatbot.IntentPYQRequest:
		docs, err := s.loadDocuments(ctx, uow)
		if err != nil {
			s.chatLogger.Warn("CHAT", "archive corpus unavailable", map[string]interface{}{
				"error": err,
			})
			return intent, chatbot.NewTextResponse(constant.NoArchiveMessage), "", nil
		}
		results := s.engine.SearchDocuments(message, docs)
		return intent, s.composer.Archive(results, docs), "", nil

	case chatbot.IntentMentalHealth:
		verdict := s.classifier.Classify(norm)
		metrics.EmotionVerdicts.WithLabelValues(verdict.Label).Inc()
		return intent, s.composer.MentalHealth(norm), verdict.Label, nil

	default:
		resp, err := s.respondUnknown(ctx, uow, message)
		return intent, resp, "", err
	}
}

func (s *chatbotService) respondUnknown(ctx context.Context, uow unitofwork.UnitOfWork, message string) (chatbot.Response, error) {
	items, err := uow.InfoRepository().FindAll(ctx)
	if err != nil {
		s.chatLogger.Warn("CHAT", "info corpus unavailable", map[string]interface{}{
			"error": err,
		})
		return s.composer.Fallback(), nil
	}
	entries, err := uow.KnowledgeRepository().FindAll(ctx)
	if err != nil {
		s.chatLogger.Warn("CHAT", "knowledge base unavailable", map[string]interface{}{
			"error": err,
		})
		return s.composer.Fallback(), nil
	}

	infoCorpus := make([]search.InfoItem, len(items))
	for i, item := range items {
		infoCorpus[i] = search.InfoItem{
			Category: item.Category,
			Title:    item.Title,
			Content:  item.Content,
			Keywords: item.Keywords,
		}
	}
	knowledge := make([]search.KnowledgeEntry, len(entries))
	for i, entry := range entries {
		knowledge[i] = search.KnowledgeEntry{
			Question: entry.Question,
			Answer:   entry.Answer,
		}
	}

	info := s.engine.SearchInfo(message, infoCorpus)
	answer, hasKnowledge := s.engine.MatchKnowledge(message, knowledge)

	resp, unanswered := s.composer.Unknown(message, info, answer, hasKnowledge)
	if unanswered {
		metrics.UnansweredQueries.Inc()
		if s.llmProvider != nil {
			if text, llmErr := s.llmProvider.Generate(ctx, message); llmErr == nil && text != "" {
				resp = chatbot.NewTextResponse(text)
			}
		}
	}
	return resp, nil
}

func (s *chatbotService) loadSubjects(ctx context.Context, uow unitofwork.UnitOfWork) ([]search.Subject, error) {
	subjects, err := uow.SubjectRepository().FindAll(ctx, specification.WithUnits{})
	if err != nil {
		return nil, err
	}

	corpus := make([]search.Subject, len(subjects))
	for i, subject := range subjects {
		units := make([]search.Unit, len(subject.Units))
		for j, unit := range subject.Units {
			units[j] = search.Unit{
				Name:       unit.Name,
				Filename:   unit.Filename,
				Keywords:   unit.Keywords,
				UploadedAt: unit.UploadedAt,
			}
		}
		corpus[i] = search.Subject{
			Name:     subject.Name,
			Keywords: subject.Keywords,
			Units:    units,
		}
	}
	return corpus, nil
}

func (s *chatbotService) loadDocuments(ctx context.Context, uow unitofwork.UnitOfWork) ([]search.Document, error) {
	docs, err := uow.ArchiveRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	corpus := make([]search.Document, len(docs))
	for i, doc := range docs {
		corpus[i] = search.Document{
			ID:         doc.Id.String(),
			Name:       doc.Name,
			Type:       search.DocType(doc.Type),
			Filename:   doc.Filename,
			Keywords:   doc.Keywords,
			UploadedAt: doc.UploadedAt,
		}
	}
	return corpus, nil
}
