package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"mentora-be/internal/constant"
	"mentora-be/internal/dto"
	"mentora-be/internal/entity"
	"mentora-be/internal/pkg/logger"
	"mentora-be/internal/repository/contract"
	"mentora-be/internal/repository/memory"
	"mentora-be/internal/repository/specification"
	"mentora-be/internal/repository/unitofwork"
	"mentora-be/pkg/chatbot"
	"mentora-be/pkg/nlp"
	"mentora-be/pkg/search"
	"mentora-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeStore is the shared in-memory backing for every fake repository.
// The err fields make the corresponding FindAll fail, to exercise the
// degraded read paths.
type fakeStore struct {
	credential *entity.ChatbotCredential
	admins     []*entity.AdminUser
	subjects   []*entity.Subject
	documents  []*entity.ArchiveDocument
	infoItems  []*entity.InfoItem
	knowledge  []*entity.KnowledgeEntry
	unanswered []*entity.UnansweredQuery
	synonyms   []*entity.Synonym

	subjectsErr  error
	documentsErr error
	infoErr      error
}

type fakeUow struct{ store *fakeStore }

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) SubjectRepository() contract.SubjectRepository { return &fakeSubjectRepo{u.store} }
func (u *fakeUow) UnitRepository() contract.UnitRepository       { return &fakeUnitRepo{} }
func (u *fakeUow) ArchiveRepository() contract.ArchiveRepository { return &fakeArchiveRepo{u.store} }
func (u *fakeUow) InfoRepository() contract.InfoRepository       { return &fakeInfoRepo{u.store} }
func (u *fakeUow) KnowledgeRepository() contract.KnowledgeRepository {
	return &fakeKnowledgeRepo{u.store}
}
func (u *fakeUow) UnansweredQueryRepository() contract.UnansweredQueryRepository {
	return &fakeUnansweredRepo{u.store}
}
func (u *fakeUow) SynonymRepository() contract.SynonymRepository { return &fakeSynonymRepo{u.store} }
func (u *fakeUow) CredentialRepository() contract.CredentialRepository {
	return &fakeCredentialRepo{u.store}
}
func (u *fakeUow) AdminUserRepository() contract.AdminUserRepository {
	return &fakeAdminRepo{u.store}
}

type fakeFactory struct{ store *fakeStore }

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeSubjectRepo struct{ store *fakeStore }

func (r *fakeSubjectRepo) Create(ctx context.Context, s *entity.Subject) error {
	r.store.subjects = append(r.store.subjects, s)
	return nil
}
func (r *fakeSubjectRepo) Update(ctx context.Context, s *entity.Subject) error { return nil }
func (r *fakeSubjectRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *fakeSubjectRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subject, error) {
	if len(r.store.subjects) == 0 {
		return nil, nil
	}
	return r.store.subjects[0], nil
}
func (r *fakeSubjectRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subject, error) {
	if r.store.subjectsErr != nil {
		return nil, r.store.subjectsErr
	}
	return r.store.subjects, nil
}
func (r *fakeSubjectRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.subjects)), nil
}

type fakeUnitRepo struct{}

func (r *fakeUnitRepo) Create(ctx context.Context, u *entity.Unit) error { return nil }
func (r *fakeUnitRepo) Update(ctx context.Context, u *entity.Unit) error { return nil }
func (r *fakeUnitRepo) Delete(ctx context.Context, id uuid.UUID) error   { return nil }
func (r *fakeUnitRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Unit, error) {
	return nil, nil
}
func (r *fakeUnitRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Unit, error) {
	return nil, nil
}
func (r *fakeUnitRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeArchiveRepo struct{ store *fakeStore }

func (r *fakeArchiveRepo) Create(ctx context.Context, d *entity.ArchiveDocument) error {
	r.store.documents = append(r.store.documents, d)
	return nil
}
func (r *fakeArchiveRepo) Update(ctx context.Context, d *entity.ArchiveDocument) error { return nil }
func (r *fakeArchiveRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (r *fakeArchiveRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ArchiveDocument, error) {
	return nil, nil
}
func (r *fakeArchiveRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ArchiveDocument, error) {
	if r.store.documentsErr != nil {
		return nil, r.store.documentsErr
	}
	return r.store.documents, nil
}
func (r *fakeArchiveRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.documents)), nil
}

type fakeInfoRepo struct{ store *fakeStore }

func (r *fakeInfoRepo) Create(ctx context.Context, i *entity.InfoItem) error {
	r.store.infoItems = append(r.store.infoItems, i)
	return nil
}
func (r *fakeInfoRepo) Update(ctx context.Context, i *entity.InfoItem) error { return nil }
func (r *fakeInfoRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }
func (r *fakeInfoRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InfoItem, error) {
	return nil, nil
}
func (r *fakeInfoRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InfoItem, error) {
	if r.store.infoErr != nil {
		return nil, r.store.infoErr
	}
	return r.store.infoItems, nil
}
func (r *fakeInfoRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.infoItems)), nil
}

type fakeKnowledgeRepo struct{ store *fakeStore }

func (r *fakeKnowledgeRepo) Create(ctx context.Context, k *entity.KnowledgeEntry) error {
	r.store.knowledge = append(r.store.knowledge, k)
	return nil
}
func (r *fakeKnowledgeRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeKnowledgeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeEntry, error) {
	return nil, nil
}
func (r *fakeKnowledgeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntry, error) {
	return r.store.knowledge, nil
}

type fakeUnansweredRepo struct{ store *fakeStore }

func (r *fakeUnansweredRepo) Create(ctx context.Context, q *entity.UnansweredQuery) error {
	r.store.unanswered = append(r.store.unanswered, q)
	return nil
}
func (r *fakeUnansweredRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeUnansweredRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UnansweredQuery, error) {
	return r.store.unanswered, nil
}
func (r *fakeUnansweredRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.unanswered)), nil
}

type fakeSynonymRepo struct{ store *fakeStore }

func (r *fakeSynonymRepo) Create(ctx context.Context, s *entity.Synonym) error {
	r.store.synonyms = append(r.store.synonyms, s)
	return nil
}
func (r *fakeSynonymRepo) Update(ctx context.Context, s *entity.Synonym) error { return nil }
func (r *fakeSynonymRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *fakeSynonymRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Synonym, error) {
	return nil, nil
}
func (r *fakeSynonymRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Synonym, error) {
	return r.store.synonyms, nil
}

type fakeCredentialRepo struct{ store *fakeStore }

func (r *fakeCredentialRepo) Create(ctx context.Context, c *entity.ChatbotCredential) error {
	r.store.credential = c
	return nil
}
func (r *fakeCredentialRepo) Update(ctx context.Context, c *entity.ChatbotCredential) error {
	r.store.credential = c
	return nil
}
func (r *fakeCredentialRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatbotCredential, error) {
	return r.store.credential, nil
}

type fakeAdminRepo struct{ store *fakeStore }

func (r *fakeAdminRepo) Create(ctx context.Context, a *entity.AdminUser) error {
	r.store.admins = append(r.store.admins, a)
	return nil
}
func (r *fakeAdminRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminUser, error) {
	for _, admin := range r.store.admins {
		for _, spec := range specs {
			if byUsername, ok := spec.(specification.ByUsername); ok && admin.Username == byUsername.Username {
				return admin, nil
			}
		}
	}
	return nil, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

var _ logger.ILogger = nopLogger{}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

type chatFixture struct {
	svc        IChatbotService
	sessions   *memory.SessionRepository
	store      *fakeStore
	unanswered []string
}

func newChatFixture(t *testing.T, store *fakeStore) *chatFixture {
	t.Helper()

	f := &chatFixture{store: store}
	f.sessions = memory.NewSessionRepository(time.Hour)

	normalizer := nlp.NewNormalizer()
	classifier := nlp.NewEmotionClassifier(constant.DefaultEmotionTable)
	router := chatbot.NewRouter(
		normalizer,
		constant.DefaultSynonyms,
		constant.GreetingKeywords,
		constant.NotesKeywords,
		constant.ArchiveKeywords,
		constant.DefaultEmotionTable,
	)
	engine := search.NewEngine(normalizer, constant.DefaultSynonyms)
	composer := chatbot.NewComposer(normalizer, classifier, rand.New(rand.NewSource(1)), func(rawText string) {
		f.unanswered = append(f.unanswered, rawText)
	})

	f.svc = NewChatbotService(
		&fakeFactory{store: store},
		f.sessions,
		router,
		engine,
		composer,
		classifier,
		nil,
		nil,
		nopLogger{},
	)
	return f
}

func validStore(t *testing.T) *fakeStore {
	return &fakeStore{
		credential: &entity.ChatbotCredential{
			Id:           uuid.New(),
			PasswordHash: hashOf(t, "letmein"),
			LastChanged:  "2026-01-01T00:00:00Z",
		},
	}
}

func openSession(f *chatFixture, loginTimestamp string) string {
	session := &store.Session{ID: uuid.New().String(), LoginTimestamp: loginTimestamp}
	f.sessions.Save(session)
	return session.ID
}

func TestLoginOpensSession(t *testing.T) {
	f := newChatFixture(t, validStore(t))

	res, err := f.svc.Login(context.Background(), &dto.ChatbotLoginRequest{Password: "letmein"})
	require.NoError(t, err)
	require.NotEmpty(t, res.SessionId)

	session, found := f.sessions.Get(res.SessionId)
	require.True(t, found)
	assert.Equal(t, res.LoginTimestamp, session.LoginTimestamp)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	f := newChatFixture(t, validStore(t))

	_, err := f.svc.Login(context.Background(), &dto.ChatbotLoginRequest{Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestChatUnknownSessionExpires(t *testing.T) {
	f := newChatFixture(t, validStore(t))

	res, err := f.svc.Chat(context.Background(), &dto.ChatRequest{SessionId: "nope", Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "session_expired", res.Intent)
}

func TestChatStaleSessionExpires(t *testing.T) {
	f := newChatFixture(t, validStore(t))
	// Issued before the credential's last change, so the gate rejects it.
	id := openSession(f, "2025-12-31T00:00:00Z")

	res, err := f.svc.Chat(context.Background(), &dto.ChatRequest{SessionId: id, Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "session_expired", res.Intent)

	_, found := f.sessions.Get(id)
	assert.False(t, found)
}

func TestChatGreeting(t *testing.T) {
	f := newChatFixture(t, validStore(t))
	id := openSession(f, "2026-02-01T00:00:00Z")

	res, err := f.svc.Chat(context.Background(), &dto.ChatRequest{SessionId: id, Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, string(chatbot.IntentGreeting), res.Intent)
	assert.IsType(t, chatbot.TextResponse{}, res.Response)
}

func TestChatNotesBrowsesCatalogue(t *testing.T) {
	s := validStore(t)
	s.subjects = []*entity.Subject{
		{
			Id:   uuid.New(),
			Name: "Mathematics",
			Units: []*entity.Unit{
				{Id: uuid.New(), Name: "Unit 1 - Algebra"},
				{Id: uuid.New(), Name: "Unit 2 - Calculus"},
			},
		},
		{Id: uuid.New(), Name: "Physics", Units: []*entity.Unit{{Id: uuid.New(), Name: "Unit 1 - Mechanics"}}},
	}
	f := newChatFixture(t, s)
	id := openSession(f, "2026-02-01T00:00:00Z")

	res, err := f.svc.Chat(context.Background(), &dto.ChatRequest{SessionId: id, Message: "can you show me the notes"})
	require.NoError(t, err)
	assert.Equal(t, string(chatbot.IntentNotesRequest), res.Intent)

	list, ok := res.Response.(chatbot.SubjectsListResponse)
	require.True(t, ok, "expected a subjects catalogue, got %T", res.Response)
	assert.Equal(t, 2, list.Subjects["Mathematics"])
	assert.Equal(t, 1, list.Subjects["Physics"])
}

func TestChatUnansweredInvokesHook(t *testing.T) {
	f := newChatFixture(t, validStore(t))
	id := openSession(f, "2026-02-01T00:00:00Z")

	res, err := f.svc.Chat(context.Background(), &dto.ChatRequest{SessionId: id, Message: "where is the admission office"})
	require.NoError(t, err)
	assert.Equal(t, string(chatbot.IntentUnknown), res.Intent)
	require.Len(t, f.unanswered, 1)
	assert.Equal(t, "where is the admission office", f.unanswered[0])

	text, ok := res.Response.(chatbot.TextResponse)
	require.True(t, ok)
	assert.Equal(t, constant.UnknownFallbackMessage, text.Message)
}

func TestChatEmptyMessageFallsBack(t *testing.T) {
	f := newChatFixture(t, validStore(t))
	id := openSession(f, "2026-02-01T00:00:00Z")

	res, err := f.svc.Chat(context.Background(), &dto.ChatRequest{SessionId: id, Message: "   "})
	require.NoError(t, err)
	assert.Empty(t, f.unanswered, "empty messages must not be recorded as unanswered")

	text, ok := res.Response.(chatbot.TextResponse)
	require.True(t, ok)
	assert.Contains(t, constant.PoliteFallbacks, text.Message)
}

func TestChatKnowledgeAnswer(t *testing.T) {
	s := validStore(t)
	s.knowledge = []*entity.KnowledgeEntry{
		{Id: uuid.New(), Question: "what are the library timings", Answer: "The library is open 8am to 8pm."},
	}
	f := newChatFixture(t, s)
	id := openSession(f, "2026-02-01T00:00:00Z")

	res, err := f.svc.Chat(context.Background(), &dto.ChatRequest{SessionId: id, Message: "what are the library timings"})
	require.NoError(t, err)

	text, ok := res.Response.(chatbot.TextResponse)
	require.True(t, ok)
	assert.Equal(t, "The library is open 8am to 8pm.", text.Message)
	assert.Empty(t, f.unanswered)
}

func TestChatDegradesWhenCorpusUnavailable(t *testing.T) {
	s := validStore(t)
	s.subjectsErr = errors.New("connection refused")
	s.documentsErr = errors.New("connection refused")
	s.infoErr = errors.New("connection refused")
	f := newChatFixture(t, s)
	id := openSession(f, "2026-02-01T00:00:00Z")

	res, err := f.svc.Chat(context.Background(), &dto.ChatRequest{SessionId: id, Message: "can you show me the notes"})
	require.NoError(t, err, "a failed corpus read must not surface as an error")
	text, ok := res.Response.(chatbot.TextResponse)
	require.True(t, ok)
	assert.Equal(t, constant.NoNotesMessage, text.Message)

	res, err = f.svc.Chat(context.Background(), &dto.ChatRequest{SessionId: id, Message: "any previous year papers?"})
	require.NoError(t, err)
	text, ok = res.Response.(chatbot.TextResponse)
	require.True(t, ok)
	assert.Equal(t, constant.NoArchiveMessage, text.Message)

	res, err = f.svc.Chat(context.Background(), &dto.ChatRequest{SessionId: id, Message: "where is the admission office"})
	require.NoError(t, err)
	text, ok = res.Response.(chatbot.TextResponse)
	require.True(t, ok)
	assert.Contains(t, constant.PoliteFallbacks, text.Message)
	assert.Empty(t, f.unanswered, "degraded info reads must not record unanswered queries")
}

func TestChatCountsExchanges(t *testing.T) {
	f := newChatFixture(t, validStore(t))
	id := openSession(f, "2026-02-01T00:00:00Z")

	for i := 0; i < 3; i++ {
		_, err := f.svc.Chat(context.Background(), &dto.ChatRequest{SessionId: id, Message: "hello"})
		require.NoError(t, err)
	}

	session, found := f.sessions.Get(id)
	require.True(t, found)
	assert.Equal(t, 3, session.Exchanges)
	assert.Equal(t, "hello", session.LastQuery)
}
