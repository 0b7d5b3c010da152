package http

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/portfolio-api/adapters/event"
	authUC "github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	educationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/education"
	portfolioUC "github.com/khoahotran/portfolio-api/internal/application/usecase/portfolio"
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	skillUC "github.com/khoahotran/portfolio-api/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/session"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// In-memory doubles implementing the repository contracts, including their
// documented sort orders.

type fakePortfolioRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*portfolio.Item
}

func newFakePortfolioRepo() *fakePortfolioRepo {
	return &fakePortfolioRepo{items: map[uuid.UUID]*portfolio.Item{}}
}

func (r *fakePortfolioRepo) Save(_ context.Context, item *portfolio.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakePortfolioRepo) Update(_ context.Context, item *portfolio.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return apperror.NewNotFound("portfolio item", item.ID.String())
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakePortfolioRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperror.NewNotFound("portfolio item", id.String())
	}
	delete(r.items, id)
	return nil
}

func (r *fakePortfolioRepo) FindByID(_ context.Context, id uuid.UUID) (*portfolio.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, apperror.NewNotFound("portfolio item", id.String())
	}
	cp := *item
	return &cp, nil
}

func (r *fakePortfolioRepo) List(_ context.Context) ([]*portfolio.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*portfolio.Item, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeEducationRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*education.Item
}

func newFakeEducationRepo() *fakeEducationRepo {
	return &fakeEducationRepo{items: map[uuid.UUID]*education.Item{}}
}

func (r *fakeEducationRepo) Save(_ context.Context, item *education.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeEducationRepo) Update(_ context.Context, item *education.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return apperror.NewNotFound("education item", item.ID.String())
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeEducationRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperror.NewNotFound("education item", id.String())
	}
	delete(r.items, id)
	return nil
}

func (r *fakeEducationRepo) FindByID(_ context.Context, id uuid.UUID) (*education.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, apperror.NewNotFound("education item", id.String())
	}
	cp := *item
	return &cp, nil
}

func (r *fakeEducationRepo) List(_ context.Context) ([]*education.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*education.Item, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		out = append(out, &cp)
	}
	// raw string sort, descending
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate > out[j].StartDate })
	return out, nil
}

func (r *fakeEducationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type fakeSkillRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*skill.Item
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{items: map[uuid.UUID]*skill.Item{}}
}

func (r *fakeSkillRepo) Save(_ context.Context, item *skill.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeSkillRepo) Update(_ context.Context, item *skill.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return apperror.NewNotFound("skill item", item.ID.String())
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeSkillRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperror.NewNotFound("skill item", id.String())
	}
	delete(r.items, id)
	return nil
}

func (r *fakeSkillRepo) FindByID(_ context.Context, id uuid.UUID) (*skill.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, apperror.NewNotFound("skill item", id.String())
	}
	cp := *item
	return &cp, nil
}

func (r *fakeSkillRepo) List(_ context.Context) ([]*skill.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*skill.Item, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

type fakeProfileRepo struct {
	mu sync.Mutex
	p  *profile.Profile
}

func (r *fakeProfileRepo) Get(_ context.Context) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.p == nil {
		return profile.Default(), nil
	}
	cp := *r.p
	return &cp, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.p = &cp
	return nil
}

type fakeSessionRepo struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{tokens: map[string]bool{}}
}

func (r *fakeSessionRepo) Create(_ context.Context) (*session.Session, error) {
	buf := make([]byte, 16)
	rand.Read(buf)
	token := hex.EncodeToString(buf)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = true
	return &session.Session{Token: token, CreatedAt: time.Now().UTC()}, nil
}

func (r *fakeSessionRepo) Exists(_ context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tokens[token], nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
	return nil
}

// noopCache never hits, so every list goes to the repo.
type noopCache struct{}

func (noopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noopCache) Set(context.Context, string, any) error         { return nil }
func (noopCache) Invalidate(context.Context, ...string) error    { return nil }

type noopPublisher struct{}

func (noopPublisher) PublishContentEvent(context.Context, event.ContentEventPayload) error {
	return nil
}

type HandlerTestSuite struct {
	suite.Suite
	Router        *gin.Engine
	portfolioRepo *fakePortfolioRepo
	educationRepo *fakeEducationRepo
	skillRepo     *fakeSkillRepo
	profileRepo   *fakeProfileRepo
	sessionRepo   *fakeSessionRepo
	adminPassword string
}

func (s *HandlerTestSuite) SetupTest() {
	s.portfolioRepo = newFakePortfolioRepo()
	s.educationRepo = newFakeEducationRepo()
	s.skillRepo = newFakeSkillRepo()
	s.profileRepo = &fakeProfileRepo{}
	s.sessionRepo = newFakeSessionRepo()
	s.adminPassword = "test-admin-password"
	s.Router = s.buildRouter(s.adminPassword)
}

func (s *HandlerTestSuite) buildRouter(adminPassword string) *gin.Engine {
	testLogger := logger.NewNop()
	cache := noopCache{}
	publisher := noopPublisher{}

	loginUseCase := authUC.NewLoginUseCase(s.sessionRepo, adminPassword, testLogger)
	logoutUseCase := authUC.NewLogoutUseCase(s.sessionRepo, testLogger)
	authHandler := NewAuthHandler(loginUseCase, logoutUseCase, testLogger)

	portfolioHandler := NewPortfolioHandler(
		portfolioUC.NewCreatePortfolioUseCase(s.portfolioRepo, cache, publisher, testLogger),
		portfolioUC.NewListPortfolioUseCase(s.portfolioRepo, cache, testLogger),
		portfolioUC.NewUpdatePortfolioUseCase(s.portfolioRepo, cache, publisher, testLogger),
		portfolioUC.NewDeletePortfolioUseCase(s.portfolioRepo, cache, publisher, testLogger),
		testLogger,
	)
	educationHandler := NewEducationHandler(
		educationUC.NewEducationUseCase(s.educationRepo, cache, publisher, testLogger), testLogger)
	skillHandler := NewSkillHandler(
		skillUC.NewSkillUseCase(s.skillRepo, cache, publisher, testLogger), testLogger)
	profileHandler := NewProfileHandler(
		profileUC.NewProfileUseCase(s.profileRepo, cache, publisher, testLogger), testLogger)

	authMiddleware := AuthMiddleware(s.sessionRepo, testLogger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(testLogger))

	auth := router.Group("/auth")
	{
		auth.POST("", authHandler.Login)
		auth.POST("/logout", authMiddleware, authHandler.Logout)
	}

	resources := router.Group("/resources")
	{
		resources.GET("/portfolio", portfolioHandler.List)
		resources.GET("/education", educationHandler.List)
		resources.GET("/skills", skillHandler.List)
		resources.GET("/profile", profileHandler.Get)

		private := resources.Group("")
		private.Use(authMiddleware)
		{
			private.POST("/portfolio", portfolioHandler.Create)
			private.PUT("/portfolio/:id", portfolioHandler.Update)
			private.DELETE("/portfolio/:id", portfolioHandler.Delete)

			private.POST("/education", educationHandler.Create)
			private.PUT("/education/:id", educationHandler.Update)
			private.DELETE("/education/:id", educationHandler.Delete)

			private.POST("/skills", skillHandler.Create)
			private.PUT("/skills/:id", skillHandler.Update)
			private.DELETE("/skills/:id", skillHandler.Delete)

			private.POST("/profile", profileHandler.Upsert)
		}
	}

	return router
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Token   string          `json:"token"`
}

func (s *HandlerTestSuite) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	var env envelope
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &env))
	return rr, env
}

func (s *HandlerTestSuite) login() string {
	rr, env := s.do(http.MethodPost, "/auth", "", gin.H{"password": s.adminPassword})
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Require().True(env.Success)
	s.Require().NotEmpty(env.Token)
	return env.Token
}

func (s *HandlerTestSuite) Test_Login_WrongPassword() {
	rr, env := s.do(http.MethodPost, "/auth", "", gin.H{"password": "nope"})
	assert.Equal(s.T(), http.StatusUnauthorized, rr.Code)
	assert.False(s.T(), env.Success)
	assert.Empty(s.T(), env.Token)
}

func (s *HandlerTestSuite) Test_Login_NoPasswordConfigured() {
	s.Router = s.buildRouter("")
	rr, env := s.do(http.MethodPost, "/auth", "", gin.H{"password": "anything"})
	assert.Equal(s.T(), http.StatusInternalServerError, rr.Code)
	assert.False(s.T(), env.Success)
}

func (s *HandlerTestSuite) Test_Mutation_RequiresSession() {
	rr, _ := s.do(http.MethodPost, "/resources/portfolio", "", gin.H{"title": "x"})
	assert.Equal(s.T(), http.StatusUnauthorized, rr.Code)

	rr, _ = s.do(http.MethodPost, "/resources/portfolio", "not-a-real-token", gin.H{"title": "x"})
	assert.Equal(s.T(), http.StatusUnauthorized, rr.Code)
}

func (s *HandlerTestSuite) Test_Logout_DiscardsSession() {
	token := s.login()

	rr, _ := s.do(http.MethodPost, "/auth/logout", token, nil)
	assert.Equal(s.T(), http.StatusOK, rr.Code)

	rr, _ = s.do(http.MethodPost, "/resources/portfolio", token, gin.H{"title": "x"})
	assert.Equal(s.T(), http.StatusUnauthorized, rr.Code)
}

func (s *HandlerTestSuite) Test_Portfolio_CreateReadUpdateDelete() {
	token := s.login()

	rr, env := s.do(http.MethodPost, "/resources/portfolio", token, gin.H{
		"title": "My Project",
		"tags":  []string{"web", "go"},
		"link":  "https://example.com",
	})
	s.Require().Equal(http.StatusCreated, rr.Code)
	s.Require().True(env.Success)

	var created PortfolioItemDTO
	s.Require().NoError(json.Unmarshal(env.Data, &created))
	assert.NotEmpty(s.T(), created.ID)
	assert.False(s.T(), created.CreatedAt.IsZero())
	assert.Equal(s.T(), "My Project", created.Title)
	assert.Equal(s.T(), []string{"web", "go"}, created.Tags)

	rr, env = s.do(http.MethodGet, "/resources/portfolio", "", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	var listed []PortfolioItemDTO
	s.Require().NoError(json.Unmarshal(env.Data, &listed))
	s.Require().Len(listed, 1)
	assert.Equal(s.T(), created.ID, listed[0].ID)
	assert.Equal(s.T(), []string{"web", "go"}, listed[0].Tags)

	rr, env = s.do(http.MethodPut, "/resources/portfolio/"+created.ID, token, gin.H{
		"tags": []string{"go"},
	})
	s.Require().Equal(http.StatusOK, rr.Code)
	var updated PortfolioItemDTO
	s.Require().NoError(json.Unmarshal(env.Data, &updated))
	assert.Equal(s.T(), []string{"go"}, updated.Tags)
	assert.Equal(s.T(), "My Project", updated.Title, "partial update keeps untouched fields")

	rr, env = s.do(http.MethodDelete, "/resources/portfolio/"+created.ID, token, nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	assert.True(s.T(), env.Success)

	rr, env = s.do(http.MethodGet, "/resources/portfolio", "", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Require().NoError(json.Unmarshal(env.Data, &listed))
	assert.Empty(s.T(), listed)
}

func (s *HandlerTestSuite) Test_Portfolio_CreateRejectsEmptyTitle() {
	token := s.login()

	rr, env := s.do(http.MethodPost, "/resources/portfolio", token, gin.H{"description": "no title"})
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
	assert.False(s.T(), env.Success)
	assert.Contains(s.T(), env.Error, "title")
}

func (s *HandlerTestSuite) Test_Portfolio_DeleteMissingIsNotFound() {
	token := s.login()

	rr, env := s.do(http.MethodDelete, "/resources/portfolio/"+uuid.NewString(), token, nil)
	assert.Equal(s.T(), http.StatusNotFound, rr.Code)
	assert.Equal(s.T(), "Item not found", env.Error)
}

func (s *HandlerTestSuite) Test_Education_RejectsUnknownType() {
	token := s.login()

	rr, env := s.do(http.MethodPost, "/resources/education", token, gin.H{
		"institution": "MIT",
		"degree":      "BSc",
		"type":        "Bootcamp",
	})
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
	assert.False(s.T(), env.Success)
	assert.Equal(s.T(), 0, s.educationRepo.count(), "nothing persisted on validation failure")
}

func (s *HandlerTestSuite) Test_Education_SortsByStartDateStringDescending() {
	token := s.login()

	for _, e := range []gin.H{
		{"institution": "A", "degree": "x", "type": "Formal", "startDate": "2019"},
		{"institution": "B", "degree": "y", "type": "Technical", "startDate": "Present"},
		{"institution": "C", "degree": "z", "type": "Formal", "startDate": "2023"},
	} {
		rr, _ := s.do(http.MethodPost, "/resources/education", token, e)
		s.Require().Equal(http.StatusCreated, rr.Code)
	}

	_, env := s.do(http.MethodGet, "/resources/education", "", nil)
	var listed []EducationItemDTO
	s.Require().NoError(json.Unmarshal(env.Data, &listed))
	s.Require().Len(listed, 3)

	// lexical descending: "Present" > "2023" > "2019"
	assert.Equal(s.T(), "B", listed[0].Institution)
	assert.Equal(s.T(), "C", listed[1].Institution)
	assert.Equal(s.T(), "A", listed[2].Institution)
}

func (s *HandlerTestSuite) Test_Skills_SortAndIconParsing() {
	token := s.login()

	for _, sk := range []gin.H{
		{"name": "y", "type": "Emoji", "value": "🚀", "category": "B"},
		{"name": "z", "type": "Icon", "value": "fa-brands fa-react", "category": "A"},
		{"name": "x", "type": "Icon", "value": "fa-code", "category": "A"},
	} {
		rr, _ := s.do(http.MethodPost, "/resources/skills", token, sk)
		s.Require().Equal(http.StatusCreated, rr.Code)
	}

	_, env := s.do(http.MethodGet, "/resources/skills", "", nil)
	var listed []SkillItemDTO
	s.Require().NoError(json.Unmarshal(env.Data, &listed))
	s.Require().Len(listed, 3)

	assert.Equal(s.T(), []string{"x", "z", "y"}, []string{listed[0].Name, listed[1].Name, listed[2].Name})
	assert.Equal(s.T(), []string{"A", "A", "B"}, []string{listed[0].Category, listed[1].Category, listed[2].Category})

	s.Require().NotNil(listed[0].Icon)
	assert.Equal(s.T(), skill.IconRef{Prefix: "fas", Name: "code"}, *listed[0].Icon)
	s.Require().NotNil(listed[1].Icon)
	assert.Equal(s.T(), skill.IconRef{Prefix: "fab", Name: "react"}, *listed[1].Icon)
	assert.Nil(s.T(), listed[2].Icon, "emoji skills carry no parsed icon")
}

func (s *HandlerTestSuite) Test_Skills_RejectsUnknownType() {
	token := s.login()

	rr, env := s.do(http.MethodPost, "/resources/skills", token, gin.H{
		"name": "Go", "type": "Png", "value": "x",
	})
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
	assert.False(s.T(), env.Success)
}

func (s *HandlerTestSuite) Test_Profile_DefaultWhenAbsent() {
	rr, env := s.do(http.MethodGet, "/resources/profile", "", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Require().True(env.Success)

	var p ProfileDTO
	s.Require().NoError(json.Unmarshal(env.Data, &p))
	assert.Equal(s.T(), "", p.AboutText)
	assert.NotNil(s.T(), p.SocialLinks)
	assert.Empty(s.T(), p.SocialLinks)
}

func (s *HandlerTestSuite) Test_Profile_UpsertReplacesSingleton() {
	token := s.login()

	rr, _ := s.do(http.MethodPost, "/resources/profile", token, gin.H{"aboutText": "first"})
	s.Require().Equal(http.StatusOK, rr.Code)

	rr, _ = s.do(http.MethodPost, "/resources/profile", token, gin.H{
		"aboutText": "second",
		"socialLinks": []gin.H{
			{"platform": "github", "url": "https://github.com/x", "icon": "fa-brands fa-github"},
		},
	})
	s.Require().Equal(http.StatusOK, rr.Code)

	_, env := s.do(http.MethodGet, "/resources/profile", "", nil)
	var p ProfileDTO
	s.Require().NoError(json.Unmarshal(env.Data, &p))
	assert.Equal(s.T(), "second", p.AboutText)
	s.Require().Len(p.SocialLinks, 1)
	assert.Equal(s.T(), "github", p.SocialLinks[0].Platform)
}

func (s *HandlerTestSuite) Test_Update_MissingIsNotFound() {
	token := s.login()

	rr, env := s.do(http.MethodPut, "/resources/education/"+uuid.NewString(), token, gin.H{"degree": "MSc"})
	assert.Equal(s.T(), http.StatusNotFound, rr.Code)
	assert.Equal(s.T(), "Item not found", env.Error)
}
