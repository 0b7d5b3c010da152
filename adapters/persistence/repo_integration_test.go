package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	dbPool        *pgxpool.Pool
	pgContainer   *postgres.PostgresContainer
	portfolioRepo portfolio.Repository
	educationRepo education.Repository
	skillRepo     skill.Repository
	profileRepo   profile.Repository
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	testLogger := logger.NewNop()
	s.portfolioRepo = NewPostgresPortfolioRepo(pool, testLogger)
	s.educationRepo = NewPostgresEducationRepo(pool, testLogger)
	s.skillRepo = NewPostgresSkillRepo(pool, testLogger)
	s.profileRepo = NewPostgresProfileRepo(pool, testLogger)
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func (s *RepoIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	_, err := s.dbPool.Exec(ctx, `TRUNCATE portfolio_items, education_items, skill_items, profile`)
	s.Require().NoError(err)
}

func TestRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func (s *RepoIntegrationTestSuite) Test_Portfolio_SaveAndFindByID() {
	ctx := context.Background()

	item := &portfolio.Item{
		ID:          uuid.New(),
		Title:       "Side Project",
		Description: "A thing I built",
		CustomHTML:  "<b>raw</b>",
		Tags:        []string{"go", "web"},
		Link:        "https://example.com",
		CreatedAt:   time.Now().UTC(),
	}

	s.NoError(s.portfolioRepo.Save(ctx, item))

	found, err := s.portfolioRepo.FindByID(ctx, item.ID)
	s.NoError(err)
	s.Equal(item.Title, found.Title)
	s.Equal(item.CustomHTML, found.CustomHTML)
	s.Equal([]string{"go", "web"}, found.Tags)
}

func (s *RepoIntegrationTestSuite) Test_Portfolio_ListNewestFirst() {
	ctx := context.Background()

	older := &portfolio.Item{ID: uuid.New(), Title: "Older", Tags: []string{}, CreatedAt: time.Now().UTC().Add(-time.Hour)}
	newer := &portfolio.Item{ID: uuid.New(), Title: "Newer", Tags: []string{}, CreatedAt: time.Now().UTC()}
	s.NoError(s.portfolioRepo.Save(ctx, older))
	s.NoError(s.portfolioRepo.Save(ctx, newer))

	items, err := s.portfolioRepo.List(ctx)
	s.NoError(err)
	s.Require().Len(items, 2)
	s.Equal(newer.ID, items[0].ID)
	s.Equal(older.ID, items[1].ID)
}

func (s *RepoIntegrationTestSuite) Test_Portfolio_UpdateAndDelete() {
	ctx := context.Background()

	item := &portfolio.Item{ID: uuid.New(), Title: "Before", Tags: []string{"a"}, CreatedAt: time.Now().UTC()}
	s.NoError(s.portfolioRepo.Save(ctx, item))

	item.Title = "After"
	item.Tags = []string{"b"}
	s.NoError(s.portfolioRepo.Update(ctx, item))

	found, err := s.portfolioRepo.FindByID(ctx, item.ID)
	s.NoError(err)
	s.Equal("After", found.Title)
	s.Equal([]string{"b"}, found.Tags)

	s.NoError(s.portfolioRepo.Delete(ctx, item.ID))

	_, err = s.portfolioRepo.FindByID(ctx, item.ID)
	s.True(errors.Is(err, apperror.ErrNotFound))
}

func (s *RepoIntegrationTestSuite) Test_Portfolio_DeleteMissingIsNotFound() {
	err := s.portfolioRepo.Delete(context.Background(), uuid.New())
	s.True(errors.Is(err, apperror.ErrNotFound))
}

func (s *RepoIntegrationTestSuite) Test_Education_ListSortsStartDateAsText() {
	ctx := context.Background()

	for _, it := range []*education.Item{
		{ID: uuid.New(), Institution: "A", Degree: "x", Type: education.TypeFormal, StartDate: "2019", CreatedAt: time.Now().UTC()},
		{ID: uuid.New(), Institution: "B", Degree: "y", Type: education.TypeTechnical, StartDate: "Present", CreatedAt: time.Now().UTC()},
		{ID: uuid.New(), Institution: "C", Degree: "z", Type: education.TypeFormal, StartDate: "2023", CreatedAt: time.Now().UTC()},
	} {
		s.Require().NoError(s.educationRepo.Save(ctx, it))
	}

	items, err := s.educationRepo.List(ctx)
	s.NoError(err)
	s.Require().Len(items, 3)

	// text collation, descending: "Present" > "2023" > "2019"
	s.Equal("B", items[0].Institution)
	s.Equal("C", items[1].Institution)
	s.Equal("A", items[2].Institution)
}

func (s *RepoIntegrationTestSuite) Test_Skill_ListSortsByCategoryThenName() {
	ctx := context.Background()

	for _, it := range []*skill.Item{
		{ID: uuid.New(), Name: "y", Type: skill.TypeEmoji, Value: "🔥", Category: "B", CreatedAt: time.Now().UTC()},
		{ID: uuid.New(), Name: "z", Type: skill.TypeIcon, Value: "fa-code", Category: "A", CreatedAt: time.Now().UTC()},
		{ID: uuid.New(), Name: "x", Type: skill.TypeIcon, Value: "fab fa-react", Category: "A", CreatedAt: time.Now().UTC()},
	} {
		s.Require().NoError(s.skillRepo.Save(ctx, it))
	}

	items, err := s.skillRepo.List(ctx)
	s.NoError(err)
	s.Require().Len(items, 3)
	s.Equal("x", items[0].Name)
	s.Equal("z", items[1].Name)
	s.Equal("y", items[2].Name)
}

func (s *RepoIntegrationTestSuite) Test_Profile_GetReturnsDefaultWhenEmpty() {
	p, err := s.profileRepo.Get(context.Background())
	s.NoError(err)
	s.Equal("", p.AboutText)
	s.NotNil(p.SocialLinks)
	s.Empty(p.SocialLinks)
}

func (s *RepoIntegrationTestSuite) Test_Profile_UpsertKeepsSingleRow() {
	ctx := context.Background()

	s.NoError(s.profileRepo.Upsert(ctx, &profile.Profile{
		AboutText:   "first",
		SocialLinks: []profile.SocialLink{},
		UpdatedAt:   time.Now().UTC(),
	}))
	s.NoError(s.profileRepo.Upsert(ctx, &profile.Profile{
		AboutText: "second",
		SocialLinks: []profile.SocialLink{
			{Platform: "github", URL: "https://github.com/x", Icon: "fab fa-github"},
		},
		UpdatedAt: time.Now().UTC(),
	}))

	p, err := s.profileRepo.Get(ctx)
	s.NoError(err)
	s.Equal("second", p.AboutText)
	s.Require().Len(p.SocialLinks, 1)
	s.Equal("github", p.SocialLinks[0].Platform)

	var count int
	s.NoError(s.dbPool.QueryRow(ctx, `SELECT count(*) FROM profile`).Scan(&count))
	s.Equal(1, count)
}
