package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSearchRepo struct {
	mock.Mock
}

func (m *MockSearchRepo) MatchProfile(ctx context.Context, query string) (*domain.Profile, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockSearchRepo) MatchProjects(ctx context.Context, query string) ([]domain.Project, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockSearchRepo) MatchSkills(ctx context.Context, query string) ([]domain.SkillCategory, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SkillCategory), args.Error(1)
}

func (m *MockSearchRepo) MatchEducation(ctx context.Context, query string) (*domain.Education, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Education), args.Error(1)
}

func (m *MockSearchRepo) MatchExperience(ctx context.Context, query string) (*domain.Experience, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Experience), args.Error(1)
}

func (m *MockSearchRepo) MatchJourney(ctx context.Context, query string) ([]domain.LearningPhase, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LearningPhase), args.Error(1)
}

func (m *MockSearchRepo) MatchGrowthMindset(ctx context.Context, query string) (*domain.GrowthMindset, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GrowthMindset), args.Error(1)
}

func (m *MockSearchRepo) MatchExperiments(ctx context.Context, query string) (*domain.ExperimentsSection, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExperimentsSection), args.Error(1)
}

func (m *MockSearchRepo) MatchContactSection(ctx context.Context, query string) (*domain.ContactSection, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactSection), args.Error(1)
}

func (m *MockSearchRepo) MatchFooter(ctx context.Context, query string) (*domain.Footer, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Footer), args.Error(1)
}

// expectEmpty sets every matcher to "no hits" so individual tests only
// override the sections they care about.
func expectEmpty(repo *MockSearchRepo, q string) {
	repo.On("MatchProfile", mock.Anything, q).Return(nil, nil).Maybe()
	repo.On("MatchProjects", mock.Anything, q).Return([]domain.Project{}, nil).Maybe()
	repo.On("MatchSkills", mock.Anything, q).Return([]domain.SkillCategory{}, nil).Maybe()
	repo.On("MatchEducation", mock.Anything, q).Return(nil, nil).Maybe()
	repo.On("MatchExperience", mock.Anything, q).Return(nil, nil).Maybe()
	repo.On("MatchJourney", mock.Anything, q).Return([]domain.LearningPhase{}, nil).Maybe()
	repo.On("MatchGrowthMindset", mock.Anything, q).Return(nil, nil).Maybe()
	repo.On("MatchExperiments", mock.Anything, q).Return(nil, nil).Maybe()
	repo.On("MatchContactSection", mock.Anything, q).Return(nil, nil).Maybe()
	repo.On("MatchFooter", mock.Anything, q).Return(nil, nil).Maybe()
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	uc := usecase.NewSearchUsecase(new(MockSearchRepo))

	for _, q := range []string{"", "   "} {
		_, err := uc.Search(context.Background(), q)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	}
}

func TestSearchFieldHits(t *testing.T) {
	repo := new(MockSearchRepo)
	repo.On("MatchProfile", mock.Anything, "go").Return(&domain.Profile{
		Name:     "Shreeya",
		Headline: "Learning Go and distributed systems",
		Bio:      "CS student",
	}, nil)
	repo.On("MatchProjects", mock.Anything, "go").Return([]domain.Project{
		{ID: "p1", Title: "Go Portfolio API", Status: "completed", Technologies: []string{"Go", "Docker"}},
	}, nil)
	expectEmpty(repo, "go")

	uc := usecase.NewSearchUsecase(repo)
	res, err := uc.Search(context.Background(), "go")

	assert.NoError(t, err)
	assert.Nil(t, res.Errors)

	// Only the fields containing the query surface, case-insensitively
	assert.Equal(t, []domain.FieldMatch{
		{Field: "Headline", Value: "Learning Go and distributed systems"},
	}, res.Profile)

	assert.Len(t, res.Projects, 1)
	assert.Equal(t, "p1", res.Projects[0].ID)
	assert.Equal(t, []string{"Title", "Technology: Go"}, res.Projects[0].Matches)

	// Non-matching sections come back as empty lists, never nil
	assert.NotNil(t, res.Education)
	assert.Empty(t, res.Education)
	assert.NotNil(t, res.Footer)
}

func TestSearchSkillHitsAndDedup(t *testing.T) {
	repo := new(MockSearchRepo)
	repo.On("MatchSkills", mock.Anything, "back").Return([]domain.SkillCategory{
		{Category: "Backend", Skills: []domain.Skill{
			{Name: "Go", Proficiency: 85},
			{Name: "Backbone", Proficiency: 40},
		}},
		{Category: "Backend", Skills: []domain.Skill{
			{Name: "Backbone", Proficiency: 40},
		}},
	}, nil)
	expectEmpty(repo, "back")

	uc := usecase.NewSearchUsecase(repo)
	res, err := uc.Search(context.Background(), "back")

	assert.NoError(t, err)
	// One category hit plus one skill hit despite the duplicated documents
	assert.Len(t, res.Skills, 2)
	assert.Equal(t, "category", res.Skills[0].Type)
	assert.Equal(t, "Backend", res.Skills[0].Name)
	assert.Equal(t, "skill", res.Skills[1].Type)
	assert.Equal(t, "Backbone", res.Skills[1].Name)
	assert.Equal(t, 40, res.Skills[1].Proficiency)
}

func TestSearchIsBestEffort(t *testing.T) {
	repo := new(MockSearchRepo)
	repo.On("MatchProjects", mock.Anything, "go").Return(nil, errors.New("cursor timeout"))
	repo.On("MatchFooter", mock.Anything, "go").Return(&domain.Footer{
		BrandName: "Go Portfolio", BrandDescription: "Personal site",
	}, nil)
	expectEmpty(repo, "go")

	uc := usecase.NewSearchUsecase(repo)
	res, err := uc.Search(context.Background(), "go")

	// The request still succeeds; only the broken section is flagged
	assert.NoError(t, err)
	assert.Contains(t, res.Errors, "projects")
	assert.Empty(t, res.Projects)
	assert.Equal(t, []domain.FieldMatch{
		{Field: "Brand Name", Value: "Go Portfolio"},
	}, res.Footer)
}

func TestSearchMatchesUnicodeCaseFolds(t *testing.T) {
	// Greek final sigma: ToLower("ΣΟΦΙΑΣ") ends in σ while the query ends
	// in ς, so a plain lowercase comparison would drop a document the
	// store's case-insensitive regex already matched.
	repo := new(MockSearchRepo)
	repo.On("MatchGrowthMindset", mock.Anything, "σοφιας").Return(&domain.GrowthMindset{
		Title: "Philosophy",
		Quote: "ΑΡΧΗ ΣΟΦΙΑΣ Η ΤΩΝ ΟΝΟΜΑΤΩΝ ΕΠΙΣΚΕΨΙΣ",
	}, nil)
	expectEmpty(repo, "σοφιας")

	uc := usecase.NewSearchUsecase(repo)
	res, err := uc.Search(context.Background(), "σοφιας")

	assert.NoError(t, err)
	assert.Equal(t, []domain.FieldMatch{
		{Field: "Quote", Value: "ΑΡΧΗ ΣΟΦΙΑΣ Η ΤΩΝ ΟΝΟΜΑΤΩΝ ΕΠΙΣΚΕΨΙΣ"},
	}, res.GrowthMindset)
}

func TestSearchContactLinkCarriesIcon(t *testing.T) {
	repo := new(MockSearchRepo)
	repo.On("MatchContactSection", mock.Anything, "github").Return(&domain.ContactSection{
		HeaderTitle: "Get in touch",
		ContactLinks: []domain.ContactLink{
			{Name: "GitHub", Value: "github.com/shreeya", Icon: "github", Color: "#333"},
		},
	}, nil)
	expectEmpty(repo, "github")

	uc := usecase.NewSearchUsecase(repo)
	res, err := uc.Search(context.Background(), "github")

	assert.NoError(t, err)
	assert.Equal(t, []domain.FieldMatch{
		{Field: "GitHub", Value: "github.com/shreeya", Icon: "github"},
	}, res.Contact)
}
