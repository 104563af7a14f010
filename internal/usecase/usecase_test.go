package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepo) List(ctx context.Context) ([]domain.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Admin), args.Error(1)
}

func (m *MockAdminRepo) Insert(ctx context.Context, admin *domain.Admin) (string, error) {
	args := m.Called(ctx, admin)
	return args.String(0), args.Error(1)
}

func (m *MockAdminRepo) Delete(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepo) Insert(ctx context.Context, project *domain.Project) (string, error) {
	args := m.Called(ctx, project)
	return args.String(0), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, id string, patch domain.UpdateProjectRequest, updatedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, patch, updatedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockSkillsRepo struct {
	mock.Mock
}

func (m *MockSkillsRepo) GetAll(ctx context.Context) (map[string][]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.Skill), args.Error(1)
}

func (m *MockSkillsRepo) ReplaceCategory(ctx context.Context, category string, skills []domain.Skill) error {
	return m.Called(ctx, category, skills).Error(0)
}

func (m *MockSkillsRepo) DeleteCategory(ctx context.Context, category string) (bool, error) {
	args := m.Called(ctx, category)
	return args.Bool(0), args.Error(1)
}

func (m *MockSkillsRepo) CountCategories(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Insert(ctx context.Context, msg *domain.ContactMessage) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func (m *MockMessageRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}

func (m *MockMessageRepo) MarkRead(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMessageRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMessageRepo) Counts(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockMessageRepo) Recent(ctx context.Context, limit int64) ([]domain.ContactMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Insert(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepo) List(ctx context.Context) ([]domain.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepo) MarkRead(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepo) MarkAllRead(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockNotificationRepo) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockNotificationRepo) UnreadCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// recordingNotifier captures audit notifications without a store.
type recordingNotifier struct {
	types    []string
	messages []string
}

func (n *recordingNotifier) Record(_ context.Context, notifType, message string) {
	n.types = append(n.types, notifType)
	n.messages = append(n.messages, message)
}

// fakeSingleton is an in-memory SingletonRepository.
type fakeSingleton[T any] struct {
	doc      *T
	err      error
	replaced *T
}

func (f *fakeSingleton[T]) Get(context.Context) (*T, error) { return f.doc, f.err }

func (f *fakeSingleton[T]) Replace(_ context.Context, d *T) error {
	f.replaced = d
	return f.err
}

func newTokenService() *auth.TokenService {
	return auth.NewTokenService("test-secret", time.Hour)
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	admin := &domain.Admin{Username: "shreeya", PasswordHash: string(hash), Role: domain.RoleSuperadmin}

	t.Run("Should reject unknown username with 401", func(t *testing.T) {
		repo := new(MockAdminRepo)
		repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, nil)
		uc := usecase.NewAuthUsecase(repo, newTokenService(), &recordingNotifier{})

		_, err := uc.Login(context.Background(), domain.LoginRequest{Username: "ghost", Password: "whatever"})
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
	})

	t.Run("Should reject wrong password with the same 401 message", func(t *testing.T) {
		repo := new(MockAdminRepo)
		repo.On("GetByUsername", mock.Anything, "shreeya").Return(admin, nil)
		uc := usecase.NewAuthUsecase(repo, newTokenService(), &recordingNotifier{})

		_, err := uc.Login(context.Background(), domain.LoginRequest{Username: "shreeya", Password: "wrong"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Incorrect username or password")
	})

	t.Run("Should issue bearer token and record a login notification", func(t *testing.T) {
		repo := new(MockAdminRepo)
		repo.On("GetByUsername", mock.Anything, "shreeya").Return(admin, nil)
		notifier := &recordingNotifier{}
		tokens := newTokenService()
		uc := usecase.NewAuthUsecase(repo, tokens, notifier)

		token, err := uc.Login(context.Background(), domain.LoginRequest{Username: "shreeya", Password: "correct-horse"})
		assert.NoError(t, err)
		assert.Equal(t, "bearer", token.TokenType)

		subject, err := tokens.Parse(token.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, "shreeya", subject)

		assert.Equal(t, []string{domain.NotifyAuth}, notifier.types)
	})
}

func TestDeleteAdminRules(t *testing.T) {
	asAdmin := func(username, role string) context.Context {
		ctx := context.WithValue(context.Background(), domain.KeyAdminUsername, username)
		return context.WithValue(ctx, domain.KeyAdminRole, role)
	}

	t.Run("Should reject self-deletion regardless of role", func(t *testing.T) {
		repo := new(MockAdminRepo)
		uc := usecase.NewAuthUsecase(repo, newTokenService(), &recordingNotifier{})

		err := uc.DeleteAdmin(asAdmin("boss", domain.RoleSuperadmin), "boss")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		repo.AssertNotCalled(t, "Delete")
	})

	t.Run("Should reject non-superadmin with 403", func(t *testing.T) {
		repo := new(MockAdminRepo)
		uc := usecase.NewAuthUsecase(repo, newTokenService(), &recordingNotifier{})

		err := uc.DeleteAdmin(asAdmin("junior", domain.RoleAdmin), "target")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		repo.AssertNotCalled(t, "Delete")
	})

	t.Run("Should return 404 for an unknown username", func(t *testing.T) {
		repo := new(MockAdminRepo)
		repo.On("Delete", mock.Anything, "ghost").Return(false, nil)
		uc := usecase.NewAuthUsecase(repo, newTokenService(), &recordingNotifier{})

		err := uc.DeleteAdmin(asAdmin("boss", domain.RoleSuperadmin), "ghost")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should delete when actor is superadmin", func(t *testing.T) {
		repo := new(MockAdminRepo)
		repo.On("Delete", mock.Anything, "target").Return(true, nil)
		uc := usecase.NewAuthUsecase(repo, newTokenService(), &recordingNotifier{})

		err := uc.DeleteAdmin(asAdmin("boss", domain.RoleSuperadmin), "target")
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestCreateAdmin(t *testing.T) {
	t.Run("Should reject a duplicate username with 409", func(t *testing.T) {
		repo := new(MockAdminRepo)
		repo.On("GetByUsername", mock.Anything, "shreeya").Return(&domain.Admin{Username: "shreeya"}, nil)
		uc := usecase.NewAuthUsecase(repo, newTokenService(), &recordingNotifier{})

		_, err := uc.CreateAdmin(context.Background(), domain.CreateAdminRequest{
			Username: "shreeya", Password: "longenough", Name: "Shreeya",
		})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
		repo.AssertNotCalled(t, "Insert")
	})

	t.Run("Should return 409 when the unique index loses a concurrent create", func(t *testing.T) {
		// The duplicate slipped past the lookup, so only the index catches it.
		repo := new(MockAdminRepo)
		repo.On("GetByUsername", mock.Anything, "shreeya").Return(nil, nil)
		repo.On("Insert", mock.Anything, mock.Anything).Return("", domain.ErrUsernameTaken)
		uc := usecase.NewAuthUsecase(repo, newTokenService(), &recordingNotifier{})

		_, err := uc.CreateAdmin(context.Background(), domain.CreateAdminRequest{
			Username: "shreeya", Password: "longenough", Name: "Shreeya",
		})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
		assert.Contains(t, appErr.Message, "already exists")
	})

	t.Run("Should default role to admin and hash the password", func(t *testing.T) {
		repo := new(MockAdminRepo)
		repo.On("GetByUsername", mock.Anything, "new-admin").Return(nil, nil)
		repo.On("Insert", mock.Anything, mock.Anything).Return("abc123", nil)
		uc := usecase.NewAuthUsecase(repo, newTokenService(), &recordingNotifier{})

		admin, err := uc.CreateAdmin(context.Background(), domain.CreateAdminRequest{
			Username: "new-admin", Password: "longenough", Name: "New Admin",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, admin.Role)
		assert.Equal(t, "abc123", admin.ID)
		assert.NotEqual(t, "longenough", admin.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("longenough")))
	})
}

func TestProjectUpdate(t *testing.T) {
	t.Run("Should reject an empty patch before touching the store", func(t *testing.T) {
		repo := new(MockProjectRepo)
		uc := usecase.NewProjectUsecase(repo)

		err := uc.Update(context.Background(), "64a0f0f0f0f0f0f0f0f0f0f0", domain.UpdateProjectRequest{})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("Should return 404 when no document matches", func(t *testing.T) {
		repo := new(MockProjectRepo)
		repo.On("Update", mock.Anything, "unknown", mock.Anything, mock.Anything).Return(false, nil)
		uc := usecase.NewProjectUsecase(repo)

		title := "New Title"
		err := uc.Update(context.Background(), "unknown", domain.UpdateProjectRequest{Title: &title})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should apply a single-field patch", func(t *testing.T) {
		repo := new(MockProjectRepo)
		repo.On("Update", mock.Anything, "id1", mock.Anything, mock.Anything).Return(true, nil)
		uc := usecase.NewProjectUsecase(repo)

		status := domain.ProjectStatusCompleted
		err := uc.Update(context.Background(), "id1", domain.UpdateProjectRequest{Status: &status})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestSkillsValidation(t *testing.T) {
	validate := validator.New()

	t.Run("Should reject an out-of-range proficiency", func(t *testing.T) {
		repo := new(MockSkillsRepo)
		uc := usecase.NewSkillsUsecase(repo, validate)

		err := uc.UpdateCategory(context.Background(), "Backend", []domain.Skill{
			{Name: "Go", Proficiency: 140},
		})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		repo.AssertNotCalled(t, "ReplaceCategory")
	})

	t.Run("Should reject a blank category name", func(t *testing.T) {
		repo := new(MockSkillsRepo)
		uc := usecase.NewSkillsUsecase(repo, validate)

		err := uc.UpdateCategory(context.Background(), "   ", []domain.Skill{{Name: "Go", Proficiency: 80}})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "ReplaceCategory")
	})

	t.Run("Should upsert a valid category", func(t *testing.T) {
		repo := new(MockSkillsRepo)
		repo.On("ReplaceCategory", mock.Anything, "Backend", mock.Anything).Return(nil)
		uc := usecase.NewSkillsUsecase(repo, validate)

		err := uc.UpdateCategory(context.Background(), "Backend", []domain.Skill{{Name: "Go", Proficiency: 85}})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should return 404 when deleting an unknown category", func(t *testing.T) {
		repo := new(MockSkillsRepo)
		repo.On("DeleteCategory", mock.Anything, "Nope").Return(false, nil)
		uc := usecase.NewSkillsUsecase(repo, validate)

		err := uc.DeleteCategory(context.Background(), "Nope")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestMessageSubmit(t *testing.T) {
	t.Run("Should store the message unread and notify with type message", func(t *testing.T) {
		repo := new(MockMessageRepo)
		repo.On("Insert", mock.Anything, mock.MatchedBy(func(m *domain.ContactMessage) bool {
			return !m.Read && m.Name == "Visitor"
		})).Return("msg1", nil)
		notifier := &recordingNotifier{}
		uc := usecase.NewMessageUsecase(repo, notifier)

		id, err := uc.Submit(context.Background(), domain.CreateMessageRequest{
			Name: "Visitor", Email: "v@example.com", Message: "Hi!",
		})
		assert.NoError(t, err)
		assert.Equal(t, "msg1", id)
		assert.Equal(t, []string{domain.NotifyMessage}, notifier.types)
		assert.Contains(t, notifier.messages[0], "Visitor")
	})

	t.Run("Should not notify when the store rejects the message", func(t *testing.T) {
		repo := new(MockMessageRepo)
		repo.On("Insert", mock.Anything, mock.Anything).Return("", errors.New("boom"))
		notifier := &recordingNotifier{}
		uc := usecase.NewMessageUsecase(repo, notifier)

		_, err := uc.Submit(context.Background(), domain.CreateMessageRequest{
			Name: "Visitor", Email: "v@example.com", Message: "Hi!",
		})
		assert.Error(t, err)
		assert.Empty(t, notifier.types)
	})
}

func TestContentSingleton(t *testing.T) {
	t.Run("Should return 404 when the collection is empty", func(t *testing.T) {
		repos := usecase.ContentRepos{Profile: &fakeSingleton[domain.Profile]{}}
		uc := usecase.NewContentUsecase(repos)

		_, err := uc.GetProfile(context.Background())
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should return the stored document", func(t *testing.T) {
		doc := &domain.Profile{Name: "Shreeya"}
		repos := usecase.ContentRepos{Profile: &fakeSingleton[domain.Profile]{doc: doc}}
		uc := usecase.NewContentUsecase(repos)

		got, err := uc.GetProfile(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "Shreeya", got.Name)
	})

	t.Run("Should replace wholesale on update", func(t *testing.T) {
		store := &fakeSingleton[domain.Footer]{}
		repos := usecase.ContentRepos{Footer: store}
		uc := usecase.NewContentUsecase(repos)

		footer := &domain.Footer{BrandName: "Shreeya Gupta"}
		err := uc.UpdateFooter(context.Background(), footer)
		assert.NoError(t, err)
		assert.Equal(t, footer, store.replaced)
	})
}

func TestNotificationRecordNeverFails(t *testing.T) {
	repo := new(MockNotificationRepo)
	repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("store down"))
	uc := usecase.NewNotificationUsecase(repo)

	assert.NotPanics(t, func() {
		uc.Record(context.Background(), domain.NotifyContent, "Profile update by shreeya succeeded")
	})
	repo.AssertExpectations(t)
}

func TestDashboardSummary(t *testing.T) {
	projectRepo := new(MockProjectRepo)
	messageRepo := new(MockMessageRepo)
	skillsRepo := new(MockSkillsRepo)
	notificationRepo := new(MockNotificationRepo)

	projectRepo.On("Count", mock.Anything).Return(int64(4), nil)
	messageRepo.On("Counts", mock.Anything).Return(int64(12), int64(3), nil)
	skillsRepo.On("CountCategories", mock.Anything).Return(int64(5), nil)
	notificationRepo.On("UnreadCount", mock.Anything).Return(int64(7), nil)
	messageRepo.On("Recent", mock.Anything, int64(5)).Return([]domain.ContactMessage{{Name: "A"}}, nil)

	uc := usecase.NewDashboardUsecase(projectRepo, messageRepo, skillsRepo, notificationRepo)
	summary, err := uc.Summary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(4), summary.ProjectCount)
	assert.Equal(t, int64(12), summary.MessageCount)
	assert.Equal(t, int64(3), summary.UnreadMessageCount)
	assert.Equal(t, int64(5), summary.SkillCategoryCount)
	assert.Equal(t, int64(7), summary.UnreadNotificationCount)
	assert.Len(t, summary.RecentMessages, 1)
}
