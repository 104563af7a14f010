package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

// ContentRepos bundles the seven single-document content stores.
type ContentRepos struct {
	Profile     domain.SingletonRepository[domain.Profile]
	Education   domain.SingletonRepository[domain.Education]
	Experience  domain.SingletonRepository[domain.Experience]
	Growth      domain.SingletonRepository[domain.GrowthMindset]
	Footer      domain.SingletonRepository[domain.Footer]
	Contact     domain.SingletonRepository[domain.ContactSection]
	Experiments domain.SingletonRepository[domain.ExperimentsSection]
}

type contentUsecase struct {
	repos ContentRepos
}

func NewContentUsecase(repos ContentRepos) domain.ContentUsecase {
	return &contentUsecase{repos: repos}
}

// getSingleton maps "collection is empty" to a 404 with the section name.
func getSingleton[T any](ctx context.Context, repo domain.SingletonRepository[T], label string) (*T, error) {
	doc, err := repo.Get(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if doc == nil {
		return nil, apperror.NotFound(label + " not found")
	}
	return doc, nil
}

func putSingleton[T any](ctx context.Context, repo domain.SingletonRepository[T], doc *T) error {
	if err := repo.Replace(ctx, doc); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *contentUsecase) GetProfile(ctx context.Context) (*domain.Profile, error) {
	return getSingleton(ctx, u.repos.Profile, "Profile")
}

func (u *contentUsecase) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	return putSingleton(ctx, u.repos.Profile, profile)
}

func (u *contentUsecase) GetEducation(ctx context.Context) (*domain.Education, error) {
	return getSingleton(ctx, u.repos.Education, "Education")
}

func (u *contentUsecase) UpdateEducation(ctx context.Context, education *domain.Education) error {
	return putSingleton(ctx, u.repos.Education, education)
}

func (u *contentUsecase) GetExperience(ctx context.Context) (*domain.Experience, error) {
	return getSingleton(ctx, u.repos.Experience, "Experience")
}

func (u *contentUsecase) UpdateExperience(ctx context.Context, experience *domain.Experience) error {
	return putSingleton(ctx, u.repos.Experience, experience)
}

func (u *contentUsecase) GetGrowthMindset(ctx context.Context) (*domain.GrowthMindset, error) {
	return getSingleton(ctx, u.repos.Growth, "Growth mindset")
}

func (u *contentUsecase) UpdateGrowthMindset(ctx context.Context, gm *domain.GrowthMindset) error {
	return putSingleton(ctx, u.repos.Growth, gm)
}

func (u *contentUsecase) GetFooter(ctx context.Context) (*domain.Footer, error) {
	return getSingleton(ctx, u.repos.Footer, "Footer")
}

func (u *contentUsecase) UpdateFooter(ctx context.Context, footer *domain.Footer) error {
	return putSingleton(ctx, u.repos.Footer, footer)
}

func (u *contentUsecase) GetContactSection(ctx context.Context) (*domain.ContactSection, error) {
	return getSingleton(ctx, u.repos.Contact, "Contact section")
}

func (u *contentUsecase) UpdateContactSection(ctx context.Context, section *domain.ContactSection) error {
	return putSingleton(ctx, u.repos.Contact, section)
}

func (u *contentUsecase) GetExperiments(ctx context.Context) (*domain.ExperimentsSection, error) {
	return getSingleton(ctx, u.repos.Experiments, "Experiments section")
}

func (u *contentUsecase) UpdateExperiments(ctx context.Context, section *domain.ExperimentsSection) error {
	return putSingleton(ctx, u.repos.Experiments, section)
}
