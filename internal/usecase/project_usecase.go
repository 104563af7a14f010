package usecase

import (
	"context"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type projectUsecase struct {
	projectRepo domain.ProjectRepository
}

func NewProjectUsecase(projectRepo domain.ProjectRepository) domain.ProjectUsecase {
	return &projectUsecase{projectRepo: projectRepo}
}

func (u *projectUsecase) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := u.projectRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return projects, nil
}

func (u *projectUsecase) Create(ctx context.Context, req domain.CreateProjectRequest) (string, error) {
	now := time.Now().UTC()
	project := &domain.Project{
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		Image:        req.Image,
		LiveURL:      req.LiveURL,
		GithubURL:    req.GithubURL,
		Technologies: req.Technologies,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}

	id, err := u.projectRepo.Insert(ctx, project)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return id, nil
}

func (u *projectUsecase) Update(ctx context.Context, id string, patch domain.UpdateProjectRequest) error {
	if patch.IsEmpty() {
		return apperror.BadRequest("No data to update")
	}

	matched, err := u.projectRepo.Update(ctx, id, patch, time.Now().UTC())
	if err != nil {
		return apperror.Internal(err)
	}
	if !matched {
		return apperror.NotFound("Project not found")
	}
	return nil
}

func (u *projectUsecase) Delete(ctx context.Context, id string) error {
	ok, err := u.projectRepo.Delete(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if !ok {
		return apperror.NotFound("Project not found")
	}
	return nil
}
