package usecase

import (
	"context"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type journeyUsecase struct {
	journeyRepo domain.JourneyRepository
}

func NewJourneyUsecase(journeyRepo domain.JourneyRepository) domain.JourneyUsecase {
	return &journeyUsecase{journeyRepo: journeyRepo}
}

func (u *journeyUsecase) List(ctx context.Context) ([]domain.LearningPhase, error) {
	phases, err := u.journeyRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return phases, nil
}

func (u *journeyUsecase) Create(ctx context.Context, req domain.CreatePhaseRequest) (string, error) {
	phase := &domain.LearningPhase{
		Phase:     req.Phase,
		Skills:    req.Skills,
		Status:    req.Status,
		Order:     req.Order,
		UpdatedAt: time.Now().UTC(),
	}
	if phase.Skills == nil {
		phase.Skills = []string{}
	}

	id, err := u.journeyRepo.Insert(ctx, phase)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return id, nil
}

func (u *journeyUsecase) Update(ctx context.Context, id string, patch domain.UpdatePhaseRequest) error {
	if patch.IsEmpty() {
		return apperror.BadRequest("No data to update")
	}

	matched, err := u.journeyRepo.Update(ctx, id, patch, time.Now().UTC())
	if err != nil {
		return apperror.Internal(err)
	}
	if !matched {
		return apperror.NotFound("Learning phase not found")
	}
	return nil
}

func (u *journeyUsecase) Delete(ctx context.Context, id string) error {
	ok, err := u.journeyRepo.Delete(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if !ok {
		return apperror.NotFound("Learning phase not found")
	}
	return nil
}
