package usecase

import (
	"context"
	"strings"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type skillsUsecase struct {
	skillsRepo domain.SkillsRepository
	validate   *validator.Validate
}

func NewSkillsUsecase(skillsRepo domain.SkillsRepository, validate *validator.Validate) domain.SkillsUsecase {
	return &skillsUsecase{
		skillsRepo: skillsRepo,
		validate:   validate,
	}
}

func (u *skillsUsecase) GetSkills(ctx context.Context) (map[string][]domain.Skill, error) {
	skills, err := u.skillsRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return skills, nil
}

// UpdateCategory replaces a category's skill list wholesale; an unknown
// category name creates the category.
func (u *skillsUsecase) UpdateCategory(ctx context.Context, category string, skills []domain.Skill) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return apperror.BadRequest("Category name is required")
	}

	for _, skill := range skills {
		if err := u.validate.Struct(skill); err != nil {
			return apperror.BadRequest("Each skill needs a name and a proficiency between 0 and 100")
		}
	}
	if skills == nil {
		skills = []domain.Skill{}
	}

	if err := u.skillsRepo.ReplaceCategory(ctx, category, skills); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *skillsUsecase) DeleteCategory(ctx context.Context, category string) error {
	ok, err := u.skillsRepo.DeleteCategory(ctx, category)
	if err != nil {
		return apperror.Internal(err)
	}
	if !ok {
		return apperror.NotFound("Skill category not found")
	}
	return nil
}
