package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"golang.org/x/sync/errgroup"
)

type dashboardUsecase struct {
	projectRepo      domain.ProjectRepository
	messageRepo      domain.MessageRepository
	skillsRepo       domain.SkillsRepository
	notificationRepo domain.NotificationRepository
}

func NewDashboardUsecase(
	projectRepo domain.ProjectRepository,
	messageRepo domain.MessageRepository,
	skillsRepo domain.SkillsRepository,
	notificationRepo domain.NotificationRepository,
) domain.DashboardUsecase {
	return &dashboardUsecase{
		projectRepo:      projectRepo,
		messageRepo:      messageRepo,
		skillsRepo:       skillsRepo,
		notificationRepo: notificationRepo,
	}
}

// Summary gathers the admin landing page counters in parallel.
func (u *dashboardUsecase) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{RecentMessages: []domain.ContactMessage{}}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := u.projectRepo.Count(gctx)
		summary.ProjectCount = n
		return err
	})
	g.Go(func() error {
		total, unread, err := u.messageRepo.Counts(gctx)
		summary.MessageCount = total
		summary.UnreadMessageCount = unread
		return err
	})
	g.Go(func() error {
		n, err := u.skillsRepo.CountCategories(gctx)
		summary.SkillCategoryCount = n
		return err
	})
	g.Go(func() error {
		n, err := u.notificationRepo.UnreadCount(gctx)
		summary.UnreadNotificationCount = n
		return err
	})
	g.Go(func() error {
		recent, err := u.messageRepo.Recent(gctx, 5)
		if recent != nil {
			summary.RecentMessages = recent
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperror.Internal(err)
	}
	return summary, nil
}
