package usecase

import (
	"context"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
)

type notificationUsecase struct {
	notificationRepo domain.NotificationRepository
}

func NewNotificationUsecase(notificationRepo domain.NotificationRepository) domain.NotificationUsecase {
	return &notificationUsecase{notificationRepo: notificationRepo}
}

// Record writes an audit notification. It is fire-and-forget: a failed write
// is logged and never surfaces to the caller, and it survives cancellation
// of the originating request.
func (u *notificationUsecase) Record(ctx context.Context, notifType, message string) {
	n := &domain.Notification{
		Message:   message,
		Type:      notifType,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.notificationRepo.Insert(context.WithoutCancel(ctx), n); err != nil {
		logger.Log.Warn("notification write failed", "type", notifType, "error", err)
	}
}

func (u *notificationUsecase) List(ctx context.Context) ([]domain.Notification, error) {
	notifications, err := u.notificationRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return notifications, nil
}

func (u *notificationUsecase) MarkRead(ctx context.Context, id string) error {
	ok, err := u.notificationRepo.MarkRead(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if !ok {
		return apperror.NotFound("Notification not found")
	}
	return nil
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context) error {
	if err := u.notificationRepo.MarkAllRead(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *notificationUsecase) Clear(ctx context.Context) error {
	if err := u.notificationRepo.Clear(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
