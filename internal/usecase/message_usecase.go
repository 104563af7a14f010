package usecase

import (
	"context"
	"fmt"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type messageUsecase struct {
	messageRepo domain.MessageRepository
	notifier    domain.Notifier
}

func NewMessageUsecase(messageRepo domain.MessageRepository, notifier domain.Notifier) domain.MessageUsecase {
	return &messageUsecase{
		messageRepo: messageRepo,
		notifier:    notifier,
	}
}

// Submit stores a visitor message and records a bell notification for the
// admin panel.
func (u *messageUsecase) Submit(ctx context.Context, req domain.CreateMessageRequest) (string, error) {
	msg := &domain.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	id, err := u.messageRepo.Insert(ctx, msg)
	if err != nil {
		return "", apperror.Internal(err)
	}

	u.notifier.Record(ctx, domain.NotifyMessage, fmt.Sprintf("New message from %s", req.Name))

	return id, nil
}

func (u *messageUsecase) List(ctx context.Context) ([]domain.ContactMessage, error) {
	messages, err := u.messageRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return messages, nil
}

func (u *messageUsecase) MarkRead(ctx context.Context, id string) error {
	ok, err := u.messageRepo.MarkRead(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if !ok {
		return apperror.NotFound("Message not found")
	}
	return nil
}

func (u *messageUsecase) Delete(ctx context.Context, id string) error {
	ok, err := u.messageRepo.Delete(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if !ok {
		return apperror.NotFound("Message not found")
	}
	return nil
}
