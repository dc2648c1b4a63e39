// Package email provides email sending functionality.
package email

import (
	"context"

	"github.com/moneydiary/backend/internal/application/adapter"
	"github.com/moneydiary/backend/internal/domain/entity"
	domainerror "github.com/moneydiary/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	subject := "Reset your password - MoneyDiary"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
