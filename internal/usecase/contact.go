package usecase

import (
	"context"
	"fmt"
	"time"

	"compliance-ai-backend/internal/domain"
	"compliance-ai-backend/pkg/email"
	"compliance-ai-backend/pkg/logger"
	"compliance-ai-backend/pkg/metrics"
	"compliance-ai-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	BrandName         = "Compliance AI"
	ConfirmationTitle = "Thank You for Your Inquiry - " + BrandName
)

type ContactOptions struct {
	// NotifyTo is the business inbox receiving every submission
	NotifyTo string
	Metrics  *metrics.Metrics
	Validate *validator.Validate
	Now      func() time.Time
}

type contactUsecase struct {
	sender   email.Sender
	notifyTo string
	metrics  *metrics.Metrics
	validate *validator.Validate
	now      func() time.Time
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender email.Sender, opts ContactOptions) domain.ContactUsecase {
	if opts.Validate == nil {
		opts.Validate = validation.New()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &contactUsecase{
		sender:   sender,
		notifyTo: opts.NotifyTo,
		metrics:  opts.Metrics,
		validate: opts.Validate,
		now:      opts.Now,
	}
}

// SubmitInquiry validates the payload, then sends the admin notification
// followed by the submitter confirmation. Nothing is sent unless the
// payload is valid, and a failed notification skips the confirmation.
func (uc *contactUsecase) SubmitInquiry(ctx context.Context, payload domain.ContactPayload) error {
	sub, err := ParseSubmission(uc.validate, payload)
	if err != nil {
		uc.metrics.ObserveSubmission(metrics.OutcomeRejected)
		return err
	}

	notification, confirmation, err := ComposeEmails(sub, uc.notifyTo, uc.now())
	if err != nil {
		uc.metrics.ObserveSubmission(metrics.OutcomeFailed)
		logger.Log.Error("Failed to render contact emails", "error", err)
		return err
	}

	err = uc.sender.Send(ctx, notification)
	uc.metrics.ObserveEmail("notification", err)
	if err != nil {
		uc.metrics.ObserveSubmission(metrics.OutcomeFailed)
		logger.Log.Error("Failed to send contact notification", "error", err, "company", sub.CompanyName)
		return fmt.Errorf("failed to send contact notification: %w", err)
	}

	err = uc.sender.Send(ctx, confirmation)
	uc.metrics.ObserveEmail("confirmation", err)
	if err != nil {
		uc.metrics.ObserveSubmission(metrics.OutcomeFailed)
		logger.Log.Error("Failed to send contact confirmation", "error", err, "company", sub.CompanyName)
		return fmt.Errorf("failed to send contact confirmation: %w", err)
	}

	uc.metrics.ObserveSubmission(metrics.OutcomeAccepted)
	logger.Log.Info("Contact inquiry delivered", "company", sub.CompanyName, "services", len(sub.Services))
	return nil
}

// ComposeEmails renders both documents for a valid submission.
func ComposeEmails(sub *domain.Submission, notifyTo string, receivedAt time.Time) (email.Message, email.Message, error) {
	adminHTML, err := email.RenderNotification(email.NotificationData{
		BrandName:  BrandName,
		Fields:     NotificationFields(sub),
		ReceivedAt: receivedAt.Format("Monday, January 2, 2006 at 3:04 PM MST"),
	})
	if err != nil {
		return email.Message{}, email.Message{}, err
	}

	confirmHTML, err := email.RenderConfirmation(email.ConfirmationData{
		BrandName: BrandName,
		Name:      sub.FullName,
		Year:      receivedAt.Year(),
	})
	if err != nil {
		return email.Message{}, email.Message{}, err
	}

	notification := email.Message{
		To:       []string{notifyTo},
		ReplyTo:  sub.Email,
		Subject:  fmt.Sprintf("New Contact Form Submission from %s - %s", sub.FullName, sub.CompanyName),
		HTMLBody: adminHTML,
	}
	confirmation := email.Message{
		To:       []string{sub.Email},
		Subject:  ConfirmationTitle,
		HTMLBody: confirmHTML,
	}
	return notification, confirmation, nil
}
