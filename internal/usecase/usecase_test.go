package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"compliance-ai-backend/internal/domain"
	"compliance-ai-backend/internal/usecase"
	"compliance-ai-backend/pkg/email"
	"compliance-ai-backend/pkg/metrics"
	"compliance-ai-backend/pkg/validation"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const notifyTo = "owner@complianceai.com"

// Mock Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func fixedNow() time.Time {
	return time.Date(2026, time.October, 19, 10, 30, 0, 0, time.UTC)
}

func validPayload() domain.ContactPayload {
	return domain.ContactPayload{
		"fullName":    "Jane Doe",
		"companyName": "Acme",
		"email":       "jane@acme.com",
		"services":    []any{"policy", "audit"},
		"description": "Need help.\nUrgent.",
	}
}

func newContactUC(sender email.Sender, m *metrics.Metrics) domain.ContactUsecase {
	return usecase.NewContactUsecase(sender, usecase.ContactOptions{
		NotifyTo: notifyTo,
		Metrics:  m,
		Now:      fixedNow,
	})
}

func TestSubmitInquiryValidation(t *testing.T) {
	cases := []struct {
		name    string
		payload domain.ContactPayload
		want    error
	}{
		{"missing fullName", domain.ContactPayload{"companyName": "Acme", "email": "jane@acme.com"}, domain.ErrMissingRequiredFields},
		{"missing companyName", domain.ContactPayload{"fullName": "Jane", "email": "jane@acme.com"}, domain.ErrMissingRequiredFields},
		{"missing email", domain.ContactPayload{"fullName": "Jane", "companyName": "Acme"}, domain.ErrMissingRequiredFields},
		{"blank fullName", domain.ContactPayload{"fullName": "   ", "companyName": "Acme", "email": "jane@acme.com"}, domain.ErrMissingRequiredFields},
		{"wrong type fullName", domain.ContactPayload{"fullName": 42.0, "companyName": "Acme", "email": "jane@acme.com"}, domain.ErrMissingRequiredFields},
		{"missing beats invalid", domain.ContactPayload{"companyName": "Acme", "email": "nope"}, domain.ErrMissingRequiredFields},
		{"empty payload", nil, domain.ErrMissingRequiredFields},
		{"not-an-email", domain.ContactPayload{"fullName": "Jane", "companyName": "Acme", "email": "not-an-email"}, domain.ErrInvalidEmailFormat},
		{"no tld", domain.ContactPayload{"fullName": "Jane", "companyName": "Acme", "email": "a@b"}, domain.ErrInvalidEmailFormat},
		{"no local part", domain.ContactPayload{"fullName": "Jane", "companyName": "Acme", "email": "@b.com"}, domain.ErrInvalidEmailFormat},
		{"byte order mark in email", domain.ContactPayload{"fullName": "Jane", "companyName": "Acme", "email": "jane\ufeff@acme.com"}, domain.ErrInvalidEmailFormat},
	}

	for _, tc := range cases {
		t.Run("Should reject "+tc.name, func(t *testing.T) {
			sender := new(MockSender)
			m := metrics.New()
			uc := newContactUC(sender, m)

			err := uc.SubmitInquiry(context.Background(), tc.payload)
			assert.ErrorIs(t, err, tc.want)
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions().WithLabelValues(metrics.OutcomeRejected)))
		})
	}
}

func TestSubmitInquirySendsBothEmails(t *testing.T) {
	sender := new(MockSender)
	m := metrics.New()
	uc := newContactUC(sender, m)

	var sent []email.Message
	sender.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).Return(nil).Run(func(args mock.Arguments) {
		sent = append(sent, args.Get(1).(email.Message))
	})

	err := uc.SubmitInquiry(context.Background(), validPayload())
	require.NoError(t, err)
	require.Len(t, sent, 2)

	admin := sent[0]
	assert.Equal(t, []string{notifyTo}, admin.To)
	assert.Equal(t, "jane@acme.com", admin.ReplyTo)
	assert.Equal(t, "New Contact Form Submission from Jane Doe - Acme", admin.Subject)
	assert.Contains(t, admin.HTMLBody, "<li>policy</li><li>audit</li>")
	assert.Contains(t, admin.HTMLBody, "Need help.<br>Urgent.")
	assert.Contains(t, admin.HTMLBody, "Monday, October 19, 2026 at 10:30 AM UTC")

	confirm := sent[1]
	assert.Equal(t, []string{"jane@acme.com"}, confirm.To)
	assert.Empty(t, confirm.ReplyTo)
	assert.Equal(t, "Thank You for Your Inquiry - Compliance AI", confirm.Subject)
	assert.Contains(t, confirm.HTMLBody, "Dear Jane Doe,")
	assert.NotContains(t, confirm.HTMLBody, "policy")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions().WithLabelValues(metrics.OutcomeAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Emails().WithLabelValues("confirmation", "sent")))
}

func TestSubmitInquirySendFailure(t *testing.T) {
	boom := errors.New("smtp: connection refused")

	t.Run("Should not send confirmation when notification fails", func(t *testing.T) {
		sender := new(MockSender)
		m := metrics.New()
		uc := newContactUC(sender, m)
		sender.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).Return(boom).Once()

		err := uc.SubmitInquiry(context.Background(), validPayload())
		assert.ErrorIs(t, err, boom)
		sender.AssertNumberOfCalls(t, "Send", 1)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions().WithLabelValues(metrics.OutcomeFailed)))
	})

	t.Run("Should surface confirmation failure", func(t *testing.T) {
		sender := new(MockSender)
		uc := newContactUC(sender, nil)
		sender.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).Return(nil).Once()
		sender.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).Return(boom).Once()

		err := uc.SubmitInquiry(context.Background(), validPayload())
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "confirmation")
		sender.AssertNumberOfCalls(t, "Send", 2)
	})
}

func TestParseSubmissionCoercion(t *testing.T) {
	v := validation.New()

	t.Run("Should coerce loosely typed fields", func(t *testing.T) {
		sub, err := usecase.ParseSubmission(v, domain.ContactPayload{
			"fullName":          "  Jane \n Doe ",
			"companyName":       "Acme",
			"email":             " jane@acme.com ",
			"country":           7.0,
			"services":          []any{"policy", 3.0, " ", "audit"},
			"contactMethod":     "PHONE",
			"conflictScreening": "on",
			"description":       " line one\nline two ",
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", sub.FullName)
		assert.Equal(t, "jane@acme.com", sub.Email)
		assert.Empty(t, sub.Country)
		assert.Equal(t, []string{"policy", "audit"}, sub.Services)
		assert.Equal(t, domain.ContactMethodPhone, sub.ContactMethod)
		assert.True(t, sub.ConflictScreening)
		assert.Equal(t, "line one\nline two", sub.Description)
	})

	t.Run("Should drop unknown enum and odd consent values", func(t *testing.T) {
		sub, err := usecase.ParseSubmission(v, domain.ContactPayload{
			"fullName":          "Jane",
			"companyName":       "Acme",
			"email":             "jane@acme.com",
			"services":          "policy",
			"contactMethod":     "fax",
			"conflictScreening": 1.0,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"policy"}, sub.Services)
		assert.Empty(t, sub.ContactMethod)
		assert.False(t, sub.ConflictScreening)
	})
}

func TestNotificationFieldsOptionalRows(t *testing.T) {
	render := func(sub *domain.Submission) string {
		admin, _, err := usecase.ComposeEmails(sub, notifyTo, fixedNow())
		require.NoError(t, err)
		return admin.HTMLBody
	}
	base := func() *domain.Submission {
		return &domain.Submission{FullName: "Jane Doe", CompanyName: "Acme", Email: "jane@acme.com"}
	}

	t.Run("Should omit absent country", func(t *testing.T) {
		html := render(base())
		assert.NotContains(t, html, "Country:")
		assert.NotContains(t, html, "Services Interested In:")
		assert.NotContains(t, html, "Preferred Contact Method:")
		assert.Contains(t, html, "Conflict of Interest Screening Consent:")
	})

	t.Run("Should show present country", func(t *testing.T) {
		sub := base()
		sub.Country = "Egypt"
		html := render(sub)
		assert.Contains(t, html, "Country:")
		assert.Contains(t, html, "Egypt")
	})

	t.Run("Should format international phone numbers", func(t *testing.T) {
		sub := base()
		sub.Phone = "+14155552671"
		assert.Contains(t, render(sub), "415")

		sub.Phone = "call me maybe"
		assert.Contains(t, render(sub), "call me maybe")
	})
}

func TestHealthCheck(t *testing.T) {
	uc := usecase.NewHealthUsecase(fixedNow)
	status := uc.Check(context.Background())
	assert.Equal(t, "ok", status.Status)

	ts, err := time.Parse(time.RFC3339, status.Timestamp)
	require.NoError(t, err)
	assert.True(t, ts.Equal(fixedNow()))
}
