package domain

import (
	"context"
	"errors"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmailFormat    = errors.New("invalid email format")
)

// Client-facing messages for the errors above.
const (
	MsgMissingRequiredFields = "Missing required fields: fullName, companyName, email"
	MsgInvalidEmailFormat    = "Invalid email format"
)

type ContactMethod string

const (
	ContactMethodEmail ContactMethod = "email"
	ContactMethodPhone ContactMethod = "phone"
)

// ContactPayload is the raw JSON object posted by the contact form. Values
// come from an untrusted caller and may be missing or of any JSON type.
type ContactPayload map[string]any

// Submission is a contact form request after coercion. It lives for one
// request and is never stored.
type Submission struct {
	FullName          string        `json:"fullName" validate:"required"`
	CompanyName       string        `json:"companyName" validate:"required"`
	Email             string        `json:"email" validate:"required,loose_email"`
	Country           string        `json:"country,omitempty"`
	Phone             string        `json:"phone,omitempty"`
	Industry          string        `json:"industry,omitempty"`
	JobTitle          string        `json:"jobTitle,omitempty"`
	Services          []string      `json:"services,omitempty"`
	Description       string        `json:"description,omitempty"`
	HearAbout         string        `json:"hearAbout,omitempty"`
	ContactMethod     ContactMethod `json:"contactMethod,omitempty" validate:"omitempty,oneof=email phone"`
	ConflictScreening bool          `json:"conflictScreening"`
}

// ContactRequest documents the accepted body for the API docs only; the
// handler decodes into ContactPayload.
type ContactRequest struct {
	FullName          string   `json:"fullName" example:"Jane Doe"`
	CompanyName       string   `json:"companyName" example:"Acme"`
	Email             string   `json:"email" example:"jane@acme.com"`
	Country           string   `json:"country" example:"Egypt"`
	Phone             string   `json:"phone" example:"+201001234567"`
	Industry          string   `json:"industry" example:"Banking"`
	JobTitle          string   `json:"jobTitle" example:"Head of Compliance"`
	Services          []string `json:"services"`
	Description       string   `json:"description"`
	HearAbout         string   `json:"hearAbout" example:"linkedin"`
	ContactMethod     string   `json:"contactMethod" enums:"email,phone"`
	ConflictScreening bool     `json:"conflictScreening"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitInquiry validates the payload and sends the notification and
	// confirmation emails, in that order.
	SubmitInquiry(ctx context.Context, payload ContactPayload) error
}

type HealthStatus struct {
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp" example:"2026-10-19T10:00:00.000Z"`
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}
