package usecase

import (
	"strconv"
	"strings"

	"compliance-ai-backend/internal/domain"
	"compliance-ai-backend/pkg/email"
	"compliance-ai-backend/pkg/logger"
	"compliance-ai-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

// ParseSubmission coerces an untrusted payload into a Submission and
// validates it. Missing required fields are reported before a malformed
// email, matching what the form shows the visitor.
func ParseSubmission(v *validator.Validate, payload domain.ContactPayload) (*domain.Submission, error) {
	sub := &domain.Submission{
		FullName:          line(payload, "fullName"),
		CompanyName:       line(payload, "companyName"),
		Email:             line(payload, "email"),
		Country:           line(payload, "country"),
		Phone:             line(payload, "phone"),
		Industry:          line(payload, "industry"),
		JobTitle:          line(payload, "jobTitle"),
		Services:          list(payload, "services"),
		Description:       text(payload, "description"),
		HearAbout:         line(payload, "hearAbout"),
		ContactMethod:     contactMethod(payload, "contactMethod"),
		ConflictScreening: flag(payload, "conflictScreening"),
	}

	if err := v.Struct(sub); err != nil {
		tags := validation.FailedTags(err)
		if len(tags["required"]) > 0 {
			return nil, domain.ErrMissingRequiredFields
		}
		if len(tags["loose_email"]) > 0 {
			return nil, domain.ErrInvalidEmailFormat
		}
		logger.Log.Debug("Unexpected submission validation failure", "errors", validation.FormatValidationErrors(err))
		return nil, err
	}
	return sub, nil
}

// NotificationFields lists the admin document rows in display order.
// Rows left empty here are dropped by the template.
func NotificationFields(sub *domain.Submission) []email.Field {
	consent := "No"
	if sub.ConflictScreening {
		consent = "Yes"
	}

	return []email.Field{
		{Label: "Full Name:", Value: sub.FullName},
		{Label: "Company Name:", Value: sub.CompanyName},
		{Label: "Email:", Value: sub.Email, Href: "mailto:" + sub.Email},
		{Label: "Country:", Value: sub.Country},
		{Label: "Phone:", Value: formatPhone(sub.Phone)},
		{Label: "Industry:", Value: sub.Industry},
		{Label: "Job Title:", Value: sub.JobTitle},
		{Label: "Services Interested In:", Items: sub.Services},
		{Label: "Message:", Value: sub.Description},
		{Label: "How did you hear about us?", Value: sub.HearAbout},
		{Label: "Preferred Contact Method:", Value: string(sub.ContactMethod)},
		{Label: "Conflict of Interest Screening Consent:", Value: consent},
	}
}

// formatPhone renders numbers given in international form (+CC...) the
// standard way and leaves anything else as typed.
func formatPhone(raw string) string {
	if raw == "" {
		return ""
	}
	num, err := phonenumbers.Parse(raw, "")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}

// text returns a trimmed string value; non-string values count as absent.
func text(p domain.ContactPayload, key string) string {
	s, ok := p[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// line is text collapsed to a single line, so values are safe to use in
// mail headers.
func line(p domain.ContactPayload, key string) string {
	return strings.Join(strings.Fields(text(p, key)), " ")
}

func list(p domain.ContactPayload, key string) []string {
	switch v := p[key].(type) {
	case string:
		if s := strings.Join(strings.Fields(v), " "); s != "" {
			return []string{s}
		}
	case []any:
		var out []string
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				continue
			}
			if s = strings.Join(strings.Fields(s), " "); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func flag(p domain.ContactPayload, key string) bool {
	switch v := p[key].(type) {
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if s == "on" || s == "yes" {
			return true
		}
		b, err := strconv.ParseBool(s)
		return err == nil && b
	}
	return false
}

func contactMethod(p domain.ContactPayload, key string) domain.ContactMethod {
	switch m := domain.ContactMethod(strings.ToLower(line(p, key))); m {
	case domain.ContactMethodEmail, domain.ContactMethodPhone:
		return m
	}
	return ""
}
