package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type contactSample struct {
	Email  string `json:"email" validate:"required,loose_email"`
	Method string `json:"method" validate:"omitempty,oneof=email phone"`
}

func TestIsLooseEmail(t *testing.T) {
	valid := []string{"jane@acme.com", "a.b+c@sub.example.co", "x@y.z"}
	for _, s := range valid {
		assert.True(t, IsLooseEmail(s), s)
	}

	invalid := []string{"not-an-email", "a@b", "@b.com", "jane@acme.", "ja ne@acme.com", "a@@b.com", "",
		"jane\ufeff@acme.com", "jane@acme\u00a0.com", "jane@acme.com\u2028"}
	for _, s := range invalid {
		assert.False(t, IsLooseEmail(s), s)
	}
}

func TestFailedTags(t *testing.T) {
	v := New()

	t.Run("Should report required before format", func(t *testing.T) {
		tags := FailedTags(v.Struct(contactSample{}))
		assert.Equal(t, []string{"Email"}, tags["required"])
		assert.Empty(t, tags["loose_email"])
	})

	t.Run("Should report format failures", func(t *testing.T) {
		err := v.Struct(contactSample{Email: "a@b", Method: "fax"})
		tags := FailedTags(err)
		assert.Equal(t, []string{"Email"}, tags["loose_email"])
		assert.Equal(t, []string{"Method"}, tags["oneof"])

		msgs := FormatValidationErrors(err)
		assert.Contains(t, msgs, "Email: invalid email format")
		assert.Contains(t, msgs, "Method: must be one of: email phone")
	})

	t.Run("Should pass valid input", func(t *testing.T) {
		assert.NoError(t, v.Struct(contactSample{Email: "jane@acme.com", Method: "phone"}))
		assert.Empty(t, FailedTags(nil))
	})
}
