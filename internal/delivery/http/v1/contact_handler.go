package v1

import (
	"errors"
	"net/http"

	"compliance-ai-backend/internal/delivery/http/response"
	"compliance-ai-backend/internal/domain"
	"compliance-ai-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	msgInquirySent   = "Your inquiry has been sent successfully. We will contact you soon!"
	msgInquiryFailed = "Failed to send inquiry. Please try again later or contact us directly."
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the inquiry, emails it to the business inbox and sends a confirmation to the submitter.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	payload := bindPayload(c)

	err := h.contactUC.SubmitInquiry(c.Request.Context(), payload)
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, msgInquirySent, nil)
	case errors.Is(err, domain.ErrMissingRequiredFields):
		c.Error(apperror.BadRequest(domain.MsgMissingRequiredFields))
	case errors.Is(err, domain.ErrInvalidEmailFormat):
		c.Error(apperror.BadRequest(domain.MsgInvalidEmailFormat))
	default:
		c.Error(apperror.New(http.StatusInternalServerError, msgInquiryFailed, err))
	}
}

// bindPayload reads the body as JSON, or as a classic form post. A body that
// cannot be read becomes an empty payload and fails required-field checks.
func bindPayload(c *gin.Context) domain.ContactPayload {
	if c.ContentType() == binding.MIMEPOSTForm {
		if err := c.Request.ParseForm(); err != nil {
			return nil
		}
		payload := domain.ContactPayload{}
		for key, values := range c.Request.PostForm {
			if key == "services" || len(values) > 1 {
				items := make([]any, len(values))
				for i, v := range values {
					items[i] = v
				}
				payload[key] = items
				continue
			}
			payload[key] = values[0]
		}
		return payload
	}

	var payload domain.ContactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		return nil
	}
	return payload
}
