package inbound

import (
	"github.com/shandysiswandi/contactrelay/internal/contact/entity"
	"github.com/shandysiswandi/contactrelay/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// Submit relays a contact form submission by email.
// @Summary Submit contact form
// @Description Validates the submission and emails it to the requested or default recipients.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body object true "Contact form payload: name, email, subject?, message, to?"
// @Success 200 {object} SubmitResponse "Email sent"
// @Failure 400 {object} router.errorResponse "Invalid JSON or validation failed"
// @Failure 500 {object} router.errorResponse "Email could not be sent"
// @Router /api/contact [post]
func (h *HTTPEndpoint) Submit(r *router.Request) (any, error) {
	var body entity.SubmissionInput
	if err := r.DecodeBody(&body); err != nil {
		return nil, err
	}

	messageID, err := h.uc.Submit(r.Context(), body)
	if err != nil {
		return nil, err
	}

	return SubmitResponse{Success: true, MessageID: messageID}, nil
}
