package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rohanj-gh/devfolio-backend/errs"
	"github.com/rohanj-gh/devfolio-backend/models"
	"github.com/rohanj-gh/devfolio-backend/schemas"
	"github.com/rohanj-gh/devfolio-backend/services"
)

type contactMessageStore interface {
	Add(message *models.ContactMessage) error
}

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messages    contactMessageStore
	mailer      services.EmailSender
	notifyEmail string
}

func newContactHandler(messages contactMessageStore, mailer services.EmailSender, notifyEmail string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messages:    messages,
		mailer:      mailer,
		notifyEmail: notifyEmail,
	}
}

// submitMessage accepts a visitor submission and persists it best-effort.
// Storage failures (including a missing table) are masked behind a
// demo-mode success: delivery confidence for the visitor outranks storage
// guarantees. A notification email is likewise best-effort.
func (h contactHandler) submitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input schemas.ContactInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("Please provide name, email and message"))
			return
		}

		if fieldErrs := schemas.ValidateContact(input); len(fieldErrs) > 0 {
			h.responder.WriteValidationErrors(w, fieldErrs)
			return
		}

		message := models.ContactMessage{
			Name:    input.Name,
			Email:   input.Email,
			Subject: input.Subject,
			Message: input.Message,
		}

		if err := h.messages.Add(&message); err != nil {
			h.logger.Warn().Err(err).
				Str("from", input.Email).
				Msg("Contact form submitted but not persisted (demo mode)")

			w.WriteHeader(http.StatusCreated)
			h.responder.WriteJSON(w, messageResponse("Your message has been sent successfully! (Demo mode)"))
			return
		}

		h.notify(message)

		response := messageResponse("Your message has been sent successfully!")
		response.Data = map[string]any{"contactMessage": message}
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, response)
	}
}

func (h contactHandler) notify(message models.ContactMessage) {
	if h.mailer == nil || h.notifyEmail == "" {
		return
	}

	subject, body := services.ContactNotificationBody(message)
	if err := h.mailer.SendEmail(subject, body, []string{h.notifyEmail}); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to send contact notification email")
	}
}
