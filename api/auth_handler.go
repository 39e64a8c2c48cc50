package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rohanj-gh/devfolio-backend/auth"
	"github.com/rohanj-gh/devfolio-backend/errs"
	"github.com/rohanj-gh/devfolio-backend/models"
)

type userStore interface {
	Add(user *models.User) error
}

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	provider  auth.Provider
	users     userStore
}

func newAuthHandler(provider auth.Provider, users userStore) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		provider:  provider,
		users:     users,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login exchanges credentials with the auth provider and stores the access
// token in an HttpOnly session cookie for browser clients.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body loginRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Please provide email and password"))
			return
		}

		session, err := h.provider.SignInWithPassword(r.Context(), body.Email, body.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError(err.Error()))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    session.AccessToken,
			Path:     "/",
			MaxAge:   session.ExpiresIn,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, dataResponse("user", session.User))
	}
}

// register creates the auth identity, then the application profile row with
// the fixed admin role. If the profile insert fails, the freshly created
// identity is deleted so no orphaned credential survives.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body registerRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" || body.Email == "" || body.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Please provide name, email and password"))
			return
		}

		identity, err := h.provider.SignUp(r.Context(), body.Name, body.Email, body.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError(err.Error()))
			return
		}

		user := models.User{
			ID:    identity.ID,
			Name:  body.Name,
			Email: body.Email,
			Role:  "admin",
		}
		if err := h.users.Add(&user); err != nil {
			if delErr := h.provider.DeleteUser(r.Context(), identity.ID); delErr != nil {
				h.logger.Error().Err(delErr).
					Str("identityID", identity.ID).
					Msg("Failed to roll back auth identity after profile insert failure")
			}
			h.responder.WriteError(w, errs.NewInternalError(err.Error()))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, dataResponse("user", user))
	}
}
