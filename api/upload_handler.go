package api

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rohanj-gh/devfolio-backend/errs"
	"github.com/rohanj-gh/devfolio-backend/services"
)

const maxUploadSize = 10 << 20 // 10MB

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  services.Uploader
}

func newUploadHandler(uploader services.Uploader) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
	}
}

// uploadImage stores an admin-submitted image and returns its public URL,
// which the project form drops into the images field.
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.uploader == nil {
			h.responder.WriteError(w, errs.NewInternalError("image uploads are not configured"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("missing file field"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		key := fmt.Sprintf("uploads/%s%s", uuid.NewString(), filepath.Ext(header.Filename))

		url, err := h.uploader.Upload(r.Context(), key, file, contentType)
		if err != nil {
			h.responder.WriteError(w, errs.NewBackendError("upload", "image", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, dataResponse("url", url))
	}
}
