// Package uploadimage accepts a multipart image upload and returns the
// stable public URL of the stored object.
package uploadimage

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/Moacho78/Parcial-Recetas/internal/auth"
	"github.com/Moacho78/Parcial-Recetas/internal/httpapi"
	"github.com/Moacho78/Parcial-Recetas/internal/images"
)

// Uploads larger than this are rejected before reading the body.
const maxUploadBytes = 10 << 20

var errNotImage = errors.New("uploadimage: only image uploads are supported")

type Response struct {
	URL string `json:"url"`
}

func NewHandler(writer *images.Writer) *Handler {
	return &Handler{
		writer: writer,
	}
}

type Handler struct {
	writer *images.Writer
}

func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		httpapi.WriteError(ctx, w, httpapi.NewError(http.StatusBadRequest, fmt.Errorf("uploadimage: reading form file: %w", err)))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		httpapi.WriteError(ctx, w, fmt.Errorf("uploadimage: reading upload: %w", err))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		httpapi.WriteError(ctx, w, httpapi.NewError(http.StatusBadRequest, errNotImage))
		return
	}

	objectPath := fmt.Sprintf("recipes/%s/%s%s", auth.UserID(ctx), uuid.NewString(), path.Ext(header.Filename))
	url, err := h.writer.WriteImage(ctx, objectPath, contentType, data)
	if err != nil {
		httpapi.WriteError(ctx, w, fmt.Errorf("uploadimage: %w", err))
		return
	}

	httpapi.WriteJSON(ctx, w, Response{URL: url})
}
