package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/inventoria/inventoria/internal/imaging"
)

// UploadHandler handles image uploads. Files are processed through the
// imaging pipeline and stored on disk under a random name; the returned URL
// can be set as an item's imageUrl.
type UploadHandler struct {
	Dir string
}

// maxUploadSize caps uploads at 5 MB.
const maxUploadSize = 5 << 20

// UploadImage handles POST /api/upload/image.
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	// Process validates the actual bytes, so client headers aren't trusted.
	result, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := os.MkdirAll(h.Dir, 0755); err != nil {
		slog.Error("creating upload dir", "dir", h.Dir, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to store image")
		return
	}

	filename := uuid.NewString() + ".jpg"
	if err := os.WriteFile(filepath.Join(h.Dir, filename), result.Data, 0644); err != nil {
		slog.Error("writing uploaded image", "file", filename, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to store image")
		return
	}

	slog.Info("image uploaded", "file", filename, "bytes", len(result.Data))
	jsonResponse(w, http.StatusOK, map[string]string{
		"url":      "/uploads/" + filename,
		"filename": filename,
	})
}
