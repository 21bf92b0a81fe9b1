package handlers

//go:generate mockgen -source=upload.go -destination=upload_mock.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gearted/gearted-backend/internal/middlewares"
	"github.com/gearted/gearted-backend/internal/services"
	"github.com/google/uuid"
)

const uploadField = "images"

// ImageUploader stores and removes listing images.
type ImageUploader interface {
	Upload(ctx context.Context, userID uuid.UUID, files []services.UploadFile) ([]string, error)
	Delete(ctx context.Context, userID uuid.UUID, imageURL string) error
}

// UploadResponse lists the public URLs of stored images.
// swagger:model UploadResponse
type UploadResponse struct {
	ImageURLs []string `json:"imageUrls"`
}

// DeleteImageRequest names the image to remove.
// swagger:model DeleteImageRequest
type DeleteImageRequest struct {
	// required: true
	ImageURL string `json:"imageUrl"`
}

var errFileTooLarge = errors.New("file too large")

func readPart(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, errFileTooLarge
	}
	return data, nil
}

// NewUploadHandler returns an HTTP handler storing listing images.
// @Summary Upload images
// @Description Accepts JPEG, PNG or WebP files, resizes them and returns their public URLs.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param images formData file true "Images"
// @Success 200 {object} handlers.UploadResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 413 {object} handlers.ErrorResponse
// @Failure 503 {object} handlers.ErrorResponse "Storage not configured"
// @Failure 504 {object} handlers.ErrorResponse
// @Router /uploads [post]
func NewUploadHandler(svc ImageUploader, maxFileBytes int64, maxFiles int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxFileBytes*int64(maxFiles)+1<<20)
		reader, err := r.MultipartReader()
		if err != nil {
			writeError(w, http.StatusBadRequest, "multipart form expected")
			return
		}

		var files []services.UploadFile
		for {
			part, err := reader.NextPart()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				writeError(w, http.StatusBadRequest, "malformed multipart body")
				return
			}
			if part.FormName() != uploadField || part.FileName() == "" {
				part.Close()
				continue
			}

			data, err := readPart(part, maxFileBytes)
			part.Close()
			if errors.Is(err, errFileTooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, part.FileName()+" is too large")
				return
			}
			if err != nil {
				writeError(w, http.StatusBadRequest, "malformed multipart body")
				return
			}
			files = append(files, services.UploadFile{Name: part.FileName(), Data: data})
		}

		urls, err := svc.Upload(r.Context(), identity.UserID, files)
		if err != nil {
			writeServiceError(w, err, "upload_images")
			return
		}

		writeJSON(w, http.StatusOK, UploadResponse{ImageURLs: urls})
	}
}

// NewDeleteImageHandler returns an HTTP handler removing one of the caller's images.
// @Summary Delete an image
// @Tags uploads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body handlers.DeleteImageRequest true "Image URL"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 503 {object} handlers.ErrorResponse
// @Router /uploads [delete]
func NewDeleteImageHandler(svc ImageUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req DeleteImageRequest
		if !decodeJSON(r, &req) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.Delete(r.Context(), identity.UserID, req.ImageURL); err != nil {
			writeServiceError(w, err, "delete_image")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Image deleted"})
	}
}
