package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"image"
	"log/slog"
	"time"

	"github.com/disintegration/imaging"

	"github.com/batihr/backend/internal/domain"
	"github.com/batihr/backend/internal/repository"
	"github.com/batihr/backend/internal/storage"
)

// Thumbnail bounds for the portfolio grid.
const (
	thumbnailMaxWidth    = 640
	thumbnailMaxHeight   = 480
	thumbnailJPEGQuality = 85
)

// ImageService stores portfolio photos, generates their thumbnails and
// records the resulting URL on the project.
type ImageService interface {
	// UploadProjectImage stores the photo and its thumbnail and sets the
	// project's cover image. Returns the public URL of the stored photo.
	UploadProjectImage(ctx context.Context, projectID int64, filename, contentType string, data []byte) (string, error)
}

type imageService struct {
	queries *repository.Queries
	store   storage.Storage
	logger  *slog.Logger
}

// NewImageService creates a new ImageService.
func NewImageService(queries *repository.Queries, store storage.Storage, logger *slog.Logger) ImageService {
	return &imageService{
		queries: queries,
		store:   store,
		logger:  logger,
	}
}

func (s *imageService) UploadProjectImage(ctx context.Context, projectID int64, filename, contentType string, data []byte) (string, error) {
	const op = "ImageService.UploadProjectImage"

	if len(data) == 0 {
		return "", domain.Invalid(op, "Veuillez fournir une image")
	}
	if !storage.IsAllowedImageType(storage.DetectContentType(contentType, filename, bytes.NewReader(data))) {
		return "", domain.Invalid(op, "Format d'image non supporté")
	}

	if _, err := s.queries.GetProjectByID(ctx, projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.NotFound(op, "Projet non trouvé")
		}
		s.logger.Error("failed to get project", "error", err, "op", op, "project_id", projectID)
		return "", domain.Internal(err, op, "Failed to retrieve project")
	}

	key := storage.ProjectImageKey(projectID, filename)
	err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutOptions{
		ContentType: contentType,
		Public:      true,
	})
	if err != nil {
		s.logger.Error("failed to store project image", "error", err, "op", op, "project_id", projectID)
		return "", domain.Internal(err, op, "Failed to store image")
	}

	// The thumbnail is best effort; the full-size photo already serves.
	if thumb, err := s.generateThumbnail(data); err != nil {
		s.logger.Warn("thumbnail generation failed", "error", err, "op", op, "project_id", projectID)
	} else {
		thumbKey := storage.ProjectThumbnailKey(projectID, "thumb.jpg")
		if err := s.store.Put(ctx, thumbKey, bytes.NewReader(thumb), storage.PutOptions{
			ContentType: "image/jpeg",
			Public:      true,
		}); err != nil {
			s.logger.Warn("failed to store thumbnail", "error", err, "op", op, "project_id", projectID)
		}
	}

	url, err := s.store.URL(ctx, key, time.Duration(0))
	if err != nil {
		s.logger.Error("failed to build image URL", "error", err, "op", op, "key", key)
		return "", domain.Internal(err, op, "Failed to build image URL")
	}

	if err := s.queries.UpdateProjectImage(ctx, repository.UpdateProjectImageParams{
		ID:    projectID,
		Image: url,
	}); err != nil {
		s.logger.Error("failed to update project image", "error", err, "op", op, "project_id", projectID)
		return "", domain.Internal(err, op, "Failed to update project image")
	}

	s.logger.Info("project image uploaded", "project_id", projectID, "key", key)
	return url, nil
}

// generateThumbnail fits the photo into the grid bounds, preserving aspect
// ratio, and re-encodes it as JPEG.
func (s *imageService) generateThumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	thumbnail := imaging.Fit(img, thumbnailMaxWidth, thumbnailMaxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumbnail, imaging.JPEG, imaging.JPEGQuality(thumbnailJPEGQuality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
