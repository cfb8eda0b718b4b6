package handler

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/batihr/backend/internal/domain"
	"github.com/batihr/backend/internal/storage"
)

// Upload limits, matching the frontend's own client-side checks.
const (
	maxDevisFiles      = 5
	maxDevisFileSize   = 10 << 20 // 10 MB
	maxApplicationFile = 5 << 20  // 5 MB
	maxMultipartMemory = 32 << 20
)

// readAttachment reads one multipart part fully into memory, enforcing a
// size limit and a content-type allow list. The size limit reads one byte
// past the cap so an exactly-at-limit file passes.
func readAttachment(fh *multipart.FileHeader, maxSize int64, allowed func(string) bool, op string) (domain.Attachment, error) {
	file, err := fh.Open()
	if err != nil {
		return domain.Attachment{}, domain.Internal(err, op, "Failed to read uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return domain.Attachment{}, domain.Internal(err, op, "Failed to read uploaded file")
	}
	if int64(len(content)) > maxSize {
		return domain.Attachment{}, &domain.Error{
			Code:    domain.ETOOLARGE,
			Op:      op,
			Message: fmt.Sprintf("Le fichier %s est trop volumineux", fh.Filename),
		}
	}

	contentType := storage.DetectContentType(fh.Header.Get("Content-Type"), fh.Filename, nil)
	if !allowed(contentType) {
		return domain.Attachment{}, domain.Invalid(op, fmt.Sprintf("Type de fichier non autorisé: %s", fh.Filename))
	}

	return domain.Attachment{
		OriginalName: fh.Filename,
		ContentType:  contentType,
		Size:         int64(len(content)),
		Content:      content,
	}, nil
}
