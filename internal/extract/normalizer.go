package extract

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"govdocgo/internal/models"
)

type hwpConverter interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

// Normalizer maps each uploaded file to zero or one model-consumable
// Part. PDF and image payloads pass through as inline binary; office
// formats are reduced to extracted text; unrecognized types are skipped
// with a warning.
type Normalizer struct {
	hwp    hwpConverter
	logger *zap.Logger
}

// NewNormalizer constructs a Normalizer around the given HWP extractor.
func NewNormalizer(hwp *HWPExtractor, logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{hwp: hwp, logger: logger}
}

// Normalize processes files sequentially in submission order; the
// resulting Part order is reproduced in the prompt and the model
// weights it as document order. Extraction failures abort the whole
// batch; there is no partial result for the remaining files.
func (n *Normalizer) Normalize(ctx context.Context, files []models.UploadedFile) ([]models.Part, error) {
	parts := make([]models.Part, 0, len(files))
	for _, f := range files {
		part, ok, err := n.normalizeOne(ctx, f)
		if err != nil {
			return nil, err
		}
		if ok {
			parts = append(parts, part)
		}
	}
	return parts, nil
}

func (n *Normalizer) normalizeOne(ctx context.Context, f models.UploadedFile) (models.Part, bool, error) {
	mime := f.MimeType
	switch {
	case mime == "application/pdf" || strings.HasPrefix(mime, "image/"):
		data, err := decodePayload(f)
		if err != nil {
			return models.Part{}, false, err
		}
		return models.NewInlinePart(data, mime), true, nil

	case strings.Contains(mime, "hwp") || strings.Contains(mime, "hancom"):
		data, err := decodePayload(f)
		if err != nil {
			return models.Part{}, false, err
		}
		text, err := n.hwp.Extract(ctx, data)
		if err != nil {
			return models.Part{}, false, &ExtractionError{Format: "HWP", Err: err}
		}
		return models.NewTextPart(text, models.SourceHWP), true, nil

	case strings.Contains(mime, "word") || strings.Contains(mime, "officedocument"):
		data, err := decodePayload(f)
		if err != nil {
			return models.Part{}, false, err
		}
		text, err := ExtractDOCX(data)
		if err != nil {
			return models.Part{}, false, &ExtractionError{Format: "DOCX", Err: err}
		}
		return models.NewTextPart(text, models.SourceDOCX), true, nil

	case strings.HasPrefix(mime, "text/"):
		data, err := decodePayload(f)
		if err != nil {
			return models.Part{}, false, err
		}
		return models.NewTextPart(string(data), models.SourceText), true, nil

	default:
		n.logger.Warn("unsupported file type, skipping", zap.String("mime_type", mime))
		return models.Part{}, false, nil
	}
}

func decodePayload(f models.UploadedFile) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(f.Base64Data)
	if err != nil {
		return nil, fmt.Errorf("파일 디코딩 오류 (%s): %w", f.MimeType, err)
	}
	return data, nil
}
