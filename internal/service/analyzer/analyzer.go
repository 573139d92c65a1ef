package analyzer

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"govdocgo/internal/models"
)

// Generator is the slice of the generative backend the analysis
// pipeline needs.
type Generator interface {
	GenerateStructured(ctx context.Context, parts []models.Part) (string, error)
}

// Normalizer maps uploaded files to model-consumable parts.
type Normalizer interface {
	Normalize(ctx context.Context, files []models.UploadedFile) ([]models.Part, error)
}

// Service runs the analysis pipeline: normalize the batch, assemble
// the prompt, invoke the backend under the output schema, repair and
// parse the response. It holds no request-scoped state.
type Service struct {
	normalizer Normalizer
	backend    Generator
	logger     *zap.Logger
}

// NewService constructs the pipeline from its injected collaborators.
func NewService(normalizer Normalizer, backend Generator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{normalizer: normalizer, backend: backend, logger: logger}
}

// Analyze processes one ordered batch of uploaded files into a
// structured result. A batch whose files were all skipped still
// proceeds to generation with only the instruction part.
func (s *Service) Analyze(ctx context.Context, files []models.UploadedFile) (*models.AnalysisResult, error) {
	parts, err := s.normalizer.Normalize(ctx, files)
	if err != nil {
		return nil, err
	}

	request := assembleRequest(parts)
	text, err := s.backend.GenerateStructured(ctx, request)
	if err != nil {
		return nil, err
	}

	result, err := parseAnalysis(text)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			s.logger.Error("analysis response unparsable", zap.String("raw", perr.Raw), zap.Error(perr.Err))
		}
		return nil, err
	}
	return result, nil
}
