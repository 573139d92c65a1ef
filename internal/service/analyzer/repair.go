package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"govdocgo/internal/models"
)

// ParseError reports that the backend's output could not be parsed as
// an AnalysisResult even after repair. Raw keeps the original text for
// server-side diagnosis; it is never exposed to the caller.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return "AI 응답을 분석할 수 없습니다 (JSON Parsing Error)"
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// repairJSON slices the text to the span between the first '{' and the
// last '}' when both exist in order. Backends occasionally wrap the
// object in commentary; anything else is returned unchanged.
func repairJSON(text string) string {
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first != -1 && last != -1 && last > first {
		return text[first : last+1]
	}
	return text
}

// parseAnalysis repairs and strictly parses the backend output, then
// validates the invariants the schema promised.
func parseAnalysis(text string) (*models.AnalysisResult, error) {
	repaired := repairJSON(text)
	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(repaired), &result); err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}
	if err := result.Validate(); err != nil {
		return nil, &ParseError{Raw: text, Err: fmt.Errorf("schema violation: %w", err)}
	}
	result.Normalize()
	return &result, nil
}
