package models

import "fmt"

// Sentiment classifies the overall urgency of an analyzed document.
type Sentiment string

const (
	SentimentUrgent   Sentiment = "URGENT"
	SentimentNeutral  Sentiment = "NEUTRAL"
	SentimentGoodNews Sentiment = "GOOD_NEWS"
)

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentUrgent, SentimentNeutral, SentimentGoodNews:
		return true
	}
	return false
}

// Priority ranks a single action item.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ActionItem is one distinct obligation extracted from a document.
// Deadline, Amount and Recipient are nullable and always serialized
// as explicit null when absent.
type ActionItem struct {
	Description string   `json:"description"`
	Deadline    *string  `json:"deadline"`
	Amount      *string  `json:"amount"`
	Recipient   *string  `json:"recipient"`
	Priority    Priority `json:"priority"`
}

// KeyTerm pairs a difficult administrative or legal term with a plain
// language definition.
type KeyTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// AnalysisResult is the structured breakdown returned by the analysis
// pipeline. An empty Actions list is valid and means no detected
// obligations.
type AnalysisResult struct {
	Summary      string       `json:"summary"`
	DocumentType string       `json:"documentType"`
	Sentiment    Sentiment    `json:"sentiment"`
	Actions      []ActionItem `json:"actions"`
	KeyTerms     []KeyTerm    `json:"keyTerms"`
}

// Validate checks the invariants the generation schema promises but the
// backend is not trusted to uphold: required fields present and enum
// values in range.
func (r *AnalysisResult) Validate() error {
	if r.Summary == "" {
		return fmt.Errorf("missing required field summary")
	}
	if r.DocumentType == "" {
		return fmt.Errorf("missing required field documentType")
	}
	if !r.Sentiment.Valid() {
		return fmt.Errorf("invalid sentiment %q", r.Sentiment)
	}
	for i, action := range r.Actions {
		if action.Description == "" {
			return fmt.Errorf("action %d missing description", i)
		}
		if !action.Priority.Valid() {
			return fmt.Errorf("action %d has invalid priority %q", i, action.Priority)
		}
	}
	return nil
}

// Normalize replaces nil slices so the wire shape always carries arrays.
func (r *AnalysisResult) Normalize() {
	if r.Actions == nil {
		r.Actions = make([]ActionItem, 0)
	}
	if r.KeyTerms == nil {
		r.KeyTerms = make([]KeyTerm, 0)
	}
}
