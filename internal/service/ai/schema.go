package ai

import (
	"google.golang.org/genai"

	"govdocgo/internal/models"
)

// analysisSchema is the strict output contract for document analysis.
// The backend is required to return exactly one JSON object of this
// shape as its entire textual output.
var analysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {
			Type:        genai.TypeString,
			Description: "A simplified, easy-to-read summary based on document type. If it's a bill, start with 'You need to pay...'.",
		},
		"documentType": {
			Type:        genai.TypeString,
			Description: "Specific document classification (e.g., 'Value-Added Tax Notice', 'Traffic Fine', 'Housing Subscription Notice').",
		},
		"sentiment": {
			Type:        genai.TypeString,
			Enum:        []string{string(models.SentimentUrgent), string(models.SentimentNeutral), string(models.SentimentGoodNews)},
			Description: "The urgency of the document.",
		},
		"actions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"description": {
						Type:        genai.TypeString,
						Description: "Action description (e.g., 'Pay Income Tax').",
					},
					"deadline": {
						Type:        genai.TypeString,
						Description: "Specific date (YYYY-MM-DD) or 'Immediately'. Return null if none.",
					},
					"amount": {
						Type:        genai.TypeString,
						Description: "Monetary amount with currency (e.g., '87,000 KRW'). Return null if none.",
					},
					"recipient": {
						Type:        genai.TypeString,
						Description: "Institution name (e.g., 'National Tax Service'). Return null if none.",
					},
					"priority": {
						Type:        genai.TypeString,
						Enum:        []string{string(models.PriorityHigh), string(models.PriorityMedium), string(models.PriorityLow)},
						Description: "Urgency level.",
					},
				},
				Required: []string{"description", "priority"},
			},
		},
		"keyTerms": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"term": {
						Type:        genai.TypeString,
						Description: "Difficult term found in text.",
					},
					"definition": {
						Type:        genai.TypeString,
						Description: "Easy explanation of the term.",
					},
				},
			},
		},
	},
	Required: []string{"summary", "documentType", "actions", "sentiment"},
}
