package engine

import (
	"context"
	"strings"

	"github.com/jonathan/brd-generator/internal/llm"
	"github.com/jonathan/brd-generator/internal/prompts"
	"github.com/jonathan/brd-generator/internal/types"
)

// analysisTemperature keeps the analysis focused rather than creative
const analysisTemperature = 0.2

// Analyzer derives the structured business analysis from extracted text.
type Analyzer struct {
	client           llm.Client
	systemPrompt     string
	truncationBudget int
	maxOutputTokens  int32
}

// NewAnalyzer builds an analysis stage. truncationBudget is the character
// cap applied to document text before submission; maxOutputTokens bounds
// the completion length.
func NewAnalyzer(client llm.Client, truncationBudget int, maxOutputTokens int32) *Analyzer {
	return &Analyzer{
		client:           client,
		systemPrompt:     prompts.MustGet("analysis.json", "system"),
		truncationBudget: truncationBudget,
		maxOutputTokens:  maxOutputTokens,
	}
}

// Analyze submits the text to the AI service and parses the returned JSON
// into an AnalysisRecord. Empty or whitespace-only input is rejected before
// any service call is made.
func (a *Analyzer) Analyze(ctx context.Context, text string) (types.AnalysisRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &InvalidInputError{Message: "empty content provided for analysis"}
	}

	raw, err := a.client.GenerateJSON(ctx, llm.Request{
		System:          a.systemPrompt,
		User:            Truncate(text, a.truncationBudget),
		Tier:            llm.TierStandard,
		Temperature:     analysisTemperature,
		MaxOutputTokens: a.maxOutputTokens,
	})
	if err != nil {
		return nil, &AnalysisServiceError{Message: "failed to analyze content", Cause: err}
	}

	record, err := parseRecord(raw)
	if err != nil {
		return nil, err
	}
	return types.AnalysisRecord(record), nil
}
