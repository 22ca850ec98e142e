package engine

import (
	"context"
	"encoding/json"

	"github.com/jonathan/brd-generator/internal/llm"
	"github.com/jonathan/brd-generator/internal/prompts"
	"github.com/jonathan/brd-generator/internal/types"
)

// generationTemperature allows slightly more latitude than analysis since
// the BRD sections are prose
const generationTemperature = 0.3

// Generator produces the full BRD from an analysis record. It is a separate
// AI call from analysis so each prompt stays focused and failures are
// attributable to one stage.
type Generator struct {
	client          llm.Client
	systemPrompt    string
	maxOutputTokens int32
}

// NewGenerator builds a generation stage. maxOutputTokens should exceed the
// analyzer's budget: generation produces more content.
func NewGenerator(client llm.Client, maxOutputTokens int32) *Generator {
	return &Generator{
		client:          client,
		systemPrompt:    prompts.MustGet("brd.json", "system"),
		maxOutputTokens: maxOutputTokens,
	}
}

// Generate submits the serialized analysis to the AI service and parses the
// returned JSON into a BRDRecord. All fourteen canonical sections are
// present in the result even when the completion is sparse.
func (g *Generator) Generate(ctx context.Context, analysis types.AnalysisRecord) (types.BRDRecord, error) {
	if analysis.IsEmpty() {
		return nil, &InvalidInputError{Message: "no analysis provided for BRD generation"}
	}

	payload, err := json.Marshal(analysis)
	if err != nil {
		return nil, &GenerationServiceError{Message: "failed to serialize analysis", Cause: err}
	}

	raw, err := g.client.GenerateJSON(ctx, llm.Request{
		System:          g.systemPrompt,
		User:            string(payload),
		Tier:            llm.TierAdvanced,
		Temperature:     generationTemperature,
		MaxOutputTokens: g.maxOutputTokens,
	})
	if err != nil {
		return nil, &GenerationServiceError{Message: "failed to generate BRD", Cause: err}
	}

	record, err := parseRecord(raw)
	if err != nil {
		return nil, err
	}

	brd := types.BRDRecord(record)
	for _, section := range types.BRDSections {
		if !brd.HasSection(section) {
			brd[section] = ""
		}
	}
	return brd, nil
}
