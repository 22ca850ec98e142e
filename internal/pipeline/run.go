// Package pipeline provides the high-level orchestration for BRD generation:
// extract, analyze, generate, persist. Stages run synchronously and in
// order; any stage failure aborts the run with no partial output.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/brd-generator/internal/config"
	"github.com/jonathan/brd-generator/internal/engine"
	"github.com/jonathan/brd-generator/internal/extraction"
	"github.com/jonathan/brd-generator/internal/llm"
	"github.com/jonathan/brd-generator/internal/observability"
	"github.com/jonathan/brd-generator/internal/store"
	"github.com/jonathan/brd-generator/internal/types"
)

// Pipeline wires the stages together. Build it once at startup and share it
// across requests; concurrent runs are independent.
type Pipeline struct {
	analyzer  *engine.Analyzer
	generator *engine.Generator
	store     store.Store
	printer   *observability.Printer
	verbose   bool
}

// New builds a pipeline from the injected LLM client, store and config.
func New(client llm.Client, st store.Store, cfg *config.Config) *Pipeline {
	return &Pipeline{
		analyzer:  engine.NewAnalyzer(client, cfg.TruncationBudget, cfg.AnalysisTokens),
		generator: engine.NewGenerator(client, cfg.BRDTokens),
		store:     st,
		printer:   observability.NewPrinter(os.Stdout),
		verbose:   cfg.Verbose,
	}
}

// Run executes one full pipeline invocation over the given source and
// returns the id of the persisted BRD.
func (p *Pipeline) Run(ctx context.Context, src extraction.Source) (string, error) {
	descriptor := src.Describe()
	log.Printf("[pipeline] extracting %s", descriptor)

	text, err := src.Extract(ctx)
	if err != nil {
		return "", err
	}

	log.Printf("[pipeline] analyzing %d characters from %s", len(text), descriptor)
	analysis, err := p.analyzer.Analyze(ctx, text)
	if err != nil {
		return "", err
	}
	if p.verbose {
		p.printer.PrintAnalysis(analysis)
	}

	log.Printf("[pipeline] generating BRD for %s", descriptor)
	brd, err := p.generator.Generate(ctx, analysis)
	if err != nil {
		return "", err
	}
	if p.verbose {
		p.printer.PrintBRD(brd)
	}

	record := &types.PersistedBRD{
		ID:             uuid.New().String(),
		OriginalSource: descriptor,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		BRD:            brd,
	}
	if err := p.store.Save(ctx, record); err != nil {
		return "", fmt.Errorf("failed to persist BRD: %w", err)
	}

	log.Printf("[pipeline] persisted BRD %s for %s", record.ID, descriptor)
	return record.ID, nil
}
