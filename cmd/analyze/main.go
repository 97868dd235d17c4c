package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/policypulse/policypulse/constants"
	"github.com/policypulse/policypulse/internal/analysis"
	"github.com/policypulse/policypulse/internal/common"
	"github.com/policypulse/policypulse/internal/llm/openai"
	"github.com/policypulse/policypulse/internal/pipeline"
)

// analyze runs the pipeline over one local file and prints the structured
// analysis as JSON. No database involved; useful for prompt and chunking
// work.
func main() {
	billNumber := flag.String("bill", "", "bill number for prompt context")
	title := flag.String("title", "", "bill title for prompt context")
	source := flag.String("source", "", "government source, e.g. US or CA")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall deadline")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: analyze [flags] <file.txt|file.pdf>")
		os.Exit(2)
	}
	path := flag.Arg(0)
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	kind := constants.ContentText
	if constants.IsPDF(content) {
		kind = constants.ContentPDF
	}

	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	analyzer := openai.NewClient(openai.Config{
		APIKey:         cfg.LLM.APIKey,
		BaseURL:        cfg.LLM.BaseURL,
		Model:          cfg.LLM.Model,
		Temperature:    cfg.LLM.Temperature,
		Timeout:        cfg.LLM.Timeout,
		SupportsVision: cfg.LLM.Vision,
	}, logger)
	coordinator := pipeline.NewCoordinator(cfg.Pipeline, analyzer, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	bill := *billNumber
	if bill == "" {
		bill = filepath.Base(path)
	}

	res, err := coordinator.Analyze(ctx, pipeline.Request{
		Content: content,
		Kind:    kind,
		Meta: analysis.DocumentMeta{
			BillNumber: bill,
			Title:      *title,
			GovtSource: *source,
		},
	})
	if err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	logger.Info("analysis complete",
		"status", res.Status,
		"chunked", res.Chunked,
		"chunks", res.ChunkCount,
		"dropped", len(res.DroppedChunks),
		"elapsed_ms", res.ProcessingMS,
	)

	out, err := json.MarshalIndent(res.Analysis, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
