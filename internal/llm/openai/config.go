package openai

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/policypulse/policypulse/constants"
)

// Config for the OpenAI-backed analyzer.
type Config struct {
	APIKey      string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL     string        // default https://api.openai.com/v1
	Model       string        // e.g. "gpt-4o-2024-08-06"
	Temperature float32       // 0..2
	Timeout     time.Duration // per-attempt http timeout

	// SupportsVision enables the PDF path. When left false it is derived
	// from the model name.
	SupportsVision bool
	// MaxVisionMB caps PDF payload size on the vision path.
	MaxVisionMB int
}

// Client implements llm.Analyzer against the OpenAI chat completions API.
type Client struct {
	cfg Config
	api *goopenai.Client
	log *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-2024-08-06"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	if !cfg.SupportsVision {
		cfg.SupportsVision = modelHasVision(cfg.Model)
	}
	if cfg.MaxVisionMB <= 0 {
		cfg.MaxVisionMB = constants.MaxVisionMBDefault
	}
	if logger == nil {
		logger = slog.Default()
	}

	apiCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	apiCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		cfg: cfg,
		api: goopenai.NewClientWithConfig(apiCfg),
		log: logger,
	}
}

func (c *Client) Model() string { return c.cfg.Model }

func (c *Client) SupportsVision() bool { return c.cfg.SupportsVision }

func modelHasVision(model string) bool {
	for _, prefix := range []string{"gpt-4o", "gpt-4.1", "gpt-5"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}
