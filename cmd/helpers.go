package cmd

import (
	"fmt"

	"github.com/legisclaro/legisclaro/internal/analyzer"
	"github.com/legisclaro/legisclaro/internal/config"
	"github.com/legisclaro/legisclaro/internal/llm"
	"github.com/legisclaro/legisclaro/internal/pipeline"
	"github.com/legisclaro/legisclaro/internal/portal"
	"github.com/legisclaro/legisclaro/internal/simplifier"
)

// loadConfig loads and validates the config with a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `legisclaro init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildPipeline wires the full analysis pipeline from configuration.
// This is the single construction point: every front end (HTTP, CLI,
// MCP) shares it, and a missing API key fails here, at startup.
func buildPipeline(cfg *config.Config) (*pipeline.Pipeline, *simplifier.Simplifier, error) {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, nil, fmt.Errorf("creating LLM provider: %w", err)
	}
	if cfg.MaxRequestsPerMinute > 0 {
		provider = llm.NewRateLimitedProvider(provider, cfg.MaxRequestsPerMinute)
	}

	client := portal.NewClient(cfg.PortalBaseURL)
	simp := simplifier.New(provider, cfg.Model)
	pipe := pipeline.New(
		analyzer.New(provider, cfg.Model, client),
		simp,
		client,
	)
	return pipe, simp, nil
}
