package main

import (
	"fmt"
	"os"

	"github.com/chroniclerhq/chronicler/internal/app"
	"github.com/chroniclerhq/chronicler/internal/gitrepo"
	"github.com/chroniclerhq/chronicler/internal/model"
	anthropicprovider "github.com/chroniclerhq/chronicler/internal/model/providers/anthropic"
	openaiprovider "github.com/chroniclerhq/chronicler/internal/model/providers/openai"
	"github.com/chroniclerhq/chronicler/internal/orchestrator"
	"github.com/chroniclerhq/chronicler/internal/tool"
)

// buildApp assembles the whole pipeline for one invocation: repository
// access, provider, tool registry, orchestration loop. The credential
// is read here, before any repository or network work.
func buildApp() (*app.App, error) {
	apiKey, err := readKey()
	if err != nil {
		return nil, err
	}

	var provider model.Provider
	switch cfg.Provider {
	case "anthropic":
		provider = anthropicprovider.New(apiKey, cfg.Endpoint)
	case "openai":
		provider = openaiprovider.New(apiKey, cfg.Endpoint)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}

	repo := gitrepo.New()
	registry := tool.NewRegistry(
		&tool.ListAllFilesTool{Repo: repo},
		&tool.ReadFileTool{Repo: repo},
	)

	return &app.App{
		Repo:         repo,
		Loop:         orchestrator.New(provider, registry, cfg.Model, cfg.MaxTokens, cfg.MaxToolRound),
		StyleSamples: cfg.StyleSamples,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
	}, nil
}
