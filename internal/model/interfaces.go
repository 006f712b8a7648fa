package model

import (
	"context"

	"github.com/chroniclerhq/chronicler/internal/model/contract"
)

// Provider is one chat-completion backend. Exactly one request is issued
// per Generate call; retries are the caller's business (there are none).
type Provider interface {
	Name() string
	Generate(ctx context.Context, req contract.CompletionRequest) (*contract.CompletionResponse, error)
}
