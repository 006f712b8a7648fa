// Package orchestrator owns the request/response protocol with the
// provider: send the conversation, dispatch any requested tool calls,
// extend the conversation with their results, and repeat until the
// provider returns a plain text answer.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	chroniclerErrors "github.com/chroniclerhq/chronicler/internal/errors"
	"github.com/chroniclerhq/chronicler/internal/model"
	"github.com/chroniclerhq/chronicler/internal/model/contract"
	"github.com/chroniclerhq/chronicler/internal/tool"
)

type Loop struct {
	provider  model.Provider
	registry  *tool.Registry
	modelName string
	maxTokens int
	maxRounds int
}

func New(provider model.Provider, registry *tool.Registry, modelName string, maxTokens, maxRounds int) *Loop {
	return &Loop{
		provider:  provider,
		registry:  registry,
		modelName: modelName,
		maxTokens: maxTokens,
		maxRounds: maxRounds,
	}
}

// Run drives one conversation to completion and returns the final text
// answer. The message list is only ever appended to: each tool-call
// request is answered by exactly one tool-role message, immediately
// following the assistant message that carried the call. A provider
// that keeps requesting tools past the round cap is cut off rather
// than looped forever.
func (l *Loop) Run(ctx context.Context, messages []contract.Message) (string, error) {
	for round := 0; round < l.maxRounds; round++ {
		req := contract.CompletionRequest{
			Model:     l.modelName,
			MaxTokens: l.maxTokens,
			Messages:  messages,
		}
		if l.registry.Len() > 0 {
			req.Tools = l.registry.Descriptors()
		}

		slog.Debug("Sending request", "round", round+1, "messages", len(messages))
		resp, err := l.provider.Generate(ctx, req)
		if err != nil {
			return "", err
		}

		if len(resp.ToolCalls) == 0 {
			return resp.Content, nil
		}

		messages = append(messages, contract.Message{
			Role:      "assistant",
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, call := range resp.ToolCalls {
			result, err := l.registry.Dispatch(ctx, call)
			if err != nil {
				return "", err
			}
			messages = append(messages, contract.Message{
				Role:       "tool",
				Content:    result,
				ToolCallID: call.ID,
			})
		}
	}

	return "", fmt.Errorf("%w: gave up after %d rounds", chroniclerErrors.ErrToolLoopExceeded, l.maxRounds)
}
