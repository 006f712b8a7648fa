package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	chroniclerErrors "github.com/chroniclerhq/chronicler/internal/errors"
	"github.com/chroniclerhq/chronicler/internal/model/contract"
)

// Tool represents one read-only repository query the model may request
// mid-conversation.
type Tool interface {
	Name() string
	Description() string
	Parameters() map[string]interface{}
	Execute(ctx context.Context, input json.RawMessage) (string, error)
}

// Registry holds the tools exposed to the provider. It is built once
// per invocation and passed explicitly into the orchestration loop; no
// process-wide singleton.
type Registry struct {
	tools map[string]Tool
}

func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

func (r *Registry) Register(t Tool) {
	name := strings.TrimSpace(t.Name())
	if name == "" {
		panic("tool: empty tool name")
	}
	r.tools[name] = t
}

func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[strings.TrimSpace(name)]
	return t, ok
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.tools)
}

// Descriptors returns the provider-facing tool definitions, sorted by
// name so the serialized request is stable.
func (r *Registry) Descriptors() []contract.ToolDef {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]contract.ToolDef, 0, len(names))
	for _, name := range names {
		t := r.tools[name]
		defs = append(defs, contract.ToolDef{
			Name:        name,
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}
	return defs
}

// Dispatch resolves and runs one requested tool call. A missing tool or
// a failing handler is terminal for the conversation.
func (r *Registry) Dispatch(ctx context.Context, call *contract.ToolCall) (string, error) {
	t, ok := r.Get(call.Name)
	if !ok {
		return "", fmt.Errorf("%w: unknown tool %q", chroniclerErrors.ErrToolExecutionFailed, call.Name)
	}

	slog.Debug("Executing tool", "tool", call.Name, "input", call.Input)
	out, err := t.Execute(ctx, json.RawMessage(call.Input))
	if err != nil {
		slog.Error("Tool execution failed", "tool", call.Name, "error", err)
		return "", err
	}
	return out, nil
}
