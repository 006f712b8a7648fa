package tool

import (
	"context"
	"encoding/json"
	"testing"

	chroniclerErrors "github.com/chroniclerhq/chronicler/internal/errors"
	"github.com/chroniclerhq/chronicler/internal/model/contract"

	"github.com/stretchr/testify/require"
)

type stubTool struct {
	name   string
	result string
	err    error
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "stub" }
func (s *stubTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"properties":           map[string]interface{}{},
		"additionalProperties": false,
	}
}
func (s *stubTool) Execute(context.Context, json.RawMessage) (string, error) {
	return s.result, s.err
}

func TestRegistryDescriptorsSorted(t *testing.T) {
	r := NewRegistry(
		&stubTool{name: "read_file"},
		&stubTool{name: "list_all_files"},
	)

	defs := r.Descriptors()
	require.Len(t, defs, 2)
	require.Equal(t, "list_all_files", defs[0].Name)
	require.Equal(t, "read_file", defs[1].Name)
	require.Equal(t, false, defs[0].Parameters["additionalProperties"])
}

func TestRegistryLenNilSafe(t *testing.T) {
	var r *Registry
	require.Equal(t, 0, r.Len())
	require.Nil(t, r.Descriptors())
}

func TestDispatchUnknownTool(t *testing.T) {
	r := NewRegistry()
	_, err := r.Dispatch(context.Background(), &contract.ToolCall{Name: "nope"})
	require.ErrorIs(t, err, chroniclerErrors.ErrToolExecutionFailed)
}

func TestDispatchRunsHandler(t *testing.T) {
	r := NewRegistry(&stubTool{name: "list_all_files", result: "a.go\nb.go"})
	out, err := r.Dispatch(context.Background(), &contract.ToolCall{Name: "list_all_files", Input: "{}"})
	require.NoError(t, err)
	require.Equal(t, "a.go\nb.go", out)
}
