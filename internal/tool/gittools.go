package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	chroniclerErrors "github.com/chroniclerhq/chronicler/internal/errors"
	"github.com/chroniclerhq/chronicler/internal/gitrepo"
)

// ListAllFilesTool returns every tracked path in the repository.
type ListAllFilesTool struct {
	Repo *gitrepo.Repo
}

func (t *ListAllFilesTool) Name() string {
	return "list_all_files"
}

func (t *ListAllFilesTool) Description() string {
	return "List all the files tracked in the git repository."
}

func (t *ListAllFilesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"properties":           map[string]interface{}{},
		"additionalProperties": false,
	}
}

func (t *ListAllFilesTool) Execute(ctx context.Context, _ json.RawMessage) (string, error) {
	out, err := t.Repo.ListFiles(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", chroniclerErrors.ErrToolExecutionFailed, err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// ReadFileTool returns a file's content as committed at HEAD.
type ReadFileTool struct {
	Repo *gitrepo.Repo
}

func (t *ReadFileTool) Name() string {
	return "read_file"
}

func (t *ReadFileTool) Description() string {
	return "Read the content of a file in the git repository at the current HEAD revision."
}

func (t *ReadFileTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path": map[string]interface{}{
				"type":        "string",
				"description": "Path of the file, relative to the repository root",
			},
		},
		"required":             []string{"path"},
		"additionalProperties": false,
	}
}

func (t *ReadFileTool) Execute(ctx context.Context, input json.RawMessage) (string, error) {
	var args struct {
		Path string `json:"path"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return "", fmt.Errorf("%w: %v", chroniclerErrors.ErrToolInvalidArgument, err)
	}
	if strings.TrimSpace(args.Path) == "" {
		return "", fmt.Errorf("%w: path is required", chroniclerErrors.ErrToolInvalidArgument)
	}

	out, err := t.Repo.ShowFile(ctx, args.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", chroniclerErrors.ErrToolExecutionFailed, err)
	}
	return out, nil
}
