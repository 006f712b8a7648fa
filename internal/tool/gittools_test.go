package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	chroniclerErrors "github.com/chroniclerhq/chronicler/internal/errors"
	"github.com/chroniclerhq/chronicler/internal/gitrepo"

	"github.com/stretchr/testify/require"
)

func fakeRepo(replies map[string]string, errs map[string]error) *gitrepo.Repo {
	return gitrepo.NewWithRunner(func(_ context.Context, _ string, args ...string) (string, error) {
		key := strings.Join(args, " ")
		if err, ok := errs[key]; ok {
			return "", err
		}
		return replies[key], nil
	})
}

func TestListAllFiles(t *testing.T) {
	repo := fakeRepo(map[string]string{"ls-files": "a.go\nb.go\n"}, nil)
	tool := &ListAllFilesTool{Repo: repo}

	out, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	require.NoError(t, err)
	require.Equal(t, "a.go\nb.go", out)
}

func TestReadFile(t *testing.T) {
	repo := fakeRepo(map[string]string{"show HEAD:a.go": "package a\n"}, nil)
	tool := &ReadFileTool{Repo: repo}

	out, err := tool.Execute(context.Background(), json.RawMessage(`{"path":"a.go"}`))
	require.NoError(t, err)
	require.Equal(t, "package a\n", out)
}

func TestReadFileMissingPath(t *testing.T) {
	tool := &ReadFileTool{Repo: fakeRepo(nil, nil)}

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty object", input: `{}`},
		{name: "blank path", input: `{"path":" "}`},
		{name: "malformed json", input: `{"path":`},
		{name: "wrong type", input: `{"path":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tool.Execute(context.Background(), json.RawMessage(tt.input))
			require.ErrorIs(t, err, chroniclerErrors.ErrToolInvalidArgument)
		})
	}
}

func TestReadFileUnknownPath(t *testing.T) {
	repo := fakeRepo(nil, map[string]error{
		"show HEAD:nope.go": fmt.Errorf("%w: git show: fatal: path 'nope.go' does not exist", chroniclerErrors.ErrRepositoryCommand),
	})
	tool := &ReadFileTool{Repo: repo}

	_, err := tool.Execute(context.Background(), json.RawMessage(`{"path":"nope.go"}`))
	require.ErrorIs(t, err, chroniclerErrors.ErrToolExecutionFailed)
}

func TestGitToolDescriptors(t *testing.T) {
	repo := fakeRepo(nil, nil)
	r := NewRegistry(&ListAllFilesTool{Repo: repo}, &ReadFileTool{Repo: repo})

	defs := r.Descriptors()
	require.Len(t, defs, 2)

	readFile := defs[1]
	require.Equal(t, "read_file", readFile.Name)
	require.Equal(t, []string{"path"}, readFile.Parameters["required"])
	require.Equal(t, false, readFile.Parameters["additionalProperties"])
}
