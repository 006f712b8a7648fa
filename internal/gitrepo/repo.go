// Package gitrepo collects version-control context and applies the
// terminal commit/amend effects. All repository access goes through the
// git executable; stdout is captured as UTF-8 text and a non-zero exit
// surfaces the subprocess's stderr.
package gitrepo

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	chroniclerErrors "github.com/chroniclerhq/chronicler/internal/errors"
)

// Runner executes git with the given arguments, feeding stdin when
// non-empty, and returns captured stdout.
type Runner func(ctx context.Context, stdin string, args ...string) (string, error)

// interactiveFunc executes git with the process's own stdio attached,
// so the user's editor can take over the terminal.
type interactiveFunc func(ctx context.Context, args ...string) error

type Repo struct {
	run         Runner
	interactive interactiveFunc
}

func New() *Repo {
	return &Repo{run: runGit, interactive: runGitInteractive}
}

// NewWithRunner builds a Repo backed by a custom runner instead of the
// git executable. Used by tests to fake subprocess output.
func NewWithRunner(run Runner) *Repo {
	return &Repo{run: run, interactive: runGitInteractive}
}

func runGit(ctx context.Context, stdin string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: git %s: %s", chroniclerErrors.ErrRepositoryCommand,
			strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

func runGitInteractive(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: git %s: %v", chroniclerErrors.ErrRepositoryCommand,
			strings.Join(args, " "), err)
	}
	return nil
}

// LastCommitPatch returns the most recent commit's message and patch.
func (r *Repo) LastCommitPatch(ctx context.Context) (string, error) {
	return r.run(ctx, "", "log", "-1", "-p")
}

// WorkingDiff returns the staged diff when staged is true, otherwise the
// full diff of tracked modifications against HEAD. An empty diff is a
// hard stop: there is nothing to describe, so no request should be made.
func (r *Repo) WorkingDiff(ctx context.Context, staged bool) (string, error) {
	args := []string{"diff", "--cached"}
	if !staged {
		args = []string{"diff", "HEAD"}
	}
	out, err := r.run(ctx, "", args...)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("%w: nothing to commit", chroniclerErrors.ErrEmptyChangeSet)
	}
	return out, nil
}

// RangePatch returns the patches of every commit after base, oldest last.
func (r *Repo) RangePatch(ctx context.Context, base string) (string, error) {
	return r.run(ctx, "", "log", "-p", base+"..HEAD")
}

// ListFiles returns the tracked paths, one per line.
func (r *Repo) ListFiles(ctx context.Context) (string, error) {
	return r.run(ctx, "", "ls-files")
}

// ShowFile returns the content of path as committed at HEAD.
func (r *Repo) ShowFile(ctx context.Context, path string) (string, error) {
	return r.run(ctx, "", "show", "HEAD:"+path)
}

// RecentMessages returns up to count non-merge commit messages in
// reverse-chronological order. Each message is truncated at its first
// trailer line so the style sample does not teach the model to invent
// sign-offs; messages that are empty after truncation are dropped.
func (r *Repo) RecentMessages(ctx context.Context, count int) ([]string, error) {
	out, err := r.run(ctx, "", "log", "--no-merges",
		fmt.Sprintf("-%d", count), "--format=%B%x1e")
	if err != nil {
		return nil, err
	}

	var messages []string
	for _, raw := range strings.Split(out, "\x1e") {
		msg := StripTrailers(strings.TrimSpace(raw))
		if msg != "" {
			messages = append(messages, msg)
		}
	}
	return messages, nil
}

type CommitOptions struct {
	All         bool // stage all tracked modifications first
	Signoff     bool
	Interactive bool
}

// Commit creates a new commit carrying msg. In interactive mode the
// generated text is written to a temporary file, removed on every exit
// path, and git opens it in the user's editor; a non-zero editor or
// commit exit aborts the whole operation. Otherwise msg is piped to
// git commit on stdin.
func (r *Repo) Commit(ctx context.Context, msg string, opts CommitOptions) error {
	args := []string{"commit"}
	if opts.All {
		args = append(args, "-a")
	}
	if opts.Signoff {
		args = append(args, "-s")
	}

	if opts.Interactive {
		tmp, err := os.CreateTemp("", "chronicler-msg-*")
		if err != nil {
			return fmt.Errorf("create message file: %w", err)
		}
		defer os.Remove(tmp.Name())
		if _, err := tmp.WriteString(msg); err != nil {
			tmp.Close()
			return fmt.Errorf("write message file: %w", err)
		}
		if err := tmp.Close(); err != nil {
			return fmt.Errorf("close message file: %w", err)
		}
		args = append(args, "--edit", "-F", tmp.Name())
		return r.interactive(ctx, args...)
	}

	args = append(args, "-F", "-")
	_, err := r.run(ctx, msg, args...)
	return err
}

// Amend replaces the most recent commit's message with msg.
func (r *Repo) Amend(ctx context.Context, msg string) error {
	_, err := r.run(ctx, msg, "commit", "--amend", "-F", "-")
	return err
}
