// Package app wires the pipeline together and applies the terminal
// effect for each action: collect context, assemble the prompt, run the
// conversation, then commit, amend, validate, or print. Repository
// mutation is always the last step, gated on a fully successful
// conversation.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	chroniclerErrors "github.com/chroniclerhq/chronicler/internal/errors"
	"github.com/chroniclerhq/chronicler/internal/gitrepo"
	"github.com/chroniclerhq/chronicler/internal/model/contract"
	"github.com/chroniclerhq/chronicler/internal/prompt"
)

// ConversationRunner drives one conversation to its final text answer.
type ConversationRunner interface {
	Run(ctx context.Context, messages []contract.Message) (string, error)
}

type App struct {
	Repo         Repository
	Loop         ConversationRunner
	StyleSamples int
	Stdout       io.Writer
	Stderr       io.Writer
}

// Repository is the slice of gitrepo.Repo the actions need.
type Repository interface {
	LastCommitPatch(ctx context.Context) (string, error)
	WorkingDiff(ctx context.Context, staged bool) (string, error)
	RangePatch(ctx context.Context, base string) (string, error)
	RecentMessages(ctx context.Context, count int) ([]string, error)
	Commit(ctx context.Context, msg string, opts gitrepo.CommitOptions) error
	Amend(ctx context.Context, msg string) error
}

type WriteOptions struct {
	Cached      bool
	Signoff     bool
	Interactive bool
}

func (a *App) converse(ctx context.Context, action prompt.Action, patch string) (string, error) {
	recent, err := a.Repo.RecentMessages(ctx, a.StyleSamples)
	if err != nil {
		return "", err
	}
	return a.Loop.Run(ctx, prompt.Build(action, patch, recent))
}

// Write authors a commit message for the working diff and creates the
// commit. Cached restricts the commit to already-staged changes;
// otherwise all tracked modifications are staged.
func (a *App) Write(ctx context.Context, opts WriteOptions) error {
	diff, err := a.Repo.WorkingDiff(ctx, opts.Cached)
	if err != nil {
		return err
	}

	msg, err := a.converse(ctx, prompt.ActionWrite, diff)
	if err != nil {
		return err
	}

	return a.Repo.Commit(ctx, msg, gitrepo.CommitOptions{
		All:         !opts.Cached,
		Signoff:     opts.Signoff,
		Interactive: opts.Interactive,
	})
}

// Fixup rewrites the most recent commit's message.
func (a *App) Fixup(ctx context.Context) error {
	patch, err := a.Repo.LastCommitPatch(ctx)
	if err != nil {
		return err
	}

	msg, err := a.converse(ctx, prompt.ActionFixup, patch)
	if err != nil {
		return err
	}

	return a.Repo.Amend(ctx, msg)
}

// Check audits the most recent commit's message against its patch. A
// reply whose first line is exactly ERROR fails the invocation with the
// explanation on stderr; anything else is feedback on stdout.
func (a *App) Check(ctx context.Context) error {
	patch, err := a.Repo.LastCommitPatch(ctx)
	if err != nil {
		return err
	}

	msg, err := a.converse(ctx, prompt.ActionCheck, patch)
	if err != nil {
		return err
	}

	if rest, flagged := strings.CutPrefix(msg, "ERROR\n"); flagged {
		fmt.Fprintln(a.Stderr, strings.TrimSpace(rest))
		return fmt.Errorf("%w: wrong commit message", chroniclerErrors.ErrMessageValidation)
	}

	fmt.Fprintln(a.Stdout, msg)
	return nil
}

// Summary prints a pull-request description for the commits after base.
// No repository mutation.
func (a *App) Summary(ctx context.Context, base string) error {
	patch, err := a.Repo.RangePatch(ctx, base)
	if err != nil {
		return err
	}

	msg, err := a.converse(ctx, prompt.ActionSummary, patch)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.Stdout, msg)
	return nil
}
