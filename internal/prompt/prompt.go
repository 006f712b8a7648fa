// Package prompt assembles the conversation sent to the provider: two
// system blocks (the raw patch, then a style hint built from prior
// commit messages) followed by the fixed instruction for the action.
// The ordering is load-bearing and must not change.
package prompt

import (
	"strings"

	"github.com/chroniclerhq/chronicler/internal/model/contract"
)

type Action string

const (
	ActionWrite   Action = "write"
	ActionFixup   Action = "fixup"
	ActionCheck   Action = "check"
	ActionSummary Action = "summary"
)

const writeInstruction = "Write a git commit message for the provided diff.  " +
	"Explain why a change is done, not what was changed.  " +
	"Keep the first line below 52 columns and next ones under 80 columns.  " +
	"Return only the git commit message without any other information nor any delimiter."

const fixupInstruction = "Improve the git commit message for the provided patch " +
	"and add any missing information you get from the code.  " +
	"Explain why a change is done, not what was changed.  " +
	"Keep the first line below 52 columns and next ones under 80 columns.  " +
	"Return only the git commit message without any other information nor any delimiter.  " +
	"Leave unchanged any signed-off line or any other trailer."

const checkInstruction = "Report any mistake you see in the commit log message.  " +
	"If the input contains a significant error or discrepancy, the first line of the " +
	"returned message must only contain the string ERROR and nothing more.  " +
	"Ignore the date and the author information, look only at the commit message.  " +
	"Explain carefully what changes you suggest."

const summaryInstruction = "Write a one-line title, followed by a summary of the " +
	"provided commits, to be used as the description for a pull request.  " +
	"Give more weight to the commit messages than to the patches."

// Instruction returns the fixed user-role template for the action.
func Instruction(action Action) string {
	switch action {
	case ActionFixup:
		return fixupInstruction
	case ActionCheck:
		return checkInstruction
	case ActionSummary:
		return summaryInstruction
	default:
		return writeInstruction
	}
}

// StyleHint serializes the recent commit messages into the second
// system block so the model imitates the repository's voice.
func StyleHint(recent []string) string {
	var b strings.Builder
	b.WriteString("Follow the style of these git commit messages:\n")
	for _, msg := range recent {
		b.WriteString("\n---\n")
		b.WriteString(msg)
		b.WriteString("\n")
	}
	return b.String()
}

// Build produces the ordered message list for one action: system(patch),
// system(style hint), user(instruction).
func Build(action Action, patch string, recent []string) []contract.Message {
	return []contract.Message{
		{Role: "system", Content: patch},
		{Role: "system", Content: StyleHint(recent)},
		{Role: "user", Content: Instruction(action)},
	}
}
