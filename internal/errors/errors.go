package errors

import (
	"errors"
)

// Sentinel errors for the failure kinds the pipeline can surface.
// Every component wraps one of these with %w and propagates it up to
// the entry point; none of them is retried.
var (
	// ErrRepositoryCommand - the git subprocess exited non-zero; the wrapping
	// error carries the subprocess's stderr text.
	ErrRepositoryCommand = errors.New("repository command failed")

	// ErrEmptyChangeSet - the working diff is empty, nothing to describe.
	ErrEmptyChangeSet = errors.New("empty change set")

	// ErrCredentialMissing - the per-provider key file is absent or empty.
	ErrCredentialMissing = errors.New("credential missing")

	// ErrTransport - the HTTP request never produced a response.
	ErrTransport = errors.New("transport error")

	// ErrProvider - the provider answered with a non-success HTTP status.
	ErrProvider = errors.New("provider error")

	// ErrMalformedResponse - undecodable response body or empty choice list.
	ErrMalformedResponse = errors.New("malformed provider response")

	// ErrToolInvalidArgument - a tool call carried missing or malformed arguments.
	ErrToolInvalidArgument = errors.New("invalid tool argument")

	// ErrToolExecutionFailed - a tool handler failed, or the requested tool
	// is not registered.
	ErrToolExecutionFailed = errors.New("tool execution failed")

	// ErrToolLoopExceeded - the provider kept requesting tool calls past the
	// configured round cap.
	ErrToolLoopExceeded = errors.New("tool loop exceeded")

	// ErrMessageValidation - the check action found a flagged error in the
	// last commit message.
	ErrMessageValidation = errors.New("message validation failed")
)
