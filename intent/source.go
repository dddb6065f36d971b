// Package intent turns free-form user text into a typed Intent. Two
// strategies implement the same Source contract: a regex parser for fixed
// phrasings and a Gemini-backed classifier for everything else.
package intent

import (
	"context"

	"github.com/Divine-mercyx/MILO/types"
)

// ResultKind discriminates the classification outcome.
type ResultKind string

const (
	// KindCommand means the text mapped to an actionable Intent.
	KindCommand ResultKind = "command"
	// KindConversation means the text is small talk or a question; Reply
	// holds the answer to show the user.
	KindConversation ResultKind = "conversation"
)

// Result is the tagged union a Source produces: either a command carrying
// an Intent, or a conversational reply.
type Result struct {
	Kind   ResultKind    `json:"kind"`
	Intent *types.Intent `json:"intent,omitempty"`
	Reply  string        `json:"reply,omitempty"`
}

// Command wraps an Intent in a command result.
func Command(i *types.Intent) *Result {
	return &Result{Kind: KindCommand, Intent: i}
}

// Conversation wraps a reply string in a conversation result.
func Conversation(reply string) *Result {
	return &Result{Kind: KindConversation, Reply: reply}
}

// Source classifies user text against the current contact snapshot.
// Implementations must not mutate the snapshot.
type Source interface {
	Classify(ctx context.Context, text string, contacts []types.Contact) (*Result, error)
}

// Chain tries each source in order and returns the first answer. A
// PARSE_ERROR from one source falls through to the next; any other error
// stops the chain. The zero-source chain always fails.
type Chain struct {
	sources []Source
}

// NewChain builds an ordered fallback chain, typically parser-first with
// the AI classifier behind it.
func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

func (c *Chain) Classify(ctx context.Context, text string, contacts []types.Contact) (*Result, error) {
	var lastErr error
	for _, s := range c.sources {
		res, err := s.Classify(ctx, text, contacts)
		if err == nil {
			return res, nil
		}
		if !types.IsCode(err, types.ErrParse) {
			return nil, err
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = types.NewParseError("no intent source configured", nil)
	}
	return nil, lastErr
}
