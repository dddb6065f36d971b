package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divine-mercyx/MILO/types"
)

type stubSource struct {
	result *Result
	err    error
	calls  int
}

func (s *stubSource) Classify(context.Context, string, []types.Contact) (*Result, error) {
	s.calls++
	return s.result, s.err
}

func TestChain_ParserAnswersFirst(t *testing.T) {
	fallback := &stubSource{result: Conversation("should not be reached")}
	chain := NewChain(NewParser(), fallback)

	res, err := chain.Classify(context.Background(), "send 10 SUI to Alice", nil)
	require.NoError(t, err)

	assert.Equal(t, KindCommand, res.Kind)
	assert.Zero(t, fallback.calls)
}

func TestChain_ParseErrorFallsThrough(t *testing.T) {
	fallback := &stubSource{result: Conversation("hello there")}
	chain := NewChain(NewParser(), fallback)

	res, err := chain.Classify(context.Background(), "how are you today?", nil)
	require.NoError(t, err)

	assert.Equal(t, KindConversation, res.Kind)
	assert.Equal(t, "hello there", res.Reply)
	assert.Equal(t, 1, fallback.calls)
}

func TestChain_NonParseErrorStopsChain(t *testing.T) {
	failing := &stubSource{err: types.NewAIError(errors.New("quota exceeded"))}
	next := &stubSource{result: Conversation("unreachable")}
	chain := NewChain(failing, next)

	_, err := chain.Classify(context.Background(), "anything", nil)
	require.Error(t, err)

	assert.Equal(t, types.ErrAI, types.CodeOf(err))
	assert.Zero(t, next.calls)
}

func TestChain_AllSourcesFailReturnsLastParseError(t *testing.T) {
	chain := NewChain(NewParser())

	_, err := chain.Classify(context.Background(), "do a backflip", nil)
	require.Error(t, err)
	assert.Equal(t, types.ErrParse, types.CodeOf(err))
}

func TestChain_EmptyChainFails(t *testing.T) {
	chain := NewChain()

	_, err := chain.Classify(context.Background(), "anything", nil)
	require.Error(t, err)
	assert.Equal(t, types.ErrParse, types.CodeOf(err))
}
