package intent

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divine-mercyx/MILO/types"
)

func TestParser_Transfer(t *testing.T) {
	p := NewParser()

	parsed, err := p.Parse("send 10 SUI to Alice")
	require.NoError(t, err)

	assert.Equal(t, types.ActionTransfer, parsed.Action)
	assert.Equal(t, types.AssetSUI, parsed.Asset)
	assert.True(t, parsed.AmountValue().Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "Alice", parsed.Recipient)
}

func TestParser_TransferDefaultsToNativeAsset(t *testing.T) {
	p := NewParser()

	parsed, err := p.Parse("send 3 to Bob")
	require.NoError(t, err)

	assert.Equal(t, types.AssetSUI, parsed.Asset)
	assert.Equal(t, "Bob", parsed.Recipient)
}

func TestParser_TransferCaseInsensitive(t *testing.T) {
	p := NewParser()

	parsed, err := p.Parse("SEND 2 usdc TO maria")
	require.NoError(t, err)

	assert.Equal(t, types.ActionTransfer, parsed.Action)
	assert.Equal(t, types.AssetUSDC, parsed.Asset)
	assert.Equal(t, "maria", parsed.Recipient)
}

func TestParser_TransferDecimalAmount(t *testing.T) {
	p := NewParser()

	parsed, err := p.Parse("send 1.5 SUI to 0x0c7e9d3f5a1b2c4d6e8f")
	require.NoError(t, err)

	assert.True(t, parsed.AmountValue().Equal(decimal.RequireFromString("1.5")))
	assert.Equal(t, "0x0c7e9d3f5a1b2c4d6e8f", parsed.Recipient)
}

func TestParser_Swap(t *testing.T) {
	p := NewParser()

	parsed, err := p.Parse("swap 5 SUI for USDC")
	require.NoError(t, err)

	assert.Equal(t, types.ActionSwap, parsed.Action)
	assert.Equal(t, types.AssetSUI, parsed.Asset)
	assert.Equal(t, types.AssetUSDC, parsed.Target)
	assert.True(t, parsed.AmountValue().Equal(decimal.NewFromInt(5)))
	assert.Empty(t, parsed.Recipient)
}

func TestParser_SwapRequiresBothAssets(t *testing.T) {
	p := NewParser()

	_, err := p.Parse("swap 5 SUI for gold")
	require.Error(t, err)
	assert.Equal(t, types.ErrParse, types.CodeOf(err))
}

func TestParser_NoMatchIsParseError(t *testing.T) {
	p := NewParser()

	_, err := p.Parse("do a backflip")
	require.Error(t, err)
	assert.Equal(t, types.ErrParse, types.CodeOf(err))

	var me *types.MiloError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, UsageExamples, me.Data)
}

func TestParser_TransferWinsOverSwapPhrasing(t *testing.T) {
	// Text containing both "send" and "for" must resolve by pattern
	// order: transfer first.
	p := NewParser()

	parsed, err := p.Parse("send 4 SUI to Maria for lunch")
	require.NoError(t, err)
	assert.Equal(t, types.ActionTransfer, parsed.Action)
	assert.Equal(t, "Maria", parsed.Recipient)
}

func TestParser_ClassifyWrapsCommand(t *testing.T) {
	p := NewParser()

	res, err := p.Classify(context.Background(), "send 10 SUI to Alice", nil)
	require.NoError(t, err)

	assert.Equal(t, KindCommand, res.Kind)
	require.NotNil(t, res.Intent)
	assert.Equal(t, types.ActionTransfer, res.Intent.Action)
}
