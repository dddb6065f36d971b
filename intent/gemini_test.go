package intent

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divine-mercyx/MILO/types"
)

func TestDecodeModelReply_Command(t *testing.T) {
	raw := `{"action":"transfer","asset":"SUI","amount":5,"recipient":"Maria"}`

	res, err := DecodeModelReply(raw)
	require.NoError(t, err)

	assert.Equal(t, KindCommand, res.Kind)
	require.NotNil(t, res.Intent)
	assert.Equal(t, types.ActionTransfer, res.Intent.Action)
	assert.Equal(t, "Maria", res.Intent.Recipient)
	assert.True(t, res.Intent.AmountValue().Equal(decimal.NewFromInt(5)))
}

func TestDecodeModelReply_Conversation(t *testing.T) {
	res, err := DecodeModelReply(`{"reply":"SUI is the native coin of the Sui network."}`)
	require.NoError(t, err)

	assert.Equal(t, KindConversation, res.Kind)
	assert.Equal(t, "SUI is the native coin of the Sui network.", res.Reply)
}

func TestDecodeModelReply_PlainTextIsConversation(t *testing.T) {
	res, err := DecodeModelReply("I can help you send SUI, mint NFTs, stake and swap.")
	require.NoError(t, err)

	assert.Equal(t, KindConversation, res.Kind)
}

func TestDecodeModelReply_FencedJSON(t *testing.T) {
	raw := "```json\n{\"action\":\"swap\",\"asset\":\"SUI\",\"target\":\"USDC\",\"amount\":2}\n```"

	res, err := DecodeModelReply(raw)
	require.NoError(t, err)

	assert.Equal(t, KindCommand, res.Kind)
	assert.Equal(t, types.ActionSwap, res.Intent.Action)
	assert.Equal(t, types.AssetUSDC, res.Intent.Target)
}

func TestDecodeModelReply_UnknownActionRejected(t *testing.T) {
	_, err := DecodeModelReply(`{"action":"teleport","amount":1}`)
	require.Error(t, err)
	assert.Equal(t, types.ErrUnsupportedAction, types.CodeOf(err))
}

func TestDecodeModelReply_EmptyResponse(t *testing.T) {
	_, err := DecodeModelReply("   ")
	require.Error(t, err)
	assert.Equal(t, types.ErrAI, types.CodeOf(err))
}
