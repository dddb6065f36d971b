package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divine-mercyx/MILO/types"
)

var snapshot = []types.Contact{
	{Name: "Maria", Address: "0x4f2e63be8e7fe287836e29cde6f3d5cbc96eefd0c0e3f3747668faa2ae7324b0"},
	{Name: "John", Address: "0x7d20dcdb2bca4f508ea9613994683eb4e76e9c4ed371169677c1be02aaf0b58e"},
}

func TestResolve_KnownContact(t *testing.T) {
	address, err := Resolve("Maria", snapshot)
	require.NoError(t, err)
	assert.Equal(t, snapshot[0].Address, address)
}

func TestResolve_CaseInsensitive(t *testing.T) {
	for _, token := range []string{"maria", "MARIA", "mArIa"} {
		address, err := Resolve(token, snapshot)
		require.NoError(t, err, token)
		assert.Equal(t, snapshot[0].Address, address)
	}
}

func TestResolve_AddressPassthroughIsIdempotent(t *testing.T) {
	address := "0x9a134409bc7d3ee1de438c42326a35c19c92f36ac09830ba22981e6a5a4cf0a2"

	once, err := Resolve(address, snapshot)
	require.NoError(t, err)
	assert.Equal(t, address, once)

	twice, err := Resolve(once, snapshot)
	require.NoError(t, err)
	assert.Equal(t, address, twice)
}

func TestResolve_UnknownNameFails(t *testing.T) {
	_, err := Resolve("Stranger", snapshot)
	require.Error(t, err)

	assert.Equal(t, types.ErrResolution, types.CodeOf(err))
	assert.Contains(t, err.Error(), "Stranger")
}

func TestResolve_MalformedAddressFails(t *testing.T) {
	for _, token := range []string{"0x123", "4f2e63be8e", "0xzzzzzzzzzzzz", ""} {
		_, err := Resolve(token, snapshot)
		assert.Error(t, err, token)
		assert.Equal(t, types.ErrResolution, types.CodeOf(err), token)
	}
}
