package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divine-mercyx/MILO/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SaveAndList(t *testing.T) {
	store := openTestStore(t)

	maria := types.Contact{Name: "Maria", Address: "0x4f2e63be8e7fe287836e29cde6f3d5cbc96eefd0c0e3f3747668faa2ae7324b0"}
	john := types.Contact{Name: "John", Address: "0x7d20dcdb2bca4f508ea9613994683eb4e76e9c4ed371169677c1be02aaf0b58e"}

	require.NoError(t, store.Save(maria))
	require.NoError(t, store.Save(john))

	got, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []types.Contact{john, maria}, got) // ordered by name
}

func TestStore_SaveReplacesByAddress(t *testing.T) {
	store := openTestStore(t)
	address := "0x4f2e63be8e7fe287836e29cde6f3d5cbc96eefd0c0e3f3747668faa2ae7324b0"

	require.NoError(t, store.Save(types.Contact{Name: "Maria", Address: address}))
	require.NoError(t, store.Save(types.Contact{Name: "Maria Garcia", Address: address}))

	got, err := store.List()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Maria Garcia", got[0].Name)
}

func TestStore_SaveRejectsBadInput(t *testing.T) {
	store := openTestStore(t)

	err := store.Save(types.Contact{Name: "", Address: "0x4f2e63be8e7fe287836e29cde6f3d5cb"})
	assert.Equal(t, types.ErrValidation, types.CodeOf(err))

	err = store.Save(types.Contact{Name: "Maria", Address: "not-an-address"})
	assert.Equal(t, types.ErrValidation, types.CodeOf(err))
}

func TestStore_Delete(t *testing.T) {
	store := openTestStore(t)
	address := "0x4f2e63be8e7fe287836e29cde6f3d5cbc96eefd0c0e3f3747668faa2ae7324b0"

	require.NoError(t, store.Save(types.Contact{Name: "Maria", Address: address}))
	require.NoError(t, store.Delete(address))

	got, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, got)

	// Deleting an unknown address is not an error.
	assert.NoError(t, store.Delete(address))
}

func TestStore_ResolveAgainstSnapshot(t *testing.T) {
	store := openTestStore(t)
	address := "0x4f2e63be8e7fe287836e29cde6f3d5cbc96eefd0c0e3f3747668faa2ae7324b0"
	require.NoError(t, store.Save(types.Contact{Name: "Maria", Address: address}))

	snap, err := store.List()
	require.NoError(t, err)

	resolved, err := Resolve("maria", snap)
	require.NoError(t, err)
	assert.Equal(t, address, resolved)
}
