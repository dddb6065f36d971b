package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divine-mercyx/MILO/types"
)

const owner = "0x9a134409bc7d3ee1de438c42326a35c19c92f36ac09830ba22981e6a5a4cf0a2"

type fakeReader struct {
	total    string
	err      error
	coinType string
}

func (f *fakeReader) GetBalance(_ context.Context, _, coinType string) (string, error) {
	f.coinType = coinType
	if f.err != nil {
		return "", f.err
	}
	return f.total, nil
}

func TestGetBalance_NativeCoin(t *testing.T) {
	reader := &fakeReader{total: "2500000000"}
	s := NewBalanceService(reader, time.Second, nil)

	got, err := s.GetBalance(context.Background(), owner, types.AssetSUI)
	require.NoError(t, err)

	assert.Equal(t, 2.5, got)
	assert.Equal(t, "0x2::sui::SUI", reader.coinType)
}

func TestGetBalance_EmptyAssetDefaultsToNative(t *testing.T) {
	s := NewBalanceService(&fakeReader{total: "1000000000"}, time.Second, nil)

	got, err := s.GetBalance(context.Background(), owner, "")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestGetBalance_NonNativeAssetIsNotImplemented(t *testing.T) {
	reader := &fakeReader{total: "1000000000"}
	s := NewBalanceService(reader, time.Second, nil)

	_, err := s.GetBalance(context.Background(), owner, types.AssetUSDC)
	require.Error(t, err)

	assert.Equal(t, types.ErrNotImplemented, types.CodeOf(err))
	assert.Contains(t, err.Error(), "USDC")
	assert.Empty(t, reader.coinType, "must not hit the network")
}

func TestGetBalance_UnknownAssetIsValidationError(t *testing.T) {
	s := NewBalanceService(&fakeReader{}, time.Second, nil)

	_, err := s.GetBalance(context.Background(), owner, "DOGE")
	require.Error(t, err)
	assert.Equal(t, types.ErrValidation, types.CodeOf(err))
}

func TestGetBalance_RejectsMalformedOwner(t *testing.T) {
	s := NewBalanceService(&fakeReader{}, time.Second, nil)

	_, err := s.GetBalance(context.Background(), "maria", types.AssetSUI)
	require.Error(t, err)
	assert.Equal(t, types.ErrValidation, types.CodeOf(err))
}

func TestGetBalance_ReaderErrorPropagates(t *testing.T) {
	s := NewBalanceService(&fakeReader{err: errors.New("node down")}, time.Second, nil)

	_, err := s.GetBalance(context.Background(), owner, types.AssetSUI)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node down")
}

func TestGetBalance_MalformedTotalFails(t *testing.T) {
	s := NewBalanceService(&fakeReader{total: "not-a-number"}, time.Second, nil)

	_, err := s.GetBalance(context.Background(), owner, types.AssetSUI)
	require.Error(t, err)
	assert.Equal(t, types.ErrValidation, types.CodeOf(err))
}
