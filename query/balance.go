// Package query is the read-only side channel: balance fetches that never
// produce a signable payload.
package query

import (
	"context"
	"math/big"
	"time"

	"github.com/Divine-mercyx/MILO/clients"
	"github.com/Divine-mercyx/MILO/logger"
	"github.com/Divine-mercyx/MILO/types"
	"github.com/Divine-mercyx/MILO/utils"
)

// BalanceService fetches and normalizes an account's holdings. Idempotent
// and side-effect-free apart from the network read itself.
type BalanceService struct {
	reader  clients.Reader
	timeout time.Duration
	log     logger.Logger
}

func NewBalanceService(reader clients.Reader, timeout time.Duration, log logger.Logger) *BalanceService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.NoopLogger{}
	}
	return &BalanceService{reader: reader, timeout: timeout, log: log}
}

// GetBalance returns the owner's holding of the asset in human-readable
// units. Only the native coin is supported; any other asset fails with a
// named NOT_IMPLEMENTED error rather than a silent zero. An empty asset
// defaults to the native coin.
func (s *BalanceService) GetBalance(ctx context.Context, owner string, asset types.Asset) (float64, error) {
	if asset == "" {
		asset = types.NativeAsset
	}
	if asset != types.NativeAsset {
		if _, ok := types.ParseAsset(string(asset)); !ok {
			return 0, types.NewValidationError("unsupported asset: %s", asset)
		}
		return 0, types.NewNotImplementedError(asset)
	}
	if !utils.IsSuiAddress(owner) {
		return 0, types.NewValidationError("owner %q is not a valid Sui address", owner)
	}

	queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	total, err := s.reader.GetBalance(queryCtx, owner, types.Assets[types.NativeAsset].CoinType)
	if err != nil {
		return 0, err
	}

	base, ok := new(big.Int).SetString(total, 10)
	if !ok {
		return 0, types.NewValidationError("node returned malformed balance %q", total)
	}

	human := utils.FromBaseUnits(base, utils.SuiDecimals)
	s.log.Debug("balance fetched", map[string]any{"owner": owner, "sui": human.String()})
	return human.InexactFloat64(), nil
}
