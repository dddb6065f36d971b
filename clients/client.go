// Package clients holds the chain-facing contracts of the MILO core and
// the Sui fullnode implementation. The core only ever talks to these
// interfaces; tests substitute fakes.
package clients

import (
	"context"

	"github.com/Divine-mercyx/MILO/txbuilder"
	"github.com/Divine-mercyx/MILO/types"
)

// Executor submits a signed transaction block and returns its digest,
// effects and events.
type Executor interface {
	ExecuteTransactionBlock(ctx context.Context, signed *types.SignedTransaction) (*types.ExecuteResult, error)
}

// Reader fetches an account's total balance for a coin type, in base
// units.
type Reader interface {
	GetBalance(ctx context.Context, owner, coinType string) (string, error)
}

// Signer is the external wallet: it signs an unsigned transaction or
// rejects (e.g. the user declined). Key material never enters this module.
type Signer interface {
	Sign(ctx context.Context, tx *txbuilder.Transaction) (*types.SignedTransaction, error)
}
