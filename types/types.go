package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Action represents the on-chain operations a user can request.
type Action string

const (
	ActionTransfer     Action = "transfer"
	ActionMint         Action = "mint"
	ActionStake        Action = "stake"
	ActionSwap         Action = "swap"
	ActionQueryBalance Action = "query-balance"
)

// Valid reports whether the action is a member of the closed action set.
func (a Action) Valid() bool {
	switch a {
	case ActionTransfer, ActionMint, ActionStake, ActionSwap, ActionQueryBalance:
		return true
	}
	return false
}

func (a Action) String() string {
	return string(a)
}

// Asset is a supported asset symbol.
type Asset string

const (
	AssetSUI   Asset = "SUI"
	AssetCETUS Asset = "CETUS"
	AssetUSDC  Asset = "USDC"
	AssetBTC   Asset = "BTC"
	AssetETH   Asset = "ETH"
)

// NativeAsset is the chain's native coin, used as the default on transfer.
const NativeAsset = AssetSUI

// SupportedAssets lists every asset the intent pipeline accepts, in the
// order the parser alternates over them.
var SupportedAssets = []Asset{AssetSUI, AssetCETUS, AssetUSDC, AssetBTC, AssetETH}

// AssetInfo describes one entry of the fixed asset registry.
type AssetInfo struct {
	CoinType string `json:"coinType"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
}

// Assets maps each supported symbol to its on-chain coin type.
var Assets = map[Asset]AssetInfo{
	AssetSUI: {
		CoinType: "0x2::sui::SUI",
		Symbol:   "SUI",
		Decimals: 9,
	},
	AssetCETUS: {
		CoinType: "0x06864a6f921804860930db6ddbe2e16acdf8504495ea7481637a1c8b9a8fe54b::cetus::CETUS",
		Symbol:   "CETUS",
		Decimals: 9,
	},
	AssetUSDC: {
		CoinType: "0x5d4b302506645c37ff133b98c4b50a5ae14841659738d6d733d59d0d217a93bf::coin::COIN", // USDC (Wormhole)
		Symbol:   "USDC",
		Decimals: 6,
	},
	AssetBTC: {
		CoinType: "0x027792d9fed7f9844eb4839566001bb6f6cb4804f66aa2da6fe1ee242d896881::coin::COIN", // wBTC (Wormhole)
		Symbol:   "wBTC",
		Decimals: 8,
	},
	AssetETH: {
		CoinType: "0xaf8cd5edc19c4512f4259f0bee101a40d41ebed738ade5874359610ef8eeced5::coin::COIN", // wETH (Wormhole)
		Symbol:   "wETH",
		Decimals: 8,
	},
}

// ParseAsset matches a symbol against the supported set, case-insensitively.
func ParseAsset(s string) (Asset, bool) {
	for _, a := range SupportedAssets {
		if strings.EqualFold(s, string(a)) {
			return a, true
		}
	}
	return "", false
}

// Intent is the canonical request object produced by classification and
// consumed by the transaction builder. Amounts are denominated in
// human-readable units, not base units.
type Intent struct {
	Action Action `json:"action" validate:"required"`

	// Asset defaults to the native coin on transfer when omitted.
	Asset Asset `json:"asset,omitempty"`

	// Amount must be strictly positive when present. Validated at build
	// time, not at parse time.
	Amount *decimal.Decimal `json:"amount,omitempty"`

	// Recipient carries a resolved chain address, or a validator address
	// for stake. The builder never performs contact lookup itself.
	Recipient string `json:"recipient,omitempty"`

	// GasBudget overrides the default gas estimation, in MIST.
	GasBudget uint64 `json:"gasBudget,omitempty"`

	// NFT metadata, used only for mint.
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Target is the destination asset for swap.
	Target Asset `json:"target,omitempty"`

	// Reference to an externally-uploaded content blob backing a minted
	// asset. Populated by the upload collaborator before the builder runs.
	BlobID   string `json:"blobId,omitempty"`
	AssetURL string `json:"assetUrl,omitempty"`
}

// AmountValue returns the amount, or zero when absent.
func (i *Intent) AmountValue() decimal.Decimal {
	if i.Amount == nil {
		return decimal.Zero
	}
	return *i.Amount
}

// Contact maps a human-readable name to a chain address. Contacts are
// unique by address within a contact set.
type Contact struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// TxStatus is the lifecycle state of a tracked submission attempt.
type TxStatus string

const (
	TxPending TxStatus = "pending"
	TxSuccess TxStatus = "success"
	TxFailed  TxStatus = "failed"
)

// Terminal reports whether no further transition is allowed.
func (s TxStatus) Terminal() bool {
	return s == TxSuccess || s == TxFailed
}

// TransactionRecord tracks one submission attempt for the UI layer.
// Exactly one terminal state is reached per attempt; a repeated attempt is
// a brand-new record.
type TransactionRecord struct {
	ID     string   `json:"id"`
	Status TxStatus `json:"status"`

	// Digest is known only on or after submission acceptance. Present for
	// success, and for failed only when rejection occurred post-broadcast.
	Digest string `json:"digest,omitempty"`

	// Populated only on success.
	GasUsed     string `json:"gasUsed,omitempty"`
	EventsCount int    `json:"eventsCount,omitempty"`

	// Set at each state transition, not fixed at creation.
	Timestamp time.Time `json:"timestamp"`

	Error string `json:"error,omitempty"`
}

// SignedTransaction is the wallet signer's output, ready for submission.
type SignedTransaction struct {
	Bytes     string `json:"bytes"`
	Signature string `json:"signature"`
}

// ExecuteResult is the chain execution endpoint's response.
type ExecuteResult struct {
	Digest  string     `json:"digest"`
	Effects *TxEffects `json:"effects,omitempty"`
	Events  []TxEvent  `json:"events,omitempty"`
}

// TxEffects carries the subset of execution effects the tracker reads.
type TxEffects struct {
	Status  EffectsStatus `json:"status"`
	GasUsed GasSummary    `json:"gasUsed"`
}

type EffectsStatus struct {
	Status string `json:"status"` // "success" or "failure"
	Error  string `json:"error,omitempty"`
}

type GasSummary struct {
	ComputationCost string `json:"computationCost"`
	StorageCost     string `json:"storageCost"`
	StorageRebate   string `json:"storageRebate"`
}

// TxEvent is an event emitted during execution. Only the count matters to
// the tracker; the payload is kept for display.
type TxEvent struct {
	Type       string         `json:"type"`
	PackageID  string         `json:"packageId,omitempty"`
	Sender     string         `json:"sender,omitempty"`
	ParsedJSON map[string]any `json:"parsedJson,omitempty"`
}

// Config contains global configuration for the MILO core.
type Config struct {
	Network Network `json:"network,omitempty"`

	// RPCUrl overrides the network's default fullnode endpoint.
	RPCUrl string `json:"rpcUrl,omitempty" validate:"omitempty,url"`

	GeminiAPIKey string `json:"geminiApiKey,omitempty"`
	GeminiModel  string `json:"geminiModel,omitempty"`

	WalrusPublisherURL  string `json:"walrusPublisherUrl,omitempty" validate:"omitempty,url"`
	WalrusAggregatorURL string `json:"walrusAggregatorUrl,omitempty" validate:"omitempty,url"`

	// ContactsPath is the sqlite file backing the contact store. Empty
	// means the store is not opened and contacts are caller-supplied only.
	ContactsPath string `json:"contactsPath,omitempty"`

	DefaultTimeout   time.Duration `json:"defaultTimeout,omitempty"`
	DefaultGasBudget uint64        `json:"defaultGasBudget,omitempty"`
	LogLevel         string        `json:"logLevel,omitempty"`
	EnableMetrics    bool          `json:"enableMetrics,omitempty"`
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{network=%s, rpc=%s}", c.Network, c.RPCUrl)
}
