package txbuilder

import (
	"github.com/Divine-mercyx/MILO/types"
	"github.com/Divine-mercyx/MILO/utils"
)

// Fixed on-chain entry points. The staking system object and entry point
// are protocol constants; the NFT and DEX packages are deployment-specific
// and overridable on the Builder.
const (
	StakeTarget       = "0x3::sui_system::request_add_stake"
	SuiSystemStateID  = "0x5"
	DefaultNFTPackage = "0xNFT_PACKAGE_ID"
	DefaultDEXPackage = "0xDEX_PACKAGE"

	defaultMintName        = "My NFT"
	defaultMintDescription = "Minted with MILO"
	defaultMintAssetURL    = "https://example.com/nft.png"
)

// Builder is the single entry point converting a valid Intent into an
// unsigned transaction. It performs no contact lookup and no network
// calls; every failure it reports is a local validation failure.
type Builder struct {
	nftPackage       string
	dexPackage       string
	defaultGasBudget uint64
}

// NewBuilder creates a builder with the given deployment packages. Empty
// package IDs select the defaults; a zero gas budget leaves estimation to
// the node unless the intent overrides it.
func NewBuilder(nftPackage, dexPackage string, defaultGasBudget uint64) *Builder {
	if nftPackage == "" {
		nftPackage = DefaultNFTPackage
	}
	if dexPackage == "" {
		dexPackage = DefaultDEXPackage
	}
	return &Builder{
		nftPackage:       nftPackage,
		dexPackage:       dexPackage,
		defaultGasBudget: defaultGasBudget,
	}
}

// Build dispatches strictly on the intent's action. query-balance is not
// buildable: reads never produce a signable payload, and the caller is
// directed to the balance query path instead.
func (b *Builder) Build(intent *types.Intent) (*Transaction, error) {
	if intent == nil {
		return nil, types.NewValidationError("intent is required")
	}

	if intent.Asset != "" {
		if _, ok := types.ParseAsset(string(intent.Asset)); !ok {
			return nil, types.NewValidationError("unsupported asset: %s", intent.Asset)
		}
	}

	tx := New()
	switch {
	case intent.GasBudget > 0:
		tx.SetGasBudget(intent.GasBudget)
	case b.defaultGasBudget > 0:
		tx.SetGasBudget(b.defaultGasBudget)
	}

	switch intent.Action {
	case types.ActionTransfer:
		if err := b.buildTransfer(tx, intent); err != nil {
			return nil, err
		}
	case types.ActionMint:
		b.buildMint(tx, intent)
	case types.ActionStake:
		if err := b.buildStake(tx, intent); err != nil {
			return nil, err
		}
	case types.ActionSwap:
		if err := b.buildSwap(tx, intent); err != nil {
			return nil, err
		}
	case types.ActionQueryBalance:
		return nil, &types.MiloError{
			Code:    types.ErrUnsupportedAction,
			Message: "query-balance does not build a transaction; use the balance query path",
		}
	default:
		return nil, types.NewUnsupportedActionError(intent.Action)
	}

	return tx, nil
}

// buildTransfer splits the required MIST off the payer's gas coin and
// transfers it to the recipient as a single object transfer.
func (b *Builder) buildTransfer(tx *Transaction, intent *types.Intent) error {
	if intent.Recipient == "" {
		return types.NewValidationError("recipient is required for transfer")
	}

	mist, err := baseAmount(intent, "transfer")
	if err != nil {
		return err
	}

	coins := tx.SplitCoins(Gas(), []uint64{mist})
	tx.TransferObjects(coins, intent.Recipient)
	return nil
}

// buildMint is more permissive than transfer: defaults substitute for
// missing metadata rather than failing. Content upload happens before the
// builder runs; only the resolved URL is consumed here.
func (b *Builder) buildMint(tx *Transaction, intent *types.Intent) {
	name := intent.Name
	if name == "" {
		name = defaultMintName
	}
	description := intent.Description
	if description == "" {
		description = defaultMintDescription
	}
	assetURL := intent.AssetURL
	if assetURL == "" {
		assetURL = defaultMintAssetURL
	}

	tx.MoveCall(b.nftPackage+"::nft_module::mint",
		PureString(name),
		PureString(description),
		PureString(assetURL),
	)
}

// buildStake splits the stake amount from the gas coin and issues a
// stake-request call against the staking system object. The validator
// address is carried in Recipient.
func (b *Builder) buildStake(tx *Transaction, intent *types.Intent) error {
	if intent.Recipient == "" {
		return types.NewValidationError("validator address is required for stake")
	}

	mist, err := baseAmount(intent, "stake")
	if err != nil {
		return err
	}

	coins := tx.SplitCoins(Gas(), []uint64{mist})
	tx.MoveCall(StakeTarget,
		ObjectArg(SuiSystemStateID),
		ResultArg(coins[0]),
		PureAddress(intent.Recipient),
	)
	return nil
}

// buildSwap passes both asset symbols and the base-unit amount to the
// on-chain swap entry point. No price or slippage computation happens at
// this layer.
func (b *Builder) buildSwap(tx *Transaction, intent *types.Intent) error {
	if intent.Asset == "" || intent.Target == "" {
		return types.NewValidationError("swap requires both asset and target")
	}
	if _, ok := types.ParseAsset(string(intent.Target)); !ok {
		return types.NewValidationError("unsupported asset: %s", intent.Target)
	}

	mist, err := baseAmount(intent, "swap")
	if err != nil {
		return err
	}

	tx.MoveCall(b.dexPackage+"::swap_module::swap_exact_input",
		PureString(string(intent.Asset)),
		PureString(string(intent.Target)),
		PureU64(mist),
	)
	return nil
}

// baseAmount validates positivity and converts the human-readable amount
// to MIST with exact integer arithmetic on the scaled value.
func baseAmount(intent *types.Intent, action string) (uint64, error) {
	amount := intent.AmountValue()
	if amount.Sign() <= 0 {
		return 0, types.NewValidationError("%s amount must be greater than 0", action)
	}

	scaled := utils.ToBaseUnits(amount, utils.SuiDecimals)
	if !scaled.IsUint64() {
		return 0, types.NewValidationError("%s amount overflows the chain's integer range", action)
	}
	return scaled.Uint64(), nil
}
