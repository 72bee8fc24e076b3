package token

import (
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/stake-token-contract/asset"
)

// Symbol returns registered symbol with the given code.
func (c *ContractReader) Symbol(code string) (asset.Symbol, error) {
	prec, err := c.Precision(code)
	if err != nil {
		return asset.Symbol{}, ClassifyFault(err)
	}
	if !prec.IsUint64() || prec.Uint64() > 255 {
		return asset.Symbol{}, fmt.Errorf("invalid precision %s of %s", prec, code)
	}

	return asset.NewSymbol(code, uint8(prec.Uint64()))
}

// Balance returns the whole balance of the owner as an asset.
func (c *ContractReader) Balance(owner util.Uint160, sym asset.Symbol) (asset.Asset, error) {
	return assetOf(c.BalanceOf(owner, sym.Code))(sym)
}

// AvailableBalance returns transferable balance of the owner as an asset.
func (c *ContractReader) AvailableBalance(owner util.Uint160, sym asset.Symbol) (asset.Asset, error) {
	return assetOf(c.Available(owner, sym.Code))(sym)
}

// Staked returns staked funds of the owner as an asset.
func (c *ContractReader) Staked(owner util.Uint160, sym asset.Symbol) (asset.Asset, error) {
	return assetOf(c.StakeOf(owner, sym.Code))(sym)
}

// Refunding returns unstaked funds of the owner waiting for refund as an
// asset.
func (c *ContractReader) Refunding(owner util.Uint160, sym asset.Symbol) (asset.Asset, error) {
	return assetOf(c.RefundOf(owner, sym.Code))(sym)
}

func assetOf(v *big.Int, err error) func(asset.Symbol) (asset.Asset, error) {
	return func(sym asset.Symbol) (asset.Asset, error) {
		if err != nil {
			return asset.Asset{}, ClassifyFault(err)
		}
		if !v.IsInt64() {
			return asset.Asset{}, fmt.Errorf("%w: %s", asset.ErrInvalidAmount, v)
		}

		return asset.New(v.Int64(), sym)
	}
}

// IssueAsset issues the asset to the recipient. Returned errors are
// classified with ClassifyFault.
func (c *Contract) IssueAsset(to util.Uint160, a asset.Asset, memo string) (util.Uint256, uint32, error) {
	h, vub, err := c.Issue(to, big.NewInt(a.Amount), a.Symbol.Code, precisionOf(a), memo)
	return h, vub, ClassifyFault(err)
}

// TransferAsset transfers the asset between the accounts. Returned errors
// are classified with ClassifyFault.
func (c *Contract) TransferAsset(from, to util.Uint160, a asset.Asset, memo string) (util.Uint256, uint32, error) {
	h, vub, err := c.Transfer(from, to, big.NewInt(a.Amount), a.Symbol.Code, precisionOf(a), memo)
	return h, vub, ClassifyFault(err)
}

// StakeAsset stakes the asset of the owner. Returned errors are classified
// with ClassifyFault.
func (c *Contract) StakeAsset(owner util.Uint160, a asset.Asset) (util.Uint256, uint32, error) {
	h, vub, err := c.Stake(owner, big.NewInt(a.Amount), a.Symbol.Code, precisionOf(a))
	return h, vub, ClassifyFault(err)
}

// UnstakeAsset unstakes the asset of the owner. Returned errors are
// classified with ClassifyFault.
func (c *Contract) UnstakeAsset(owner util.Uint160, a asset.Asset) (util.Uint256, uint32, error) {
	h, vub, err := c.Unstake(owner, big.NewInt(a.Amount), a.Symbol.Code, precisionOf(a))
	return h, vub, ClassifyFault(err)
}

func precisionOf(a asset.Asset) *big.Int {
	return big.NewInt(int64(a.Symbol.Precision))
}
