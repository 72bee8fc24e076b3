/*
Package deploy synchronizes Token contract on the Neo blockchain with its
local NEF and manifest: the contract is deployed if it is missing and updated
if the on-chain version is older.
*/
package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/neo"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/stake-token-contract/common"
	"github.com/nspcc-dev/stake-token-contract/rpc/token"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the Token contract deployment. Blockchain must also
// allow awaiting transactions (see [actor.Actor.Wait]), *rpcclient.WSClient
// does.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// TokenContractPrm groups deployment parameters of the Token contract.
type TokenContractPrm struct {
	Common CommonDeployPrm

	// Address of the already deployed contract. If zero, the address is
	// calculated from the local account and the NEF.
	Address util.Uint160

	// Contract owner allowed to register token symbols. Local account is used
	// if zero.
	Owner util.Uint160

	// Refund delay set on deployment. Contract default is used if zero.
	RefundDelay time.Duration

	// Version of the local contract, common.Version if zero.
	Version int
}

// Prm groups all parameters of the Token contract deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// It pays for the transactions.
	LocalAccount *wallet.Account

	// Committee account co-signing the contract update: the contract accepts
	// code updates witnessed by the committee only. Must be unlocked and able
	// to make the committee witness alone. If nil, LocalAccount must be the
	// committee account itself (e.g. in single-node networks). Not used on the
	// first deployment.
	Committee *wallet.Account

	Token TokenContractPrm
}

type syncAction uint8

const (
	actionNone syncAction = iota
	actionDeploy
	actionUpdate
)

// Deploy makes sure the Token contract described by Prm.Token is present on
// the chain in the actual version and returns its address.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	if prm.LocalAccount == nil {
		return util.Uint160{}, errMissingAccount
	}
	if prm.Logger == nil {
		prm.Logger = zap.NewNop()
	}

	localVersion := prm.Token.Version
	if localVersion == 0 {
		localVersion = common.Version
	}

	addr := prm.Token.Address
	if addr.Equals(util.Uint160{}) {
		addr = state.CreateContractHash(prm.LocalAccount.ScriptHash(), prm.Token.Common.NEF.Checksum, prm.Token.Common.Manifest.Name)
	}

	l := prm.Logger.With(zap.Stringer("address", addr))

	act, err := newActor(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	var onChainVersion *big.Int

	_, err = prm.Blockchain.GetContractStateByHash(addr)
	if err != nil {
		if !isErrContractNotFound(err) {
			return util.Uint160{}, fmt.Errorf("get state of the contract: %w", err)
		}
	} else {
		onChainVersion, err = token.NewReader(act, addr).Version()
		if err != nil {
			return util.Uint160{}, fmt.Errorf("get version of the on-chain contract: %w", err)
		}
	}

	action, err := planSync(onChainVersion, localVersion)
	if err != nil {
		return util.Uint160{}, err
	}

	if err := ctx.Err(); err != nil {
		return util.Uint160{}, err
	}

	switch action {
	case actionNone:
		l.Info("Token contract is up to date", zap.Int("version", localVersion))
		return addr, nil
	case actionDeploy:
		owner := prm.Token.Owner
		if owner.Equals(util.Uint160{}) {
			owner = prm.LocalAccount.ScriptHash()
		}

		l.Info("deploying Token contract...", zap.Stringer("owner", owner))

		res, err := act.Wait(management.New(act).Deploy(&prm.Token.Common.NEF, &prm.Token.Common.Manifest, deployData(owner, prm.Token.RefundDelay)))
		if err = checkExec(res, err); err != nil {
			return util.Uint160{}, fmt.Errorf("deploy Token contract: %w", err)
		}

		l.Info("Token contract successfully deployed", zap.Stringer("tx", res.Container))
	case actionUpdate:
		l.Info("updating Token contract...", zap.Stringer("from", onChainVersion), zap.Int("to", localVersion))

		rawNEF, err := prm.Token.Common.NEF.Bytes()
		if err != nil {
			return util.Uint160{}, fmt.Errorf("encode NEF: %w", err)
		}

		rawManifest, err := json.Marshal(prm.Token.Common.Manifest)
		if err != nil {
			return util.Uint160{}, fmt.Errorf("encode manifest: %w", err)
		}

		committee, err := committeeAddress(neo.NewReader(act))
		if err != nil {
			return util.Uint160{}, err
		}

		updater, err := updateSigner(prm.LocalAccount, prm.Committee, committee)
		if err != nil {
			return util.Uint160{}, err
		}

		updAct := act
		if updater != prm.LocalAccount {
			updAct, err = newActor(prm.Blockchain, prm.LocalAccount, updater)
			if err != nil {
				return util.Uint160{}, fmt.Errorf("init transaction sender with committee co-signer: %w", err)
			}
		}

		res, err := updAct.Wait(token.New(updAct, addr).Update(rawNEF, rawManifest, nil))
		if err = checkExec(res, token.ClassifyFault(err)); err != nil {
			return util.Uint160{}, fmt.Errorf("update Token contract: %w", err)
		}

		l.Info("Token contract successfully updated", zap.Stringer("tx", res.Container))
	}

	return addr, nil
}

// newActor returns actor sending transactions paid by the first account and
// witnessed by all of them.
func newActor(b Blockchain, accs ...*wallet.Account) (*actor.Actor, error) {
	signers := make([]actor.SignerAccount, len(accs))
	for i := range accs {
		signers[i] = actor.SignerAccount{
			Signer: transaction.Signer{
				Account: accs[i].ScriptHash(),
				Scopes:  transaction.CalledByEntry,
			},
			Account: accs[i],
		}
	}

	return actor.NewTuned(b, signers, actor.Options{
		CheckerModifier: roundedNonceModifier(b.GetBlockCount),
	})
}

// committeeReader provides public keys of the current committee.
// [neo.ContractReader] implements it.
type committeeReader interface {
	GetCommittee() (keys.PublicKeys, error)
}

// committeeAddress returns the M = N/2+1 multisignature address of the
// current committee.
func committeeAddress(r committeeReader) (util.Uint160, error) {
	pubs, err := r.GetCommittee()
	if err != nil {
		return util.Uint160{}, fmt.Errorf("get committee: %w", err)
	}
	if len(pubs) == 0 {
		return util.Uint160{}, errors.New("empty committee")
	}

	script, err := smartcontract.CreateMajorityMultiSigRedeemScript(pubs)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("make committee script: %w", err)
	}

	return hash.Hash160(script), nil
}

// updateSigner returns the account making committee witness for the update:
// the committee account if set, the local one otherwise. Returned account is
// the local one if both have the same address.
func updateSigner(local, committeeAcc *wallet.Account, committee util.Uint160) (*wallet.Account, error) {
	res := local
	if committeeAcc != nil && !committeeAcc.ScriptHash().Equals(local.ScriptHash()) {
		res = committeeAcc
	}

	if !res.ScriptHash().Equals(committee) {
		return nil, fmt.Errorf("%w: account %s, committee %s",
			errNotCommittee, res.ScriptHash().StringLE(), committee.StringLE())
	}

	return res, nil
}

// planSync decides what to do with the contract given the version deployed on
// chain (nil if the contract is missing) and the local one.
func planSync(onChain *big.Int, local int) (syncAction, error) {
	switch {
	case onChain == nil:
		return actionDeploy, nil
	case !onChain.IsInt64():
		return actionNone, fmt.Errorf("invalid on-chain contract version %s", onChain)
	case onChain.Int64() < int64(local):
		return actionUpdate, nil
	case onChain.Int64() > int64(local):
		return actionNone, fmt.Errorf("on-chain contract version %s is newer than local %d", onChain, local)
	default:
		return actionNone, nil
	}
}

// deployData builds data argument of the contract _deploy method.
func deployData(owner util.Uint160, refundDelay time.Duration) []any {
	if refundDelay == 0 {
		return []any{owner, nil}
	}

	return []any{owner, refundDelay.Milliseconds()}
}

func checkExec(res *state.AppExecResult, err error) error {
	if err != nil {
		return err
	}
	if res.VMState != vmstate.Halt {
		return fmt.Errorf("transaction %s failed: %s", res.Container.StringLE(), res.FaultException)
	}

	return nil
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}

// returns actor.TransactionCheckerModifier which checks that invocation
// finished with 'HALT' state and, if so, sets transaction's nonce and
// ValidUntilBlock to 100*N and 100*(N+1) correspondingly, where
// 100*N <= current height < 100*(N+1). Repeated attempts within the same span
// produce the same transaction.
func roundedNonceModifier(getBlockchainHeight func() (uint32, error)) actor.TransactionCheckerModifier {
	return func(r *result.Invoke, tx *transaction.Transaction) error {
		err := actor.DefaultCheckerModifier(r, tx)
		if err != nil {
			return err
		}

		curHeight, err := getBlockchainHeight()
		if err != nil {
			return fmt.Errorf("get blockchain height: %w", err)
		}

		const span = 100
		n := curHeight / span

		tx.Nonce = n * span

		if math.MaxUint32-span > tx.Nonce {
			tx.ValidUntilBlock = tx.Nonce + span
		} else {
			tx.ValidUntilBlock = math.MaxUint32
		}

		return nil
	}
}

var (
	errMissingAccount = errors.New("missing local account")
	errNotCommittee   = errors.New("contract update must be witnessed by the committee")
)
