// Package token contains RPC wrappers for Stake Token contract.
package token

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// RefundRequest is a contract-specific token.RefundRequest type used by its methods.
type RefundRequest struct {
	Owner util.Uint160
	Symbol string
	Due *big.Int
}

// CreateEvent represents "Create" event emitted by the contract.
type CreateEvent struct {
	Symbol string
	Precision *big.Int
	Issuer util.Uint160
	MaxSupply *big.Int
}

// UpdateTokenEvent represents "UpdateToken" event emitted by the contract.
type UpdateTokenEvent struct {
	Symbol string
	Issuer util.Uint160
	MaxSupply *big.Int
}

// IssueEvent represents "Issue" event emitted by the contract.
type IssueEvent struct {
	To util.Uint160
	Amount *big.Int
	Symbol string
	Memo string
}

// TransferEvent represents "Transfer" event emitted by the contract.
type TransferEvent struct {
	From util.Uint160
	To util.Uint160
	Amount *big.Int
	Symbol string
	Memo string
}

// ClaimEvent represents "Claim" event emitted by the contract.
type ClaimEvent struct {
	Owner util.Uint160
	Symbol string
	Payer util.Uint160
}

// RecoverEvent represents "Recover" event emitted by the contract.
type RecoverEvent struct {
	Owner util.Uint160
	Symbol string
	Amount *big.Int
}

// StakeEvent represents "Stake" event emitted by the contract.
type StakeEvent struct {
	Owner util.Uint160
	Symbol string
	Amount *big.Int
}

// UnstakeEvent represents "Unstake" event emitted by the contract.
type UnstakeEvent struct {
	Owner util.Uint160
	Symbol string
	Amount *big.Int
}

// RefundScheduledEvent represents "RefundScheduled" event emitted by the contract.
type RefundScheduledEvent struct {
	Owner util.Uint160
	Symbol string
	Amount *big.Int
	Due *big.Int
}

// RefundCancelledEvent represents "RefundCancelled" event emitted by the contract.
type RefundCancelledEvent struct {
	Owner util.Uint160
	Symbol string
}

// RefundEvent represents "Refund" event emitted by the contract.
type RefundEvent struct {
	Owner util.Uint160
	Symbol string
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Available invokes `available` method of contract.
func (c *ContractReader) Available(owner util.Uint160, symbol string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "available", owner, symbol))
}

// BalanceOf invokes `balanceOf` method of contract.
func (c *ContractReader) BalanceOf(owner util.Uint160, symbol string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "balanceOf", owner, symbol))
}

// IsClaimed invokes `isClaimed` method of contract.
func (c *ContractReader) IsClaimed(owner util.Uint160, symbol string) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isClaimed", owner, symbol))
}

// Issuer invokes `issuer` method of contract.
func (c *ContractReader) Issuer(symbol string) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "issuer", symbol))
}

// MaxSupply invokes `maxSupply` method of contract.
func (c *ContractReader) MaxSupply(symbol string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "maxSupply", symbol))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Payer invokes `payer` method of contract.
func (c *ContractReader) Payer(owner util.Uint160, symbol string) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "payer", owner, symbol))
}

// PendingRefund invokes `pendingRefund` method of contract.
func (c *ContractReader) PendingRefund(owner util.Uint160) (any, error) {
	return func(item stackitem.Item, err error) (any, error) {
		if err != nil {
			return nil, err
		}
		return item.Value(), error(nil)
	} (unwrap.Item(c.invoker.Call(c.hash, "pendingRefund", owner)))
}

// PendingRefunds invokes `pendingRefunds` method of contract.
func (c *ContractReader) PendingRefunds() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "pendingRefunds"))
}

// PendingRefundsExpanded is similar to PendingRefunds (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) PendingRefundsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "pendingRefunds", _numOfIteratorItems))
}

// Precision invokes `precision` method of contract.
func (c *ContractReader) Precision(symbol string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "precision", symbol))
}

// RefundAnchor invokes `refundAnchor` method of contract.
func (c *ContractReader) RefundAnchor(owner util.Uint160, symbol string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "refundAnchor", owner, symbol))
}

// RefundDelay invokes `refundDelay` method of contract.
func (c *ContractReader) RefundDelay() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "refundDelay"))
}

// RefundOf invokes `refundOf` method of contract.
func (c *ContractReader) RefundOf(owner util.Uint160, symbol string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "refundOf", owner, symbol))
}

// StakeOf invokes `stakeOf` method of contract.
func (c *ContractReader) StakeOf(owner util.Uint160, symbol string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "stakeOf", owner, symbol))
}

// Supply invokes `supply` method of contract.
func (c *ContractReader) Supply(symbol string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "supply", symbol))
}

// Symbols invokes `symbols` method of contract.
func (c *ContractReader) Symbols() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "symbols"))
}

// SymbolsExpanded is similar to Symbols (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) SymbolsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "symbols", _numOfIteratorItems))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Claim creates a transaction invoking `claim` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Claim(owner util.Uint160, symbol string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claim", owner, symbol)
}

// ClaimTransaction creates a transaction invoking `claim` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimTransaction(owner util.Uint160, symbol string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claim", owner, symbol)
}

// ClaimUnsigned creates a transaction invoking `claim` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimUnsigned(owner util.Uint160, symbol string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claim", nil, owner, symbol)
}

// Create creates a transaction invoking `create` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Create(issuer util.Uint160, maxSupply *big.Int, symbol string, precision *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "create", issuer, maxSupply, symbol, precision)
}

// CreateTransaction creates a transaction invoking `create` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateTransaction(issuer util.Uint160, maxSupply *big.Int, symbol string, precision *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "create", issuer, maxSupply, symbol, precision)
}

// CreateUnsigned creates a transaction invoking `create` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateUnsigned(issuer util.Uint160, maxSupply *big.Int, symbol string, precision *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "create", nil, issuer, maxSupply, symbol, precision)
}

// Issue creates a transaction invoking `issue` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Issue(to util.Uint160, amount *big.Int, symbol string, precision *big.Int, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "issue", to, amount, symbol, precision, memo)
}

// IssueTransaction creates a transaction invoking `issue` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) IssueTransaction(to util.Uint160, amount *big.Int, symbol string, precision *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "issue", to, amount, symbol, precision, memo)
}

// IssueUnsigned creates a transaction invoking `issue` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) IssueUnsigned(to util.Uint160, amount *big.Int, symbol string, precision *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "issue", nil, to, amount, symbol, precision, memo)
}

// Recover creates a transaction invoking `recover` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Recover(owner util.Uint160, symbol string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "recover", owner, symbol)
}

// RecoverTransaction creates a transaction invoking `recover` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RecoverTransaction(owner util.Uint160, symbol string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "recover", owner, symbol)
}

// RecoverUnsigned creates a transaction invoking `recover` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RecoverUnsigned(owner util.Uint160, symbol string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "recover", nil, owner, symbol)
}

// Refund creates a transaction invoking `refund` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Refund(owner util.Uint160, symbol string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "refund", owner, symbol)
}

// RefundTransaction creates a transaction invoking `refund` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RefundTransaction(owner util.Uint160, symbol string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "refund", owner, symbol)
}

// RefundUnsigned creates a transaction invoking `refund` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RefundUnsigned(owner util.Uint160, symbol string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "refund", nil, owner, symbol)
}

// Stake creates a transaction invoking `stake` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Stake(owner util.Uint160, amount *big.Int, symbol string, precision *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "stake", owner, amount, symbol, precision)
}

// StakeTransaction creates a transaction invoking `stake` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) StakeTransaction(owner util.Uint160, amount *big.Int, symbol string, precision *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "stake", owner, amount, symbol, precision)
}

// StakeUnsigned creates a transaction invoking `stake` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) StakeUnsigned(owner util.Uint160, amount *big.Int, symbol string, precision *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "stake", nil, owner, amount, symbol, precision)
}

// Transfer creates a transaction invoking `transfer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Transfer(from util.Uint160, to util.Uint160, amount *big.Int, symbol string, precision *big.Int, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transfer", from, to, amount, symbol, precision, memo)
}

// TransferTransaction creates a transaction invoking `transfer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferTransaction(from util.Uint160, to util.Uint160, amount *big.Int, symbol string, precision *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transfer", from, to, amount, symbol, precision, memo)
}

// TransferUnsigned creates a transaction invoking `transfer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferUnsigned(from util.Uint160, to util.Uint160, amount *big.Int, symbol string, precision *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transfer", nil, from, to, amount, symbol, precision, memo)
}

// Unstake creates a transaction invoking `unstake` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unstake(owner util.Uint160, amount *big.Int, symbol string, precision *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unstake", owner, amount, symbol, precision)
}

// UnstakeTransaction creates a transaction invoking `unstake` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnstakeTransaction(owner util.Uint160, amount *big.Int, symbol string, precision *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unstake", owner, amount, symbol, precision)
}

// UnstakeUnsigned creates a transaction invoking `unstake` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnstakeUnsigned(owner util.Uint160, amount *big.Int, symbol string, precision *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unstake", nil, owner, amount, symbol, precision)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// UpdateToken creates a transaction invoking `updateToken` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateToken(issuer util.Uint160, maxSupply *big.Int, symbol string, precision *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateToken", issuer, maxSupply, symbol, precision)
}

// UpdateTokenTransaction creates a transaction invoking `updateToken` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTokenTransaction(issuer util.Uint160, maxSupply *big.Int, symbol string, precision *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateToken", issuer, maxSupply, symbol, precision)
}

// UpdateTokenUnsigned creates a transaction invoking `updateToken` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateTokenUnsigned(issuer util.Uint160, maxSupply *big.Int, symbol string, precision *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateToken", nil, issuer, maxSupply, symbol, precision)
}

// itemToRefundRequest converts stack item into *RefundRequest.
func itemToRefundRequest(item stackitem.Item, err error) (*RefundRequest, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RefundRequest)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RefundRequest from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RefundRequest) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	res.Due, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Due: %w", err)
	}

	return nil
}

// CreateEventsFromApplicationLog retrieves a set of all emitted events
// with "Create" name from the provided [result.ApplicationLog].
func CreateEventsFromApplicationLog(log *result.ApplicationLog) ([]*CreateEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CreateEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Create" {
				continue
			}
			event := new(CreateEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CreateEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CreateEvent or
// returns an error if it's not possible to do to so.
func (e *CreateEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Precision, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Precision: %w", err)
	}

	index++
	e.Issuer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Issuer: %w", err)
	}

	index++
	e.MaxSupply, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxSupply: %w", err)
	}

	return nil
}

// UpdateTokenEventsFromApplicationLog retrieves a set of all emitted events
// with "UpdateToken" name from the provided [result.ApplicationLog].
func UpdateTokenEventsFromApplicationLog(log *result.ApplicationLog) ([]*UpdateTokenEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UpdateTokenEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "UpdateToken" {
				continue
			}
			event := new(UpdateTokenEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UpdateTokenEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UpdateTokenEvent or
// returns an error if it's not possible to do to so.
func (e *UpdateTokenEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Issuer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Issuer: %w", err)
	}

	index++
	e.MaxSupply, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxSupply: %w", err)
	}

	return nil
}

// IssueEventsFromApplicationLog retrieves a set of all emitted events
// with "Issue" name from the provided [result.ApplicationLog].
func IssueEventsFromApplicationLog(log *result.ApplicationLog) ([]*IssueEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*IssueEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Issue" {
				continue
			}
			event := new(IssueEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize IssueEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to IssueEvent or
// returns an error if it's not possible to do to so.
func (e *IssueEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Memo, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Memo: %w", err)
	}

	return nil
}

// TransferEventsFromApplicationLog retrieves a set of all emitted events
// with "Transfer" name from the provided [result.ApplicationLog].
func TransferEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Transfer" {
				continue
			}
			event := new(TransferEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferEvent or
// returns an error if it's not possible to do to so.
func (e *TransferEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Memo, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Memo: %w", err)
	}

	return nil
}

// ClaimEventsFromApplicationLog retrieves a set of all emitted events
// with "Claim" name from the provided [result.ApplicationLog].
func ClaimEventsFromApplicationLog(log *result.ApplicationLog) ([]*ClaimEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ClaimEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Claim" {
				continue
			}
			event := new(ClaimEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ClaimEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ClaimEvent or
// returns an error if it's not possible to do to so.
func (e *ClaimEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Payer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Payer: %w", err)
	}

	return nil
}

// RecoverEventsFromApplicationLog retrieves a set of all emitted events
// with "Recover" name from the provided [result.ApplicationLog].
func RecoverEventsFromApplicationLog(log *result.ApplicationLog) ([]*RecoverEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RecoverEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Recover" {
				continue
			}
			event := new(RecoverEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RecoverEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RecoverEvent or
// returns an error if it's not possible to do to so.
func (e *RecoverEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// StakeEventsFromApplicationLog retrieves a set of all emitted events
// with "Stake" name from the provided [result.ApplicationLog].
func StakeEventsFromApplicationLog(log *result.ApplicationLog) ([]*StakeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StakeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Stake" {
				continue
			}
			event := new(StakeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StakeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StakeEvent or
// returns an error if it's not possible to do to so.
func (e *StakeEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// UnstakeEventsFromApplicationLog retrieves a set of all emitted events
// with "Unstake" name from the provided [result.ApplicationLog].
func UnstakeEventsFromApplicationLog(log *result.ApplicationLog) ([]*UnstakeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UnstakeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Unstake" {
				continue
			}
			event := new(UnstakeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UnstakeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UnstakeEvent or
// returns an error if it's not possible to do to so.
func (e *UnstakeEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// RefundScheduledEventsFromApplicationLog retrieves a set of all emitted events
// with "RefundScheduled" name from the provided [result.ApplicationLog].
func RefundScheduledEventsFromApplicationLog(log *result.ApplicationLog) ([]*RefundScheduledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RefundScheduledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RefundScheduled" {
				continue
			}
			event := new(RefundScheduledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RefundScheduledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RefundScheduledEvent or
// returns an error if it's not possible to do to so.
func (e *RefundScheduledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Due, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Due: %w", err)
	}

	return nil
}

// RefundCancelledEventsFromApplicationLog retrieves a set of all emitted events
// with "RefundCancelled" name from the provided [result.ApplicationLog].
func RefundCancelledEventsFromApplicationLog(log *result.ApplicationLog) ([]*RefundCancelledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RefundCancelledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RefundCancelled" {
				continue
			}
			event := new(RefundCancelledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RefundCancelledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RefundCancelledEvent or
// returns an error if it's not possible to do to so.
func (e *RefundCancelledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	return nil
}

// RefundEventsFromApplicationLog retrieves a set of all emitted events
// with "Refund" name from the provided [result.ApplicationLog].
func RefundEventsFromApplicationLog(log *result.ApplicationLog) ([]*RefundEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RefundEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Refund" {
				continue
			}
			event := new(RefundEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RefundEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RefundEvent or
// returns an error if it's not possible to do to so.
func (e *RefundEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
