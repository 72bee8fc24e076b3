package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/stake-token-contract/common"
	"github.com/nspcc-dev/stake-token-contract/contracts/token/tokenconst"
)

type (
	// CurrencyStats holds registry record of the token symbol.
	CurrencyStats struct {
		Supply    int
		MaxSupply int
		Precision int
		Issuer    interop.Hash160
	}

	// Account is a balance of the single symbol owned by the account.
	Account struct {
		Balance int
		// Claimed is set when the storage of the record is paid by its
		// owner rather than the issuer.
		Claimed bool
		// Payer is the account charged for the record storage.
		Payer interop.Hash160
	}

	// Lock is a part of the balance excluded from transfers. It is used for
	// both stake and refund records.
	Lock struct {
		Amount    int
		UpdatedAt int
	}

	// RefundRequest is the only pending refund of the owner. It is replaced
	// on every unstake.
	RefundRequest struct {
		Owner  interop.Hash160
		Symbol string
		Due    int
	}
)

const (
	ownerKey       = tokenconst.OwnerKey
	refundDelayKey = tokenconst.RefundDelayKey

	statsPrefix   = tokenconst.StatsPrefix
	accountPrefix = tokenconst.AccountPrefix
	stakePrefix   = tokenconst.StakePrefix
	refundPrefix  = tokenconst.RefundPrefix
	requestPrefix = tokenconst.RequestPrefix
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)

	if isUpdate {
		version := args[len(args)-1].(int)
		common.CheckVersion(version)
		return
	}

	owner := args[0].(interop.Hash160)
	if len(owner) != interop.Hash160Len {
		panic(tokenconst.ErrInvalidAccount)
	}
	storage.Put(ctx, ownerKey, owner)

	if len(args) > 1 && args[1] != nil {
		delay := args[1].(int)
		if delay <= 0 {
			panic(tokenconst.ErrInvalidRefundDelay)
		}
		storage.Put(ctx, refundDelayKey, delay)
	}

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(tokenconst.ErrCommitteeWitness)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Owner returns the account allowed to register and update token symbols.
func Owner() interop.Hash160 {
	return contractOwner(storage.GetReadOnlyContext())
}

// Create registers a new token symbol with the given issuer and maximum
// supply. It can be invoked only by the contract owner.
//
// Produces Create notification.
func Create(issuer interop.Hash160, maxSupply int, symbol string, precision int) {
	ctx := storage.GetContext()

	common.CheckWitness(contractOwner(ctx), tokenconst.ErrAuthorityWitness)

	checkSymbol(symbol, precision)
	checkAccount(issuer)
	checkMaxSupply(maxSupply)

	key := statsKey(symbol)
	if storage.Get(ctx, key) != nil {
		panic(tokenconst.ErrSymbolExists)
	}

	common.SetSerialized(ctx, key, CurrencyStats{
		Supply:    0,
		MaxSupply: maxSupply,
		Precision: precision,
		Issuer:    issuer,
	})

	runtime.Notify(tokenconst.CreateEvent, symbol, precision, issuer, maxSupply)
}

// UpdateToken changes the issuer and the maximum supply of the registered
// symbol. New maximum supply can't be less than the current supply. It can be
// invoked only by the contract owner.
//
// Produces UpdateToken notification.
func UpdateToken(issuer interop.Hash160, maxSupply int, symbol string, precision int) {
	ctx := storage.GetContext()

	common.CheckWitness(contractOwner(ctx), tokenconst.ErrAuthorityWitness)

	checkSymbol(symbol, precision)
	checkAccount(issuer)
	checkMaxSupply(maxSupply)

	st := getStats(ctx, symbol)
	if st.Supply > maxSupply {
		panic(tokenconst.ErrMaxSupplyBelowSupply)
	}
	if st.Precision != precision {
		panic(tokenconst.ErrPrecisionMismatch)
	}

	st.MaxSupply = maxSupply
	st.Issuer = issuer
	common.SetSerialized(ctx, statsKey(symbol), st)

	runtime.Notify(tokenconst.UpdateTokenEvent, symbol, issuer, maxSupply)
}

// Issue increases supply of the symbol and credits the issuer with an
// unclaimed balance. When the recipient is not the issuer, issued amount is
// then transferred from the issuer to the recipient with the same memo. It can
// be invoked only by the issuer of the symbol.
//
// Produces Issue and, for foreign recipients, Transfer notifications.
func Issue(to interop.Hash160, amount int, symbol string, precision int, memo string) {
	ctx := storage.GetContext()

	checkSymbol(symbol, precision)
	checkMemo(memo)
	if len(to) != interop.Hash160Len {
		panic(tokenconst.ErrInvalidRecipient)
	}

	st := getStats(ctx, symbol)
	common.CheckWitness(st.Issuer, tokenconst.ErrIssuerWitness)

	checkQuantity(amount)
	if st.Precision != precision {
		panic(tokenconst.ErrPrecisionMismatch)
	}
	if amount > st.MaxSupply-st.Supply {
		panic(tokenconst.ErrSupplyExceeded)
	}

	st.Supply += amount
	common.SetSerialized(ctx, statsKey(symbol), st)

	credit(ctx, st.Issuer, symbol, amount, st.Issuer, false)

	runtime.Notify(tokenconst.IssueEvent, to, amount, symbol, memo)

	if !to.Equals(st.Issuer) {
		transfer(ctx, st.Issuer, to, amount, symbol, precision, memo)
	}
}

// Transfer moves amount of the symbol from one account to another. It can be
// invoked only by the sender. Sender's balance gets claimed by the sender. If
// the sender is not the issuer, recipient's balance is claimed too, the
// sender pays for it.
//
// Produces Transfer notification.
func Transfer(from, to interop.Hash160, amount int, symbol string, precision int, memo string) {
	ctx := storage.GetContext()

	if !common.IsUsableAddress(from) {
		panic(tokenconst.ErrSenderWitness)
	}
	checkSymbol(symbol, precision)

	transfer(ctx, from, to, amount, symbol, precision, memo)
}

// Claim makes the owner pay for the storage of its balance record. It can be
// invoked only by the owner. Claiming an already claimed balance does nothing.
//
// Produces Claim notification if balance was not claimed before.
func Claim(owner interop.Hash160, symbol string) {
	checkAccount(owner)

	ctx := storage.GetContext()

	checkSymbolCode(symbol)
	common.CheckWitness(owner, tokenconst.ErrOwnerWitness)

	doClaim(ctx, owner, symbol, owner)
}

// Recover returns unclaimed balance of the owner to the issuer. It can be
// invoked only by the issuer of the symbol. Missing and claimed balances are
// left untouched without an error.
//
// Produces Recover notification if anything was recovered.
func Recover(owner interop.Hash160, symbol string) {
	checkAccount(owner)

	ctx := storage.GetContext()

	checkSymbolCode(symbol)

	st := getStats(ctx, symbol)
	common.CheckWitness(st.Issuer, tokenconst.ErrIssuerWitness)

	data := storage.Get(ctx, accountKey(owner, symbol))
	if data == nil {
		return
	}

	acc := std.Deserialize(data.([]byte)).(Account)
	if acc.Claimed {
		return
	}

	debit(ctx, owner, symbol, acc.Balance)
	credit(ctx, st.Issuer, symbol, acc.Balance, st.Issuer, true)

	runtime.Notify(tokenconst.RecoverEvent, owner, symbol, acc.Balance)
}

// Stake locks amount of the owner's available balance. It can be invoked only
// by the owner.
//
// Produces Stake notification.
func Stake(owner interop.Hash160, amount int, symbol string, precision int) {
	checkAccount(owner)

	ctx := storage.GetContext()

	common.CheckWitness(owner, tokenconst.ErrOwnerWitness)
	checkSymbol(symbol, precision)

	st := getStats(ctx, symbol)
	checkQuantity(amount)
	if st.Precision != precision {
		panic(tokenconst.ErrPrecisionMismatch)
	}

	acc := getAccount(ctx, owner, symbol)
	if acc.Balance-locked(ctx, owner, symbol) < amount {
		panic(tokenconst.ErrOverdrawn)
	}

	key := lockKey(stakePrefix, owner, symbol)
	stk := getLock(ctx, key)
	stk.Amount += amount
	stk.UpdatedAt = runtime.GetTime()
	common.SetSerialized(ctx, key, stk)

	runtime.Notify(tokenconst.StakeEvent, owner, symbol, amount)
}

// Unstake moves amount of the owner's stake to the refunding state and
// schedules the refund. The whole refunding amount matures after the refund
// delay passes since the latest unstake. Previously scheduled refund of the
// owner (of any symbol) is cancelled. It can be invoked only by the owner.
//
// Produces Unstake, RefundScheduled and, if there was a pending refund,
// RefundCancelled notifications.
func Unstake(owner interop.Hash160, amount int, symbol string, precision int) {
	checkAccount(owner)

	ctx := storage.GetContext()

	common.CheckWitness(owner, tokenconst.ErrOwnerWitness)
	checkSymbol(symbol, precision)

	st := getStats(ctx, symbol)
	checkQuantity(amount)
	if st.Precision != precision {
		panic(tokenconst.ErrPrecisionMismatch)
	}

	getAccount(ctx, owner, symbol)

	stakeKey := lockKey(stakePrefix, owner, symbol)
	stk := getLock(ctx, stakeKey)
	if stk.Amount == 0 {
		panic(tokenconst.ErrStakeNotFound)
	}
	if amount > stk.Amount {
		panic(tokenconst.ErrOverdrawn)
	}

	now := runtime.GetTime()

	refundKey := lockKey(refundPrefix, owner, symbol)
	ref := getLock(ctx, refundKey)
	ref.Amount += amount
	ref.UpdatedAt = now
	common.SetSerialized(ctx, refundKey, ref)

	if amount < stk.Amount {
		stk.Amount -= amount
		stk.UpdatedAt = now
		common.SetSerialized(ctx, stakeKey, stk)
	} else {
		storage.Delete(ctx, stakeKey)
	}

	runtime.Notify(tokenconst.UnstakeEvent, owner, symbol, amount)

	scheduleRefund(ctx, owner, symbol, ref.Amount, now+refundDelay(ctx))
}

// Refund releases matured refunding funds of the owner. Anyone can invoke it.
//
// Produces Refund notification.
func Refund(owner interop.Hash160, symbol string) {
	checkAccount(owner)

	ctx := storage.GetContext()

	checkSymbolCode(symbol)

	key := lockKey(refundPrefix, owner, symbol)
	ref := getLock(ctx, key)
	if ref.Amount == 0 {
		panic(tokenconst.ErrRefundNotFound)
	}
	if ref.UpdatedAt+refundDelay(ctx) > runtime.GetTime() {
		panic(tokenconst.ErrNotMatured)
	}

	storage.Delete(ctx, key)

	reqKey := requestKey(owner)
	req := common.GetSerialized(ctx, reqKey)
	if req != nil && req.(RefundRequest).Symbol == symbol {
		storage.Delete(ctx, reqKey)
	}

	runtime.Notify(tokenconst.RefundEvent, owner, symbol, ref.Amount)
}

// Supply returns current supply of the symbol.
func Supply(symbol string) int {
	return getStats(storage.GetReadOnlyContext(), symbol).Supply
}

// MaxSupply returns maximum supply of the symbol.
func MaxSupply(symbol string) int {
	return getStats(storage.GetReadOnlyContext(), symbol).MaxSupply
}

// Precision returns number of decimals of the symbol.
func Precision(symbol string) int {
	return getStats(storage.GetReadOnlyContext(), symbol).Precision
}

// Issuer returns issuer of the symbol.
func Issuer(symbol string) interop.Hash160 {
	return getStats(storage.GetReadOnlyContext(), symbol).Issuer
}

// Symbols returns iterator over all registered symbol codes.
func Symbols() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{statsPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// BalanceOf returns the whole balance of the owner including staked and
// refunding funds.
func BalanceOf(owner interop.Hash160, symbol string) int {
	checkAccount(owner)

	acc := common.GetSerialized(storage.GetReadOnlyContext(), accountKey(owner, symbol))
	if acc == nil {
		return 0
	}

	return acc.(Account).Balance
}

// Available returns the part of the owner's balance that can be transferred
// or staked.
func Available(owner interop.Hash160, symbol string) int {
	checkAccount(owner)

	ctx := storage.GetReadOnlyContext()

	acc := common.GetSerialized(ctx, accountKey(owner, symbol))
	if acc == nil {
		return 0
	}

	return acc.(Account).Balance - locked(ctx, owner, symbol)
}

// IsClaimed checks whether the owner pays for its balance record.
func IsClaimed(owner interop.Hash160, symbol string) bool {
	checkAccount(owner)

	acc := common.GetSerialized(storage.GetReadOnlyContext(), accountKey(owner, symbol))
	if acc == nil {
		return false
	}

	return acc.(Account).Claimed
}

// Payer returns the account charged for the owner's balance record or nil if
// there is no record.
func Payer(owner interop.Hash160, symbol string) interop.Hash160 {
	checkAccount(owner)

	acc := common.GetSerialized(storage.GetReadOnlyContext(), accountKey(owner, symbol))
	if acc == nil {
		return nil
	}

	return acc.(Account).Payer
}

// StakeOf returns staked amount of the owner.
func StakeOf(owner interop.Hash160, symbol string) int {
	checkAccount(owner)
	return getLock(storage.GetReadOnlyContext(), lockKey(stakePrefix, owner, symbol)).Amount
}

// RefundOf returns refunding amount of the owner.
func RefundOf(owner interop.Hash160, symbol string) int {
	checkAccount(owner)
	return getLock(storage.GetReadOnlyContext(), lockKey(refundPrefix, owner, symbol)).Amount
}

// RefundAnchor returns time (in milliseconds) of the latest unstake
// contributing to the owner's refund, zero if there is nothing to refund.
func RefundAnchor(owner interop.Hash160, symbol string) int {
	checkAccount(owner)
	return getLock(storage.GetReadOnlyContext(), lockKey(refundPrefix, owner, symbol)).UpdatedAt
}

// RefundDelay returns time in milliseconds that refunding funds wait before
// release.
func RefundDelay() int {
	return refundDelay(storage.GetReadOnlyContext())
}

// PendingRefund returns RefundRequest scheduled for the owner or nil.
func PendingRefund(owner interop.Hash160) any {
	checkAccount(owner)
	return common.GetSerialized(storage.GetReadOnlyContext(), requestKey(owner))
}

// PendingRefunds returns iterator over all scheduled RefundRequest structures.
func PendingRefunds() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{requestPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

func transfer(ctx storage.Context, from, to interop.Hash160, amount int, symbol string, precision int, memo string) {
	if from.Equals(to) {
		panic(tokenconst.ErrSelfTransfer)
	}
	if len(to) != interop.Hash160Len {
		panic(tokenconst.ErrInvalidRecipient)
	}

	st := getStats(ctx, symbol)

	checkQuantity(amount)
	if st.Precision != precision {
		panic(tokenconst.ErrPrecisionMismatch)
	}
	checkMemo(memo)

	doClaim(ctx, from, symbol, from)
	debit(ctx, from, symbol, amount)

	fromIssuer := from.Equals(st.Issuer)
	credit(ctx, to, symbol, amount, from, !fromIssuer)

	// issuer keeps paying for the freshly distributed balances
	if !fromIssuer {
		doClaim(ctx, to, symbol, from)
	}

	runtime.Notify(tokenconst.TransferEvent, from, to, amount, symbol, memo)
}

func doClaim(ctx storage.Context, owner interop.Hash160, symbol string, payer interop.Hash160) {
	acc := getAccount(ctx, owner, symbol)
	if acc.Claimed {
		return
	}

	acc.Claimed = true
	acc.Payer = payer
	common.SetSerialized(ctx, accountKey(owner, symbol), acc)

	runtime.Notify(tokenconst.ClaimEvent, owner, symbol, payer)
}

func credit(ctx storage.Context, owner interop.Hash160, symbol string, amount int, payer interop.Hash160, claimed bool) {
	key := accountKey(owner, symbol)

	data := storage.Get(ctx, key)
	if data == nil {
		common.SetSerialized(ctx, key, Account{
			Balance: amount,
			Claimed: claimed,
			Payer:   payer,
		})
		return
	}

	acc := std.Deserialize(data.([]byte)).(Account)
	acc.Balance += amount
	common.SetSerialized(ctx, key, acc)
}

func debit(ctx storage.Context, owner interop.Hash160, symbol string, amount int) {
	acc := getAccount(ctx, owner, symbol)
	if acc.Balance-locked(ctx, owner, symbol) < amount {
		panic(tokenconst.ErrOverdrawn)
	}

	key := accountKey(owner, symbol)
	if acc.Balance == amount {
		storage.Delete(ctx, key)
		return
	}

	acc.Balance -= amount
	common.SetSerialized(ctx, key, acc)
}

// locked returns staked and refunding funds of the owner.
func locked(ctx storage.Context, owner interop.Hash160, symbol string) int {
	stk := getLock(ctx, lockKey(stakePrefix, owner, symbol))
	ref := getLock(ctx, lockKey(refundPrefix, owner, symbol))

	return stk.Amount + ref.Amount
}

func scheduleRefund(ctx storage.Context, owner interop.Hash160, symbol string, amount, due int) {
	key := requestKey(owner)

	prev := common.GetSerialized(ctx, key)
	if prev != nil {
		runtime.Notify(tokenconst.RefundCancelledEvent, owner, prev.(RefundRequest).Symbol)
	}

	common.SetSerialized(ctx, key, RefundRequest{
		Owner:  owner,
		Symbol: symbol,
		Due:    due,
	})

	runtime.Notify(tokenconst.RefundScheduledEvent, owner, symbol, amount, due)
}

func contractOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func refundDelay(ctx storage.Context) int {
	delay := storage.Get(ctx, refundDelayKey)
	if delay != nil {
		return delay.(int)
	}

	return tokenconst.RefundDelay
}

func getStats(ctx storage.Context, symbol string) CurrencyStats {
	st := common.GetSerialized(ctx, statsKey(symbol))
	if st == nil {
		panic(tokenconst.ErrSymbolNotFound)
	}

	return st.(CurrencyStats)
}

func getAccount(ctx storage.Context, owner interop.Hash160, symbol string) Account {
	acc := common.GetSerialized(ctx, accountKey(owner, symbol))
	if acc == nil {
		panic(tokenconst.ErrBalanceNotFound)
	}

	return acc.(Account)
}

func getLock(ctx storage.Context, key []byte) Lock {
	l := common.GetSerialized(ctx, key)
	if l == nil {
		return Lock{}
	}

	return l.(Lock)
}

func checkSymbol(symbol string, precision int) {
	if precision < 0 || precision > tokenconst.MaxPrecision {
		panic(tokenconst.ErrInvalidSymbol)
	}

	checkSymbolCode(symbol)
}

func checkSymbolCode(symbol string) {
	code := []byte(symbol)
	if len(code) == 0 || len(code) > tokenconst.MaxSymbolLen {
		panic(tokenconst.ErrInvalidSymbol)
	}

	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			panic(tokenconst.ErrInvalidSymbol)
		}
	}
}

func checkMaxSupply(maxSupply int) {
	if maxSupply > tokenconst.MaxAmount {
		panic(tokenconst.ErrInvalidSupply)
	}
	if maxSupply <= 0 {
		panic(tokenconst.ErrNonPositiveMaxSupply)
	}
}

func checkQuantity(amount int) {
	if amount > tokenconst.MaxAmount || amount < -tokenconst.MaxAmount {
		panic(tokenconst.ErrInvalidQuantity)
	}
	if amount <= 0 {
		panic(tokenconst.ErrNonPositiveQuantity)
	}
}

func checkMemo(memo string) {
	if len(memo) > tokenconst.MaxMemoLen {
		panic(tokenconst.ErrMemoTooLong)
	}
}

func checkAccount(acc interop.Hash160) {
	if len(acc) != interop.Hash160Len {
		panic(tokenconst.ErrInvalidAccount)
	}
}

func statsKey(symbol string) []byte {
	return append([]byte{statsPrefix}, []byte(symbol)...)
}

func accountKey(owner interop.Hash160, symbol string) []byte {
	key := append([]byte{accountPrefix}, owner...)
	return append(key, []byte(symbol)...)
}

func lockKey(prefix byte, owner interop.Hash160, symbol string) []byte {
	key := append([]byte{prefix}, owner...)
	return append(key, []byte(symbol)...)
}

func requestKey(owner interop.Hash160) []byte {
	return append([]byte{requestPrefix}, owner...)
}
