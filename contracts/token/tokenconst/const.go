/*
Package tokenconst contains constants shared by the Token contract and its
off-chain clients.
*/
package tokenconst

const (
	// RefundDelay is the default time in milliseconds between the last
	// unstake of the owner's funds and the moment they can be refunded.
	RefundDelay = 7 * 24 * 60 * 60 * 1000

	// MaxMemoLen is the maximum length of issue and transfer memo in bytes.
	MaxMemoLen = 256

	// MaxSymbolLen is the maximum length of the symbol code.
	MaxSymbolLen = 7

	// MaxPrecision is the maximum number of decimals of the symbol.
	MaxPrecision = 18

	// MaxAmount is the maximum absolute value of a valid quantity.
	MaxAmount = 1<<62 - 1
)

// Storage layout. Singletons are stored under one-byte keys, tables under
// one-byte prefixes followed by the owner script hash and/or symbol code.
const (
	OwnerKey       = 'o'
	RefundDelayKey = 'd'

	StatsPrefix   = 's'
	AccountPrefix = 'a'
	StakePrefix   = 'k'
	RefundPrefix  = 'r'
	RequestPrefix = 'q'
)

// Notification names.
const (
	CreateEvent          = "Create"
	UpdateTokenEvent     = "UpdateToken"
	IssueEvent           = "Issue"
	TransferEvent        = "Transfer"
	ClaimEvent           = "Claim"
	RecoverEvent         = "Recover"
	StakeEvent           = "Stake"
	UnstakeEvent         = "Unstake"
	RefundScheduledEvent = "RefundScheduled"
	RefundCancelledEvent = "RefundCancelled"
	RefundEvent          = "Refund"
)

// Fault categories. Every fault message thrown by the contract starts with
// one of them.
const (
	AuthorizationError     = "AuthorizationError"
	NotFoundError          = "NotFoundError"
	AlreadyExistsError     = "AlreadyExistsError"
	ValidationError        = "ValidationError"
	CapacityError          = "CapacityError"
	InsufficientFundsError = "InsufficientFundsError"
	NotMaturedError        = "NotMaturedError"
)

// Fault messages.
const (
	ErrAuthorityWitness = AuthorizationError + ": missing authority of the contract owner"
	ErrIssuerWitness    = AuthorizationError + ": missing authority of the issuer"
	ErrOwnerWitness     = AuthorizationError + ": missing authority of the owner"
	ErrSenderWitness    = AuthorizationError + ": missing authority of the sender"
	ErrCommitteeWitness = AuthorizationError + ": only committee can update contract"

	ErrSymbolNotFound  = NotFoundError + ": token with symbol does not exist"
	ErrBalanceNotFound = NotFoundError + ": no balance object found"
	ErrStakeNotFound   = NotFoundError + ": no staked balance"
	ErrRefundNotFound  = NotFoundError + ": no refunding entry found"

	ErrSymbolExists = AlreadyExistsError + ": token with symbol already exists"

	ErrInvalidSymbol        = ValidationError + ": invalid symbol name"
	ErrInvalidSupply        = ValidationError + ": invalid supply"
	ErrNonPositiveMaxSupply = ValidationError + ": max-supply must be positive"
	ErrInvalidQuantity      = ValidationError + ": invalid quantity"
	ErrNonPositiveQuantity  = ValidationError + ": quantity must be positive"
	ErrPrecisionMismatch    = ValidationError + ": symbol precision mismatch"
	ErrMemoTooLong          = ValidationError + ": memo has more than 256 bytes"
	ErrSelfTransfer         = ValidationError + ": cannot transfer to self"
	ErrInvalidRecipient     = ValidationError + ": to account does not exist"
	ErrInvalidAccount       = ValidationError + ": invalid account"
	ErrInvalidRefundDelay   = ValidationError + ": refund delay must be positive"

	ErrSupplyExceeded       = CapacityError + ": quantity exceeds available supply"
	ErrMaxSupplyBelowSupply = CapacityError + ": max-supply cannot be less than available supply"

	ErrOverdrawn = InsufficientFundsError + ": overdrawn balance"

	ErrNotMatured = NotMaturedError + ": refund not yet available"
)
