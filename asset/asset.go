/*
Package asset provides the off-chain representation of token symbols and
quantities used by the Token contract.

Text form of an asset is the amount with exactly as many decimals as the
symbol precision followed by the symbol code:

	100.0000 TOK
*/
package asset

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/stake-token-contract/contracts/token/tokenconst"
)

// MaxAmount is the maximum absolute value of a valid asset amount.
const MaxAmount = tokenconst.MaxAmount

var (
	// ErrInvalidSymbol is returned for symbols with bad code or precision.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrInvalidAmount is returned for amounts out of the valid range.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrSymbolMismatch is returned on arithmetic of assets with different symbols.
	ErrSymbolMismatch = errors.New("symbol mismatch")
	// ErrOverflow is returned when the result of arithmetic is out of range.
	ErrOverflow = errors.New("amount overflow")
)

// Symbol is a token symbol: code of 1 to 7 upper-case latin letters and the
// number of decimals.
type Symbol struct {
	Code      string
	Precision uint8
}

// Asset is an amount of the token in the minimal units of its symbol.
type Asset struct {
	Amount int64
	Symbol Symbol
}

// NewSymbol returns valid Symbol with the given code and precision.
func NewSymbol(code string, precision uint8) (Symbol, error) {
	s := Symbol{Code: code, Precision: precision}
	if !s.IsValid() {
		return Symbol{}, fmt.Errorf("%w: %q with precision %d", ErrInvalidSymbol, code, precision)
	}

	return s, nil
}

// ParseSymbol parses symbol in the "<precision>,<code>" form, e.g. "4,TOK".
func ParseSymbol(s string) (Symbol, error) {
	prec, code, ok := strings.Cut(s, ",")
	if !ok {
		return Symbol{}, fmt.Errorf("%w: missing precision in %q", ErrInvalidSymbol, s)
	}

	p, err := strconv.ParseUint(prec, 10, 8)
	if err != nil {
		return Symbol{}, fmt.Errorf("%w: precision: %v", ErrInvalidSymbol, err)
	}

	return NewSymbol(code, uint8(p))
}

// IsValid checks code and precision of the symbol.
func (s Symbol) IsValid() bool {
	if s.Precision > tokenconst.MaxPrecision {
		return false
	}
	if len(s.Code) == 0 || len(s.Code) > tokenconst.MaxSymbolLen {
		return false
	}

	for i := 0; i < len(s.Code); i++ {
		if s.Code[i] < 'A' || s.Code[i] > 'Z' {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (s Symbol) String() string {
	return strconv.Itoa(int(s.Precision)) + "," + s.Code
}

// New returns valid asset of the given amount.
func New(amount int64, sym Symbol) (Asset, error) {
	a := Asset{Amount: amount, Symbol: sym}
	if !sym.IsValid() {
		return Asset{}, fmt.Errorf("%w: %s", ErrInvalidSymbol, sym)
	}
	if !a.IsAmountWithinRange() {
		return Asset{}, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}

	return a, nil
}

// Parse parses asset in the text form, e.g. "100.0000 TOK". Precision of the
// symbol is taken from the number of decimals.
func Parse(s string) (Asset, error) {
	amount, code, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return Asset{}, fmt.Errorf("missing symbol code in %q", s)
	}

	var prec int
	if _, frac, ok := strings.Cut(amount, "."); ok {
		prec = len(frac)
		if prec == 0 || prec > tokenconst.MaxPrecision {
			return Asset{}, fmt.Errorf("%w: bad fraction in %q", ErrInvalidAmount, s)
		}
	}

	sym, err := NewSymbol(strings.TrimSpace(code), uint8(prec))
	if err != nil {
		return Asset{}, err
	}

	abs, neg := strings.CutPrefix(amount, "-")
	if abs == "" || abs[0] == '.' || strings.Trim(abs, "0123456789.") != "" {
		return Asset{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	v, err := fixedn.FromString(abs, prec)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if !v.IsInt64() {
		return Asset{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	res := v.Int64()
	if neg {
		res = -res
	}

	return New(res, sym)
}

// IsAmountWithinRange checks that the amount is a valid quantity.
func (a Asset) IsAmountWithinRange() bool {
	return -MaxAmount <= a.Amount && a.Amount <= MaxAmount
}

// IsValid checks both the amount and the symbol.
func (a Asset) IsValid() bool {
	return a.IsAmountWithinRange() && a.Symbol.IsValid()
}

// Add returns sum of the assets of the same symbol.
func (a Asset) Add(b Asset) (Asset, error) {
	if err := checkOperands(a, b); err != nil {
		return Asset{}, err
	}

	res := Asset{Amount: a.Amount + b.Amount, Symbol: a.Symbol}
	if !res.IsAmountWithinRange() {
		return Asset{}, fmt.Errorf("%w: %s + %s", ErrOverflow, a, b)
	}

	return res, nil
}

// Sub returns difference of the assets of the same symbol.
func (a Asset) Sub(b Asset) (Asset, error) {
	if err := checkOperands(a, b); err != nil {
		return Asset{}, err
	}

	res := Asset{Amount: a.Amount - b.Amount, Symbol: a.Symbol}
	if !res.IsAmountWithinRange() {
		return Asset{}, fmt.Errorf("%w: %s - %s", ErrOverflow, a, b)
	}

	return res, nil
}

// checkOperands makes sure that sum and difference of the amounts fit int64:
// both are at most MaxAmount by absolute value.
func checkOperands(a, b Asset) error {
	if a.Symbol != b.Symbol {
		return fmt.Errorf("%w: %s and %s", ErrSymbolMismatch, a.Symbol, b.Symbol)
	}
	if !a.IsAmountWithinRange() {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, a.Amount)
	}
	if !b.IsAmountWithinRange() {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, b.Amount)
	}

	return nil
}

// String implements fmt.Stringer.
func (a Asset) String() string {
	v := big.NewInt(a.Amount)

	s := fixedn.ToString(new(big.Int).Abs(v), int(a.Symbol.Precision))
	if a.Symbol.Precision > 0 {
		whole, frac, _ := strings.Cut(s, ".")
		s = whole + "." + frac + strings.Repeat("0", int(a.Symbol.Precision)-len(frac))
	}
	if v.Sign() < 0 {
		s = "-" + s
	}

	return s + " " + a.Symbol.Code
}
