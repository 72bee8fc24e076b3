package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// CheckWitness checks witness of the passed account. It panics with the
// given message on fail.
func CheckWitness(account []byte, msg string) {
	if !runtime.CheckWitness(account) {
		panic(msg)
	}
}

// IsUsableAddress checks if the account either witnessed the transaction or
// is the contract calling the current one.
func IsUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}
