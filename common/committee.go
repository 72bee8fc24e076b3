package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// CommitteeAddress returns the M = N/2+1 multisignature address of the
// current network committee.
func CommitteeAddress() interop.Hash160 {
	keys := neo.GetCommittee()
	return interop.Hash160(contract.CreateMultisigAccount(len(keys)/2+1, keys))
}

// HasUpdateAccess returns true if the transaction is witnessed by the
// committee, which is the only party allowed to replace contract code.
func HasUpdateAccess() bool {
	return runtime.CheckWitness(CommitteeAddress())
}
