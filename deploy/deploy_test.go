package deploy

import (
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/stretchr/testify/require"
)

func TestRoundedNonceModifier(t *testing.T) {
	t.Run("invalid invocation result state", func(t *testing.T) {
		var res result.Invoke
		res.State = "FAULT" // any non-HALT

		err := roundedNonceModifier(func() (uint32, error) { return 0, nil })(&res, new(transaction.Transaction))
		require.Error(t, err)
	})

	var validRes result.Invoke
	validRes.State = "HALT"

	t.Run("height failure", func(t *testing.T) {
		err := roundedNonceModifier(func() (uint32, error) { return 0, errors.New("any") })(&validRes, new(transaction.Transaction))
		require.Error(t, err)
	})

	for _, tc := range []struct {
		curHeight     uint32
		expectedNonce uint32
		expectedVUB   uint32
	}{
		{curHeight: 0, expectedNonce: 0, expectedVUB: 100},
		{curHeight: 1, expectedNonce: 0, expectedVUB: 100},
		{curHeight: 99, expectedNonce: 0, expectedVUB: 100},
		{curHeight: 100, expectedNonce: 100, expectedVUB: 200},
		{curHeight: 199, expectedNonce: 100, expectedVUB: 200},
		{curHeight: 200, expectedNonce: 200, expectedVUB: 300},
		{curHeight: math.MaxUint32 - 50, expectedNonce: 100 * (math.MaxUint32 / 100), expectedVUB: math.MaxUint32},
	} {
		m := roundedNonceModifier(func() (uint32, error) { return tc.curHeight, nil })

		var tx transaction.Transaction

		err := m(&validRes, &tx)
		require.NoError(t, err, tc)
		require.EqualValues(t, tc.expectedNonce, tx.Nonce, tc)
		require.EqualValues(t, tc.expectedVUB, tx.ValidUntilBlock, tc)
	}
}

func TestPlanSync(t *testing.T) {
	for _, tc := range []struct {
		name     string
		onChain  *big.Int
		local    int
		expected syncAction
		fail     bool
	}{
		{name: "missing", onChain: nil, local: 2_000, expected: actionDeploy},
		{name: "same", onChain: big.NewInt(2_000), local: 2_000, expected: actionNone},
		{name: "older", onChain: big.NewInt(1_000), local: 2_000, expected: actionUpdate},
		{name: "newer", onChain: big.NewInt(3_000), local: 2_000, fail: true},
		{name: "overflow", onChain: new(big.Int).Lsh(big.NewInt(1), 64), local: 2_000, fail: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			action, err := planSync(tc.onChain, tc.local)
			if tc.fail {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, action)
		})
	}
}

func TestDeployData(t *testing.T) {
	owner := util.Uint160{1, 2, 3}

	require.Equal(t, []any{owner, nil}, deployData(owner, 0))
	require.Equal(t, []any{owner, int64(60_000)}, deployData(owner, time.Minute))
}

func TestIsErrContractNotFound(t *testing.T) {
	require.True(t, isErrContractNotFound(errors.New("Unknown contract: 0x0102")))
	require.False(t, isErrContractNotFound(errors.New("connection refused")))
}

type testCommittee struct {
	keys keys.PublicKeys
	err  error
}

func (x testCommittee) GetCommittee() (keys.PublicKeys, error) {
	return x.keys, x.err
}

// newCommittee returns public keys of n members and the committee account
// held by the first of them.
func newCommittee(t *testing.T, n int) (keys.PublicKeys, *wallet.Account) {
	var pubs keys.PublicKeys
	var first *keys.PrivateKey

	for i := 0; i < n; i++ {
		pk, err := keys.NewPrivateKey()
		require.NoError(t, err)
		if first == nil {
			first = pk
		}
		pubs = append(pubs, pk.PublicKey())
	}

	acc := wallet.NewAccountFromPrivateKey(first)
	require.NoError(t, acc.ConvertMultisig(n/2+1, pubs))

	return pubs, acc
}

func TestCommitteeAddress(t *testing.T) {
	for _, n := range []int{1, 4, 7} {
		pubs, acc := newCommittee(t, n)

		h, err := committeeAddress(testCommittee{keys: pubs})
		require.NoError(t, err, n)
		require.Equal(t, acc.ScriptHash(), h, n)
	}

	_, err := committeeAddress(testCommittee{})
	require.Error(t, err)

	_, err = committeeAddress(testCommittee{err: errors.New("any")})
	require.Error(t, err)
}

func TestUpdateSigner(t *testing.T) {
	pubs, committeeAcc := newCommittee(t, 4)

	committee, err := committeeAddress(testCommittee{keys: pubs})
	require.NoError(t, err)

	local, err := wallet.NewAccount()
	require.NoError(t, err)

	t.Run("local account is not committee", func(t *testing.T) {
		_, err := updateSigner(local, nil, committee)
		require.ErrorIs(t, err, errNotCommittee)
	})

	t.Run("local account is committee", func(t *testing.T) {
		acc, err := updateSigner(committeeAcc, nil, committee)
		require.NoError(t, err)
		require.True(t, acc == committeeAcc)

		acc, err = updateSigner(committeeAcc, committeeAcc, committee)
		require.NoError(t, err)
		require.True(t, acc == committeeAcc)
	})

	t.Run("committee co-signer", func(t *testing.T) {
		acc, err := updateSigner(local, committeeAcc, committee)
		require.NoError(t, err)
		require.True(t, acc == committeeAcc)
	})

	t.Run("wrong co-signer", func(t *testing.T) {
		other, err := wallet.NewAccount()
		require.NoError(t, err)

		_, err = updateSigner(local, other, committee)
		require.ErrorIs(t, err, errNotCommittee)
	})
}
