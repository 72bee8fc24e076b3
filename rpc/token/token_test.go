package token

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/stake-token-contract/asset"
	"github.com/nspcc-dev/stake-token-contract/contracts/token/tokenconst"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke

	// iterated holds items returned by TraverseIterator.
	iterated   []stackitem.Item
	terminated bool

	method string
	params []any
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	t.method, t.params = operation, params
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	t.method, t.params = operation, params
	return t.res, t.err
}

func (t *testInv) TraverseIterator(_ uuid.UUID, _ *result.Iterator, num int) ([]stackitem.Item, error) {
	if t.err != nil {
		return nil, t.err
	}
	n := num
	if n > len(t.iterated) {
		n = len(t.iterated)
	}
	res := t.iterated[:n]
	t.iterated = t.iterated[n:]
	return res, nil
}

func (t *testInv) TerminateSession(uuid.UUID) error {
	t.terminated = true
	return nil
}

func (t *testInv) MakeCall(util.Uint160, string, ...any) (*transaction.Transaction, error) {
	return nil, t.err
}

func (t *testInv) MakeRun([]byte) (*transaction.Transaction, error) {
	return nil, t.err
}

func (t *testInv) MakeUnsignedCall(util.Uint160, string, []transaction.Attribute, ...any) (*transaction.Transaction, error) {
	return nil, t.err
}

func (t *testInv) MakeUnsignedRun([]byte, []transaction.Attribute) (*transaction.Transaction, error) {
	return nil, t.err
}

func (t *testInv) SendCall(_ util.Uint160, method string, params ...any) (util.Uint256, uint32, error) {
	t.method, t.params = method, params
	return util.Uint256{1}, 42, t.err
}

func (t *testInv) SendRun([]byte) (util.Uint256, uint32, error) {
	return util.Uint256{}, 0, t.err
}

func halt(items ...stackitem.Item) *result.Invoke {
	return &result.Invoke{State: "HALT", Stack: items}
}

func refundRequestItem(owner util.Uint160, symbol string, due int64) stackitem.Item {
	return stackitem.NewStruct([]stackitem.Item{
		stackitem.NewByteArray(owner.BytesBE()),
		stackitem.NewByteArray([]byte(symbol)),
		stackitem.Make(due),
	})
}

func TestClassifyFault(t *testing.T) {
	require.NoError(t, ClassifyFault(nil))

	other := errors.New("connection refused")
	require.Equal(t, other, ClassifyFault(other))

	for msg, target := range map[string]error{
		tokenconst.ErrOwnerWitness:   ErrAuthorization,
		tokenconst.ErrRefundNotFound: ErrNotFound,
		tokenconst.ErrSymbolExists:   ErrAlreadyExists,
		tokenconst.ErrMemoTooLong:    ErrValidation,
		tokenconst.ErrSupplyExceeded: ErrCapacity,
		tokenconst.ErrOverdrawn:      ErrInsufficientFunds,
		tokenconst.ErrNotMatured:     ErrNotMatured,
	} {
		// the way the actor reports faulted test invocations
		err := fmt.Errorf("%w: at instruction 1234 (THROW): unhandled exception: %q", actor.ErrExecFailed, msg)

		classified := ClassifyFault(err)
		require.ErrorIs(t, classified, target, msg)
		require.ErrorIs(t, classified, actor.ErrExecFailed, msg)
	}
}

func TestContractErrors(t *testing.T) {
	ti := new(testInv)
	c := New(ti, util.Uint160{1, 2, 3})
	owner := util.Uint160{4, 5, 6}
	tok := asset.Symbol{Code: "TOK", Precision: 4}

	h, vub, err := c.Refund(owner, "TOK")
	require.NoError(t, err)
	require.Equal(t, util.Uint256{1}, h)
	require.EqualValues(t, 42, vub)
	require.Equal(t, "refund", ti.method)
	require.Equal(t, []any{owner, "TOK"}, ti.params)

	_, _, err = c.StakeAsset(owner, asset.Asset{Amount: 100, Symbol: tok})
	require.NoError(t, err)
	require.Equal(t, "stake", ti.method)
	require.Equal(t, []any{owner, big.NewInt(100), "TOK", big.NewInt(4)}, ti.params)

	ti.err = fmt.Errorf("%w: %s", actor.ErrExecFailed, tokenconst.ErrOverdrawn)
	_, _, err = c.TransferAsset(owner, util.Uint160{7}, asset.Asset{Amount: 100, Symbol: tok}, "memo")
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.Equal(t, "transfer", ti.method)

	ti.err = fmt.Errorf("%w: %s", actor.ErrExecFailed, tokenconst.ErrNotMatured)
	_, _, err = c.UnstakeAsset(owner, asset.Asset{Amount: 100, Symbol: tok})
	require.ErrorIs(t, err, ErrNotMatured)
}

func TestReader(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})
	owner := util.Uint160{4, 5, 6}

	t.Run("symbol", func(t *testing.T) {
		ti.res = halt(stackitem.Make(4))
		sym, err := r.Symbol("TOK")
		require.NoError(t, err)
		require.Equal(t, asset.Symbol{Code: "TOK", Precision: 4}, sym)
		require.Equal(t, "precision", ti.method)

		ti.res = halt(stackitem.Make(256))
		_, err = r.Symbol("TOK")
		require.Error(t, err)

		ti.res = &result.Invoke{State: "FAULT", FaultException: tokenconst.ErrSymbolNotFound}
		_, err = r.Symbol("TOK")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("balance", func(t *testing.T) {
		sym := asset.Symbol{Code: "TOK", Precision: 4}

		ti.res = halt(stackitem.Make(1_000_000))
		a, err := r.Balance(owner, sym)
		require.NoError(t, err)
		require.Equal(t, "100.0000 TOK", a.String())
		require.Equal(t, "balanceOf", ti.method)

		ti.res = halt(stackitem.Make(30))
		a, err = r.AvailableBalance(owner, sym)
		require.NoError(t, err)
		require.EqualValues(t, 30, a.Amount)
		require.Equal(t, "available", ti.method)

		ti.res = halt(stackitem.Make(new(big.Int).Lsh(big.NewInt(1), 64)))
		_, err = r.Staked(owner, sym)
		require.ErrorIs(t, err, asset.ErrInvalidAmount)

		ti.res = halt(stackitem.Make([]stackitem.Item{}))
		_, err = r.Refunding(owner, sym)
		require.Error(t, err)
	})

	t.Run("pending refund", func(t *testing.T) {
		ti.res = halt(stackitem.Null{})
		req, err := r.PendingRefundOf(owner)
		require.NoError(t, err)
		require.Nil(t, req)

		ti.res = halt(refundRequestItem(owner, "TOK", 100500))
		req, err = r.PendingRefundOf(owner)
		require.NoError(t, err)
		require.Equal(t, &RefundRequest{Owner: owner, Symbol: "TOK", Due: big.NewInt(100500)}, req)

		ti.res = halt(stackitem.NewStruct([]stackitem.Item{stackitem.Make(1)}))
		_, err = r.PendingRefundOf(owner)
		require.Error(t, err)
	})
}

func TestFetchPendingRefunds(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	sess := uuid.New()
	id := uuid.New()
	ti.res = &result.Invoke{
		State:   "HALT",
		Session: sess,
		Stack:   []stackitem.Item{stackitem.NewInterop(result.Iterator{ID: &id})},
	}

	var expected []RefundRequest
	for i := 0; i < 5; i++ {
		owner := util.Uint160{byte(i)}
		ti.iterated = append(ti.iterated, refundRequestItem(owner, "TOK", int64(i)))
		expected = append(expected, RefundRequest{Owner: owner, Symbol: "TOK", Due: big.NewInt(int64(i))})
	}

	res, err := r.FetchPendingRefunds(2)
	require.NoError(t, err)
	require.Equal(t, expected, res)
	require.True(t, ti.terminated)
	require.Equal(t, "pendingRefunds", ti.method)

	t.Run("invalid item", func(t *testing.T) {
		ti.iterated = []stackitem.Item{stackitem.Make(1)}
		_, err := r.FetchPendingRefunds(0)
		require.Error(t, err)
	})

	t.Run("no session", func(t *testing.T) {
		ti.res.Session = uuid.UUID{}
		_, err := r.FetchPendingRefunds(0)
		require.Error(t, err)
	})
}

func TestEventsFromApplicationLog(t *testing.T) {
	owner := util.Uint160{1, 2, 3}

	_, err := RefundScheduledEventsFromApplicationLog(nil)
	require.Error(t, err)

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					Name: tokenconst.UnstakeEvent,
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.NewByteArray(owner.BytesBE()),
						stackitem.NewByteArray([]byte("TOK")),
						stackitem.Make(10),
					}),
				},
				{
					Name: tokenconst.RefundCancelledEvent,
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.NewByteArray(owner.BytesBE()),
						stackitem.NewByteArray([]byte("SEED")),
					}),
				},
				{
					Name: tokenconst.RefundScheduledEvent,
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.NewByteArray(owner.BytesBE()),
						stackitem.NewByteArray([]byte("TOK")),
						stackitem.Make(10),
						stackitem.Make(604_800_123),
					}),
				},
			},
		}},
	}

	scheduled, err := RefundScheduledEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*RefundScheduledEvent{{
		Owner:  owner,
		Symbol: "TOK",
		Amount: big.NewInt(10),
		Due:    big.NewInt(604_800_123),
	}}, scheduled)

	cancelled, err := RefundCancelledEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*RefundCancelledEvent{{Owner: owner, Symbol: "SEED"}}, cancelled)

	refunds, err := RefundEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Empty(t, refunds)

	var ev RefundEvent
	require.Error(t, ev.FromStackItem(nil))
	require.Error(t, ev.FromStackItem(stackitem.NewArray([]stackitem.Item{stackitem.Make(1)})))
	require.Error(t, ev.FromStackItem(stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray([]byte{1, 2}),
		stackitem.NewByteArray([]byte("TOK")),
		stackitem.Make(1),
	})))
}
