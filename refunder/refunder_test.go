package refunder

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/stake-token-contract/contracts/token/tokenconst"
	"github.com/nspcc-dev/stake-token-contract/rpc/token"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type refundCall struct {
	owner  util.Uint160
	symbol string
}

type testSender struct {
	mtx   sync.Mutex
	calls []refundCall
	// errs are returned by the subsequent calls, nil after they run out.
	errs []error
}

func (s *testSender) Refund(owner util.Uint160, symbol string) (util.Uint256, uint32, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.calls = append(s.calls, refundCall{owner, symbol})

	var err error
	if len(s.errs) > 0 {
		err, s.errs = s.errs[0], s.errs[1:]
	}

	return util.Uint256{byte(len(s.calls))}, 100, err
}

func (s *testSender) Calls() []refundCall {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return append([]refundCall(nil), s.calls...)
}

func fault(msg string) error {
	return fmt.Errorf("%w: at instruction 42 (THROW): unhandled exception: %q", actor.ErrExecFailed, msg)
}

func newKeeper(t *testing.T, s *testSender, maxAttempts int) (*Keeper, *clock.Mock) {
	c := clock.NewMock()
	c.Set(time.UnixMilli(1_700_000_000_000))

	k, err := New(Prm{
		Logger:        zaptest.NewLogger(t),
		Clock:         c,
		Sender:        s,
		RetryInterval: time.Minute,
		MaxAttempts:   maxAttempts,
	})
	require.NoError(t, err)
	t.Cleanup(k.Stop)

	return k, c
}

func requireCalls(t *testing.T, s *testSender, n int) {
	require.Eventually(t, func() bool { return len(s.Calls()) == n }, time.Second, time.Millisecond)
	// no extra calls are expected
	time.Sleep(5 * time.Millisecond)
	require.Len(t, s.Calls(), n)
}

// waitRearmed waits until the refund of the owner is armed again after the
// given number of attempts.
func waitRearmed(t *testing.T, k *Keeper, owner util.Uint160, attempts int) {
	require.Eventually(t, func() bool {
		k.mtx.Lock()
		defer k.mtx.Unlock()

		tk, ok := k.pending[owner]
		return ok && !tk.inFlight && tk.attempts == attempts
	}, time.Second, time.Millisecond)
}

func TestNew(t *testing.T) {
	_, err := New(Prm{})
	require.Error(t, err)

	_, err = New(Prm{Sender: new(testSender), RetryInterval: -1})
	require.Error(t, err)

	_, err = New(Prm{Sender: new(testSender), MaxAttempts: -1})
	require.Error(t, err)

	k, err := New(Prm{Sender: new(testSender)})
	require.NoError(t, err)
	require.Equal(t, DefaultRetryInterval, k.retryInterval)
	require.Equal(t, DefaultMaxAttempts, k.maxAttempts)
	require.NotNil(t, k.log)
	require.NotNil(t, k.clock)
}

func TestKeeper_Schedule(t *testing.T) {
	s := new(testSender)
	k, c := newKeeper(t, s, 3)
	owner := util.Uint160{1}

	k.Schedule(Request{Owner: owner, Symbol: "TOK", Due: c.Now().Add(10 * time.Second)})
	require.Equal(t, 1, k.Len())

	c.Add(10*time.Second - time.Millisecond)
	requireCalls(t, s, 0)

	c.Add(time.Millisecond)
	requireCalls(t, s, 1)
	require.Equal(t, refundCall{owner, "TOK"}, s.Calls()[0])
	require.Eventually(t, func() bool { return k.Len() == 0 }, time.Second, time.Millisecond)

	t.Run("past due", func(t *testing.T) {
		k.Schedule(Request{Owner: owner, Symbol: "TOK", Due: c.Now().Add(-time.Hour)})
		c.Add(0)
		requireCalls(t, s, 2)
	})
}

func TestKeeper_Replace(t *testing.T) {
	s := new(testSender)
	k, c := newKeeper(t, s, 3)
	owner := util.Uint160{1}
	other := util.Uint160{2}

	k.Schedule(Request{Owner: owner, Symbol: "TOK", Due: c.Now().Add(10 * time.Second)})
	k.Schedule(Request{Owner: other, Symbol: "TOK", Due: c.Now().Add(15 * time.Second)})
	k.Schedule(Request{Owner: owner, Symbol: "SEED", Due: c.Now().Add(20 * time.Second)})

	require.Equal(t, []Request{
		{Owner: other, Symbol: "TOK", Due: c.Now().Add(15 * time.Second)},
		{Owner: owner, Symbol: "SEED", Due: c.Now().Add(20 * time.Second)},
	}, k.Pending())

	c.Add(10 * time.Second)
	requireCalls(t, s, 0)

	c.Add(10 * time.Second)
	requireCalls(t, s, 2)
	require.ElementsMatch(t, []refundCall{{other, "TOK"}, {owner, "SEED"}}, s.Calls())
}

func TestKeeper_StaleFire(t *testing.T) {
	s := new(testSender)
	k, c := newKeeper(t, s, 3)
	owner := util.Uint160{1}

	k.Schedule(Request{Owner: owner, Symbol: "TOK", Due: c.Now().Add(time.Hour)})

	k.fire(owner, uuid.New())
	k.fire(util.Uint160{2}, uuid.New())

	require.Empty(t, s.Calls())
	require.Equal(t, 1, k.Len())
}

func TestKeeper_Retry(t *testing.T) {
	owner := util.Uint160{1}

	t.Run("not matured", func(t *testing.T) {
		s := &testSender{errs: []error{fault(tokenconst.ErrNotMatured), fault(tokenconst.ErrNotMatured)}}
		k, c := newKeeper(t, s, 3)

		k.Schedule(Request{Owner: owner, Symbol: "TOK", Due: c.Now().Add(time.Second)})

		c.Add(time.Second)
		requireCalls(t, s, 1)
		waitRearmed(t, k, owner, 1)

		c.Add(time.Minute)
		requireCalls(t, s, 2)
		waitRearmed(t, k, owner, 2)

		c.Add(time.Minute)
		requireCalls(t, s, 3)
		require.Eventually(t, func() bool { return k.Len() == 0 }, time.Second, time.Millisecond)
	})

	t.Run("no attempts left", func(t *testing.T) {
		netErr := errors.New("connection refused")
		s := &testSender{errs: []error{netErr, netErr, netErr, netErr}}
		k, c := newKeeper(t, s, 2)

		k.Schedule(Request{Owner: owner, Symbol: "TOK", Due: c.Now()})

		c.Add(0)
		requireCalls(t, s, 1)
		waitRearmed(t, k, owner, 1)

		c.Add(time.Minute)
		requireCalls(t, s, 2)
		require.Eventually(t, func() bool { return k.Len() == 0 }, time.Second, time.Millisecond)

		c.Add(time.Hour)
		requireCalls(t, s, 2)
	})

	t.Run("nothing to refund", func(t *testing.T) {
		s := &testSender{errs: []error{fault(tokenconst.ErrRefundNotFound)}}
		k, c := newKeeper(t, s, 5)

		k.Schedule(Request{Owner: owner, Symbol: "TOK", Due: c.Now()})

		c.Add(0)
		requireCalls(t, s, 1)
		require.Eventually(t, func() bool { return k.Len() == 0 }, time.Second, time.Millisecond)

		c.Add(time.Hour)
		requireCalls(t, s, 1)
	})
}

func TestKeeper_Cancel(t *testing.T) {
	s := new(testSender)
	k, c := newKeeper(t, s, 3)
	owner := util.Uint160{1}

	k.Schedule(Request{Owner: owner, Symbol: "TOK", Due: c.Now().Add(time.Second)})

	require.False(t, k.Cancel(owner, "SEED"))
	require.False(t, k.Cancel(util.Uint160{2}, "TOK"))
	require.True(t, k.Cancel(owner, "TOK"))
	require.False(t, k.Cancel(owner, "TOK"))
	require.Zero(t, k.Len())

	c.Add(time.Hour)
	requireCalls(t, s, 0)
}

func TestKeeper_Stop(t *testing.T) {
	s := new(testSender)
	k, c := newKeeper(t, s, 3)

	k.Schedule(Request{Owner: util.Uint160{1}, Symbol: "TOK", Due: c.Now().Add(time.Second)})
	k.Stop()
	require.Zero(t, k.Len())

	k.Schedule(Request{Owner: util.Uint160{2}, Symbol: "TOK", Due: c.Now().Add(time.Second)})
	require.Zero(t, k.Len())

	c.Add(time.Hour)
	requireCalls(t, s, 0)
}

func TestKeeper_Sync(t *testing.T) {
	s := new(testSender)
	k, c := newKeeper(t, s, 3)

	due := c.Now().Add(time.Hour)

	err := k.Sync([]token.RefundRequest{
		{Owner: util.Uint160{1}, Symbol: "TOK", Due: big.NewInt(due.UnixMilli())},
		{Owner: util.Uint160{2}, Symbol: "SEED", Due: new(big.Int).Lsh(big.NewInt(1), 70)},
	})
	require.Error(t, err)
	require.Zero(t, k.Len())

	err = k.Sync([]token.RefundRequest{
		{Owner: util.Uint160{1}, Symbol: "TOK", Due: big.NewInt(due.UnixMilli())},
		{Owner: util.Uint160{2}, Symbol: "SEED", Due: big.NewInt(due.UnixMilli() + 1)},
	})
	require.NoError(t, err)
	require.Equal(t, []Request{
		{Owner: util.Uint160{1}, Symbol: "TOK", Due: due},
		{Owner: util.Uint160{2}, Symbol: "SEED", Due: due.Add(time.Millisecond)},
	}, k.Pending())
}

func scheduledEvent(contract, owner util.Uint160, symbol string, due int64) state.NotificationEvent {
	return state.NotificationEvent{
		ScriptHash: contract,
		Name:       tokenconst.RefundScheduledEvent,
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.NewByteArray(owner.BytesBE()),
			stackitem.NewByteArray([]byte(symbol)),
			stackitem.Make(100),
			stackitem.Make(due),
		}),
	}
}

func ownerSymbolEvent(contract util.Uint160, name string, owner util.Uint160, symbol string, extra ...stackitem.Item) state.NotificationEvent {
	return state.NotificationEvent{
		ScriptHash: contract,
		Name:       name,
		Item: stackitem.NewArray(append([]stackitem.Item{
			stackitem.NewByteArray(owner.BytesBE()),
			stackitem.NewByteArray([]byte(symbol)),
		}, extra...)),
	}
}

func TestKeeper_HandleNotification(t *testing.T) {
	contract := util.Uint160{0xff}
	owner := util.Uint160{1}

	c := clock.NewMock()
	k, err := New(Prm{
		Logger:   zaptest.NewLogger(t),
		Clock:    c,
		Contract: contract,
		Sender:   new(testSender),
	})
	require.NoError(t, err)
	t.Cleanup(k.Stop)

	due := c.Now().Add(time.Hour).UnixMilli()

	require.NoError(t, k.HandleNotification(scheduledEvent(util.Uint160{0xee}, owner, "TOK", due)))
	require.Zero(t, k.Len())

	require.NoError(t, k.HandleNotification(scheduledEvent(contract, owner, "TOK", due)))
	require.Equal(t, []Request{{Owner: owner, Symbol: "TOK", Due: time.UnixMilli(due)}}, k.Pending())

	// refund of another symbol keeps the schedule
	require.NoError(t, k.HandleNotification(ownerSymbolEvent(contract, tokenconst.RefundEvent, owner, "SEED", stackitem.Make(1))))
	require.Equal(t, 1, k.Len())

	require.NoError(t, k.HandleNotification(ownerSymbolEvent(contract, tokenconst.RefundCancelledEvent, owner, "TOK")))
	require.Zero(t, k.Len())

	require.NoError(t, k.HandleNotification(scheduledEvent(contract, owner, "TOK", due)))
	require.NoError(t, k.HandleNotification(ownerSymbolEvent(contract, tokenconst.RefundEvent, owner, "TOK", stackitem.Make(1))))
	require.Zero(t, k.Len())

	require.NoError(t, k.HandleNotification(ownerSymbolEvent(contract, tokenconst.TransferEvent, owner, "TOK")))

	t.Run("invalid", func(t *testing.T) {
		for _, ev := range []state.NotificationEvent{
			ownerSymbolEvent(contract, tokenconst.RefundScheduledEvent, owner, "TOK"),
			ownerSymbolEvent(contract, tokenconst.RefundCancelledEvent, owner, "TOK", stackitem.Make(1)),
			ownerSymbolEvent(contract, tokenconst.RefundEvent, owner, "TOK"),
			ownerSymbolEvent(contract, tokenconst.RefundScheduledEvent, owner, "TOK",
				stackitem.Make(1), stackitem.Make(new(big.Int).Lsh(big.NewInt(1), 70))),
		} {
			require.Error(t, k.HandleNotification(ev), ev.Name)
		}
		require.Zero(t, k.Len())
	})
}

func TestKeeper_Run(t *testing.T) {
	s := new(testSender)
	k, c := newKeeper(t, s, 3)
	owner := util.Uint160{1}

	ch := make(chan *state.ContainedNotificationEvent)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- k.Run(ctx, ch) }()

	ch <- &state.ContainedNotificationEvent{
		Container:         util.Uint256{1},
		NotificationEvent: ownerSymbolEvent(util.Uint160{}, tokenconst.RefundScheduledEvent, owner, "TOK"),
	}
	ch <- &state.ContainedNotificationEvent{
		Container:         util.Uint256{2},
		NotificationEvent: scheduledEvent(util.Uint160{}, owner, "TOK", c.Now().Add(time.Second).UnixMilli()),
	}
	require.Eventually(t, func() bool { return k.Len() == 1 }, time.Second, time.Millisecond)

	cancel()
	require.ErrorIs(t, <-errCh, context.Canceled)
	require.Zero(t, k.Len())

	t.Run("closed channel", func(t *testing.T) {
		k, _ := newKeeper(t, s, 3)

		ch := make(chan *state.ContainedNotificationEvent)
		close(ch)
		require.Error(t, k.Run(context.Background(), ch))
	})
}
