/*
Package refunder keeps track of refunds scheduled by the Token contract and
invokes them as soon as they mature.

Every owner has at most one pending refund. Contract reports scheduling with
RefundScheduled notification (replacing any previous refund of the owner) and
withdrawal with RefundCancelled and Refund notifications. Keeper mirrors this
state with timers: a new request of the owner stops the previous timer, and a
timer that fires after being replaced does nothing.
*/
package refunder

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/stake-token-contract/contracts/token/tokenconst"
	"github.com/nspcc-dev/stake-token-contract/rpc/token"
	"go.uber.org/zap"
)

const (
	// DefaultRetryInterval is used when Prm.RetryInterval is not set.
	DefaultRetryInterval = time.Minute
	// DefaultMaxAttempts is used when Prm.MaxAttempts is not set.
	DefaultMaxAttempts = 10
)

// Sender sends transactions invoking Refund method of the Token contract.
// [token.Contract] implements it.
type Sender interface {
	Refund(owner util.Uint160, symbol string) (util.Uint256, uint32, error)
}

// Request is a refund of the owner's funds which can be invoked at Due.
type Request struct {
	Owner  util.Uint160
	Symbol string
	Due    time.Time
}

// Prm groups parameters of the Keeper.
type Prm struct {
	// Writes scheduling and invocation results into the log. Optional.
	Logger *zap.Logger

	// Source of the current time and timers. Optional, system clock by default.
	Clock clock.Clock

	// Contract the notifications are accepted from. Optional, zero value
	// accepts notifications of any contract.
	Contract util.Uint160

	// Sender of the refund transactions. Required.
	Sender Sender

	// Delay between failed refund attempts.
	RetryInterval time.Duration

	// Number of attempts after which the refund is dropped.
	MaxAttempts int
}

// Keeper schedules refunds and sends them when they mature.
type Keeper struct {
	log           *zap.Logger
	clock         clock.Clock
	contract      util.Uint160
	sender        Sender
	retryInterval time.Duration
	maxAttempts   int

	mtx     sync.Mutex
	stopped bool
	pending map[util.Uint160]*task
}

type task struct {
	id       uuid.UUID
	req      Request
	attempts int
	inFlight bool
	timer    *clock.Timer
}

// New returns Keeper ready to schedule refunds.
func New(prm Prm) (*Keeper, error) {
	if prm.Sender == nil {
		return nil, errors.New("missing refund sender")
	}
	if prm.RetryInterval < 0 {
		return nil, fmt.Errorf("negative retry interval %s", prm.RetryInterval)
	}
	if prm.MaxAttempts < 0 {
		return nil, fmt.Errorf("negative number of attempts %d", prm.MaxAttempts)
	}

	k := &Keeper{
		log:           prm.Logger,
		clock:         prm.Clock,
		contract:      prm.Contract,
		sender:        prm.Sender,
		retryInterval: prm.RetryInterval,
		maxAttempts:   prm.MaxAttempts,
		pending:       make(map[util.Uint160]*task),
	}

	if k.log == nil {
		k.log = zap.NewNop()
	}
	if k.clock == nil {
		k.clock = clock.New()
	}
	if k.retryInterval == 0 {
		k.retryInterval = DefaultRetryInterval
	}
	if k.maxAttempts == 0 {
		k.maxAttempts = DefaultMaxAttempts
	}

	return k, nil
}

// Schedule arms refund of the owner replacing the pending one if any. Past due
// refunds are sent immediately.
func (k *Keeper) Schedule(req Request) {
	k.mtx.Lock()
	defer k.mtx.Unlock()

	if k.stopped {
		return
	}

	if prev, ok := k.pending[req.Owner]; ok {
		prev.timer.Stop()
		k.log.Debug("pending refund replaced",
			zap.Stringer("owner", req.Owner), zap.String("previous symbol", prev.req.Symbol))
	}

	k.armLocked(&task{id: uuid.New(), req: req}, req.Due.Sub(k.clock.Now()))

	k.log.Info("refund scheduled",
		zap.Stringer("owner", req.Owner), zap.String("symbol", req.Symbol), zap.Time("due", req.Due))
}

// Cancel withdraws pending refund of the owner if it is for the given symbol.
// Returns true if anything was cancelled.
func (k *Keeper) Cancel(owner util.Uint160, symbol string) bool {
	k.mtx.Lock()
	defer k.mtx.Unlock()

	t, ok := k.pending[owner]
	if !ok || t.req.Symbol != symbol {
		return false
	}

	t.timer.Stop()
	delete(k.pending, owner)

	k.log.Info("refund cancelled", zap.Stringer("owner", owner), zap.String("symbol", symbol))

	return true
}

// Sync schedules all given requests. It's used to catch up with the contract
// state on start.
func (k *Keeper) Sync(reqs []token.RefundRequest) error {
	for i := range reqs {
		if !reqs[i].Due.IsInt64() {
			return fmt.Errorf("invalid due time %s of %s refund", reqs[i].Due, reqs[i].Owner.StringLE())
		}
	}

	for i := range reqs {
		k.Schedule(Request{
			Owner:  reqs[i].Owner,
			Symbol: reqs[i].Symbol,
			Due:    time.UnixMilli(reqs[i].Due.Int64()),
		})
	}

	return nil
}

// Pending returns all scheduled refunds ordered by due time.
func (k *Keeper) Pending() []Request {
	k.mtx.Lock()
	res := make([]Request, 0, len(k.pending))
	for _, t := range k.pending {
		res = append(res, t.req)
	}
	k.mtx.Unlock()

	sort.Slice(res, func(i, j int) bool {
		if res[i].Due.Equal(res[j].Due) {
			return res[i].Owner.Less(res[j].Owner)
		}
		return res[i].Due.Before(res[j].Due)
	})

	return res
}

// Len returns number of scheduled refunds.
func (k *Keeper) Len() int {
	k.mtx.Lock()
	defer k.mtx.Unlock()

	return len(k.pending)
}

// Stop stops all timers. Keeper ignores any requests after it.
func (k *Keeper) Stop() {
	k.mtx.Lock()
	defer k.mtx.Unlock()

	k.stopped = true
	for owner, t := range k.pending {
		t.timer.Stop()
		delete(k.pending, owner)
	}
}

// HandleNotification updates schedule according to the notification of the
// Token contract. Notifications of other contracts and unrelated events are
// ignored.
func (k *Keeper) HandleNotification(ev state.NotificationEvent) error {
	if !k.contract.Equals(util.Uint160{}) && !ev.ScriptHash.Equals(k.contract) {
		return nil
	}

	switch ev.Name {
	case tokenconst.RefundScheduledEvent:
		var e token.RefundScheduledEvent
		if err := e.FromStackItem(ev.Item); err != nil {
			return fmt.Errorf("decode %s notification: %w", ev.Name, err)
		}
		if !e.Due.IsInt64() {
			return fmt.Errorf("invalid due time %s in %s notification", e.Due, ev.Name)
		}

		k.Schedule(Request{Owner: e.Owner, Symbol: e.Symbol, Due: time.UnixMilli(e.Due.Int64())})
	case tokenconst.RefundCancelledEvent:
		var e token.RefundCancelledEvent
		if err := e.FromStackItem(ev.Item); err != nil {
			return fmt.Errorf("decode %s notification: %w", ev.Name, err)
		}

		k.Cancel(e.Owner, e.Symbol)
	case tokenconst.RefundEvent:
		var e token.RefundEvent
		if err := e.FromStackItem(ev.Item); err != nil {
			return fmt.Errorf("decode %s notification: %w", ev.Name, err)
		}

		k.Cancel(e.Owner, e.Symbol)
	}

	return nil
}

// Run handles notifications from the channel until the context is done or the
// channel is closed. Keeper is stopped on return.
func (k *Keeper) Run(ctx context.Context, ch <-chan *state.ContainedNotificationEvent) error {
	defer k.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-ch:
			if !ok {
				return errors.New("notification channel closed")
			}

			err := k.HandleNotification(ev.NotificationEvent)
			if err != nil {
				k.log.Warn("invalid contract notification",
					zap.Stringer("tx", ev.Container), zap.String("event", ev.Name), zap.Error(err))
			}
		}
	}
}

func (k *Keeper) armLocked(t *task, d time.Duration) {
	owner, id := t.req.Owner, t.id
	t.inFlight = false
	t.timer = k.clock.AfterFunc(d, func() { k.fire(owner, id) })
	k.pending[owner] = t
}

func (k *Keeper) fire(owner util.Uint160, id uuid.UUID) {
	k.mtx.Lock()
	t, ok := k.pending[owner]
	if !ok || t.id != id || k.stopped {
		k.mtx.Unlock()
		return
	}
	t.attempts++
	t.inFlight = true
	req, attempt := t.req, t.attempts
	k.mtx.Unlock()

	l := k.log.With(zap.Stringer("owner", owner), zap.String("symbol", req.Symbol), zap.Int("attempt", attempt))

	txHash, vub, err := k.sender.Refund(req.Owner, req.Symbol)
	err = token.ClassifyFault(err)

	k.mtx.Lock()
	defer k.mtx.Unlock()

	if cur, ok := k.pending[owner]; !ok || cur.id != id || k.stopped {
		// replaced or cancelled while sending
		return
	}

	switch {
	case err == nil:
		l.Info("refund transaction sent", zap.Stringer("tx", txHash), zap.Uint32("vub", vub))
		delete(k.pending, owner)
	case errors.Is(err, token.ErrNotFound), errors.Is(err, token.ErrValidation):
		l.Info("refund dropped", zap.Error(err))
		delete(k.pending, owner)
	case attempt >= k.maxAttempts:
		l.Error("refund failed, no attempts left", zap.Error(err))
		delete(k.pending, owner)
	default:
		l.Warn("refund failed, will retry", zap.Duration("retry in", k.retryInterval), zap.Error(err))
		k.armLocked(t, k.retryInterval)
	}
}
