package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/stake-token-contract/refunder"
	"github.com/nspcc-dev/stake-token-contract/rpc/token"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// notificationBuffer is a capacity of the channel receiving contract
// notifications.
const notificationBuffer = 64

var refunderCommand = cli.Command{
	Name:   "refunder",
	Usage:  "Send refund transactions of the Token contract as soon as they mature",
	Flags:  []cli.Flag{configFlag},
	Action: withConfig(runRefunder),
}

func runRefunder(ctx context.Context, _ *cli.Context, cfg *config) error {
	contract, err := cfg.contract()
	if err != nil {
		return err
	}

	log, err := cfg.logger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	acc, err := cfg.account()
	if err != nil {
		return err
	}

	c, err := dial(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		return fmt.Errorf("init transaction sender: %w", err)
	}

	tokenContract := token.New(act, contract)

	k, err := refunder.New(refunder.Prm{
		Logger:        log,
		Contract:      contract,
		Sender:        tokenContract,
		RetryInterval: cfg.Refund.RetryInterval,
		MaxAttempts:   cfg.Refund.MaxAttempts,
	})
	if err != nil {
		return fmt.Errorf("init refund keeper: %w", err)
	}

	// subscribe before the sync, so nothing happening in between is lost
	ch := make(chan *state.ContainedNotificationEvent, notificationBuffer)

	subID, err := c.ReceiveExecutionNotifications(&neorpc.NotificationFilter{Contract: &contract}, ch)
	if err != nil {
		return fmt.Errorf("subscribe to contract notifications: %w", err)
	}
	defer func() { _ = c.Unsubscribe(subID) }()

	reqs, err := tokenContract.FetchPendingRefunds(token.DefaultIteratorBatch)
	if err != nil {
		return fmt.Errorf("fetch pending refunds: %w", err)
	}

	err = k.Sync(reqs)
	if err != nil {
		return fmt.Errorf("sync pending refunds: %w", err)
	}

	log.Info("refunder started",
		zap.Stringer("contract", contract),
		zap.Stringer("account", acc.ScriptHash()),
		zap.Int("pending", k.Len()))

	err = k.Run(ctx, ch)
	if errors.Is(err, context.Canceled) {
		log.Info("refunder stopped")
		return nil
	}

	return err
}
