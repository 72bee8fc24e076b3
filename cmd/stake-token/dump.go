package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/stake-token-contract/internal/dump"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var dumpCommand = cli.Command{
	Name:  "dump",
	Usage: "Dump the Token contract state and storage into local files",
	Flags: []cli.Flag{
		configFlag,
		cli.StringFlag{
			Name:     "label",
			Usage:    "Label of the blockchain environment (e.g. 'testnet')",
			Required: true,
		},
		cli.StringFlag{
			Name:  "dir",
			Usage: "Directory to put the dump files into",
			Value: "testdata",
		},
	},
	Action: withConfig(runDump),
}

func runDump(ctx context.Context, c *cli.Context, cfg *config) error {
	contract, err := cfg.contract()
	if err != nil {
		return err
	}

	log, err := cfg.logger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	dir := c.String("dir")

	err = os.MkdirAll(dir, 0700)
	if err != nil {
		return fmt.Errorf("create dump dir: %w", err)
	}

	client, err := dial(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	nBlocks, err := client.GetBlockCount()
	if err != nil {
		return fmt.Errorf("get number of the latest block: %w", err)
	}
	if nBlocks < 2 {
		return fmt.Errorf("too few blocks in the chain: %d", nBlocks)
	}

	// state of the latest block may be not yet validated
	height := nBlocks - 1

	st, err := client.GetContractStateByHash(contract)
	if err != nil {
		return fmt.Errorf("get contract state: %w", err)
	}

	id := dump.ID{Label: c.String("label"), Block: height}

	d, err := dump.NewCreator(dir, id)
	if err != nil {
		return fmt.Errorf("init local dumper: %w", err)
	}
	defer d.Close()

	err = d.SetContract(*st)
	if err != nil {
		return err
	}

	var n int

	err = iterateContractStorage(&client.Client, height, contract, func(key, value []byte) error {
		n++
		return d.Write(key, value)
	})
	if err != nil {
		return err
	}

	err = d.Flush()
	if err != nil {
		return fmt.Errorf("flush dump: %w", err)
	}

	log.Info("Token contract is successfully dumped",
		zap.String("dir", dir), zap.Stringer("id", id), zap.Int("items", n))

	return nil
}

// iterateContractStorage iterates over all storage items of the contract at
// the given height and passes them into f. Breaks on any f's error and
// returns it.
func iterateContractStorage(c *rpcclient.Client, height uint32, contract util.Uint160, f func(key, value []byte) error) error {
	stateRoot, err := c.GetStateRootByHeight(height)
	if err != nil {
		return fmt.Errorf("get state root at block #%d: %w", height, err)
	}

	var start []byte

	for {
		res, err := c.FindStates(stateRoot.Root, contract, nil, start, nil)
		if err != nil {
			return fmt.Errorf("get storage items of the contract at state root '%s': %w", stateRoot.Root, err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return err
			}
		}

		if !res.Truncated || len(res.Results) == 0 {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}
