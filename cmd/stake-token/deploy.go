package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/stake-token-contract/contracts"
	"github.com/nspcc-dev/stake-token-contract/deploy"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var deployCommand = cli.Command{
	Name:  "deploy",
	Usage: "Deploy the Token contract or update it to the local version",
	Flags: []cli.Flag{
		configFlag,
		cli.StringFlag{
			Name:  "contract-dir, d",
			Usage: "Directory with compiled contract.nef and manifest.json",
			Value: contracts.TokenDir,
		},
		cli.StringFlag{
			Name:  "owner",
			Usage: "Address of the contract owner, wallet account by default",
		},
		cli.StringFlag{
			Name:  "committee",
			Usage: "Address of the committee account in the wallet co-signing the update, wallet account by default",
		},
		cli.DurationFlag{
			Name:  "refund-delay",
			Usage: "Refund delay set on the first deployment, contract default if unset",
		},
	},
	Action: withConfig(runDeploy),
}

func runDeploy(ctx context.Context, c *cli.Context, cfg *config) error {
	log, err := cfg.logger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var prm deploy.Prm

	prm.Logger = log

	ctr, err := contracts.Read(os.DirFS(c.String("contract-dir")), ".")
	if err != nil {
		return fmt.Errorf("read compiled contract: %w", err)
	}

	prm.Token.Common = deploy.CommonDeployPrm{
		NEF:      ctr.NEF,
		Manifest: ctr.Manifest,
	}

	if cfg.Contract != "" {
		prm.Token.Address, err = cfg.contract()
		if err != nil {
			return err
		}
	}

	if s := c.String("owner"); s != "" {
		prm.Token.Owner, err = address.StringToUint160(s)
		if err != nil {
			return fmt.Errorf("invalid owner address: %w", err)
		}
	}

	prm.Token.RefundDelay = c.Duration("refund-delay")
	if prm.Token.RefundDelay < 0 {
		return fmt.Errorf("negative refund delay %s", prm.Token.RefundDelay)
	}

	prm.LocalAccount, err = cfg.account()
	if err != nil {
		return err
	}

	if s := c.String("committee"); s != "" {
		prm.Committee, err = cfg.walletAccount(s)
		if err != nil {
			return fmt.Errorf("committee account: %w", err)
		}
	}

	client, err := dial(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	prm.Blockchain = client

	addr, err := deploy.Deploy(ctx, prm)
	if err != nil {
		return err
	}

	log.Info("Token contract is ready", zap.String("address", address.Uint160ToString(addr)), zap.Stringer("hash", addr))

	return nil
}
