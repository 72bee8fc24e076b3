package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/urfave/cli"
)

var configFlag = cli.StringFlag{
	Name:     "config, c",
	Usage:    "Path to the YAML configuration file",
	Required: true,
}

func main() {
	app := cli.NewApp()
	app.Name = "stake-token"
	app.Usage = "Token contract deployment and maintenance"
	app.Commands = []cli.Command{
		refunderCommand,
		deployCommand,
		dumpCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withConfig wraps command action requiring configuration and the context
// cancelled by SIGINT or SIGTERM.
func withConfig(f func(context.Context, *cli.Context, *config) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := loadConfig(c.String("config"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		err = f(ctx, c, cfg)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		return nil
	}
}

// dial opens WebSocket connection to the configured Neo RPC server.
func dial(ctx context.Context, cfg *config) (*rpcclient.WSClient, error) {
	c, err := rpcclient.NewWS(ctx, cfg.RPC.Endpoint, rpcclient.WSOptions{
		Options: rpcclient.Options{
			DialTimeout:    cfg.RPC.DialTimeout,
			RequestTimeout: cfg.RPC.RequestTimeout,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("dial Neo RPC server %s: %w", cfg.RPC.Endpoint, err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("init Neo RPC client: %w", err)
	}

	return c, nil
}
