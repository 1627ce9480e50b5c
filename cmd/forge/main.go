package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/blockforge-backend/internal/app"
	"github.com/goodnatureofminers/blockforge-backend/internal/logging"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"go.uber.org/zap"
)

type options struct {
	App     app.Config     `group:"builder"`
	Logging logging.Config `group:"logging" namespace:"log" env-namespace:"FORGE_LOG"`
}

// cli carries state shared by the subcommands. One command runs per process
// and assembles the builder on first use. Offline commands get a builder
// without wallet, network or registry, so those settings are never read.
type cli struct {
	ctx    context.Context
	opts   options
	logger *zap.Logger
	app    *app.App
}

func (c *cli) offline() *app.App {
	if c.app == nil {
		c.app = app.NewOffline(c.logger)
		c.app.Start(c.ctx)
	}
	return c.app
}

func (c *cli) builder() (*app.App, error) {
	if c.app != nil {
		return c.app, nil
	}
	a, err := app.New(c.ctx, c.opts.App, c.logger)
	if err != nil {
		return nil, err
	}
	a.Start(c.ctx)
	c.app = a
	return a, nil
}

func (c *cli) close() {
	if c.app != nil {
		c.app.Close()
	}
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}

func newParser(c *cli) *flags.Parser {
	parser := flags.NewParser(&c.opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		if c.logger == nil {
			logger, err := logging.New(c.opts.Logging)
			if err != nil {
				return err
			}
			c.logger = logger
		}
		return cmd.Execute(args)
	}

	mustAdd(parser, "catalog", "List features and blocks", "Print the feature catalog and the block palette.", &catalogCommand{cli: c})
	mustAdd(parser, "generate", "Generate Solidity from a block workspace", "Generate a contract from a serialized editor workspace.", &generateCommand{cli: c})
	mustAdd(parser, "template", "Render a feature template", "Render the template contract of one feature.", &templateCommand{cli: c})
	mustAdd(parser, "compose", "Compose features into one contract", "Build one contract combining several features.", &composeCommand{cli: c})
	mustAdd(parser, "validate", "Check a contract before deployment", "Run the pre-flight checks and print the gas estimate.", &validateCommand{cli: c})
	mustAdd(parser, "deploy", "Deploy a contract", "Compile and deploy a contract through hardhat or JSON-RPC.", &deployCommand{cli: c})
	mustAdd(parser, "accounts", "List wallet accounts", "List the accounts of every configured wallet.", &accountsCommand{cli: c})
	mustAdd(parser, "balance", "Show account balances", "Show native balances of addresses or of every wallet account.", &balanceCommand{cli: c})
	return parser
}

func mustAdd(parser *flags.Parser, name, short, long string, data any) {
	if _, err := parser.AddCommand(name, short, long, data); err != nil {
		panic(err)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	c := &cli{ctx: ctx}
	_, err := newParser(c).Parse()
	c.close()
	if err == nil {
		return
	}
	var ferr *flags.Error
	if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
		pterm.Println(ferr.Message)
		return
	}
	pterm.Error.Println(err)
	stop()
	os.Exit(1)
}
