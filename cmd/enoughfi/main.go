// Command enoughfi is a terminal client for the EnoughFi ledger and FIRE
// tracking service.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"

	"github.com/finwealth4all/enoughfi-client/internal/client"
	"github.com/finwealth4all/enoughfi-client/internal/core/services"
	"github.com/finwealth4all/enoughfi-client/internal/platform/config"
	"github.com/finwealth4all/enoughfi-client/internal/platform/logging"
	"github.com/finwealth4all/enoughfi-client/internal/tokenstore"
	"github.com/google/subcommands"
)

// app bundles the wired client stack shared by all commands.
type app struct {
	cfg     *config.Config
	api     *client.Client
	session *services.SessionService
	logger  *slog.Logger
}

// lazyTokens breaks the construction cycle between the client (which reads
// tokens) and the session (which owns them and is built on the client).
type lazyTokens struct {
	session *services.SessionService
}

func (l *lazyTokens) Token() string {
	if l.session == nil {
		return ""
	}
	return l.session.Token()
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.IsProduction)
	slog.SetDefault(logger)

	tokens := &lazyTokens{}
	api := client.New(cfg, tokens)
	session := services.NewSessionService(tokenstore.New(cfg.TokenFile), api, api, api, api)
	tokens.session = session

	return &app{cfg: cfg, api: api, session: session, logger: logger}, nil
}

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&loginCmd{}, "auth")
	commander.Register(&registerCmd{}, "auth")
	commander.Register(&demoCmd{}, "auth")
	commander.Register(&logoutCmd{}, "auth")
	commander.Register(&statusCmd{}, "fire")
	commander.Register(&onboardCmd{}, "fire")
	commander.Register(&accountsCmd{}, "ledger")
	commander.Register(&txnsCmd{}, "ledger")
	commander.Register(&importCmd{}, "ledger")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
