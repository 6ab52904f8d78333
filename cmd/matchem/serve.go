package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matchem-poker/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host Matchem Poker over SSH",
	Long: `Listen for SSH connections and give each one the mode menu.

Everyone on the server shares one scoreboard. Saved games belong to the
SSH user name, so "ssh ann@host" and "ssh bob@host" resume different games.
Connections without a terminal are refused.

The host key is read from --host-key, or generated on first start at
~/.matchem/host_key.

Examples:
  matchem serve
  matchem serve --ssh :2222 --idle-timeout 10
  matchem serve --host-key ./host_key --db ./scores.db

Then connect with:
  ssh -p 23234 you@localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&flagSSHAddr, "ssh", ":23234", "listen address, host:port")
	f.StringVar(&flagHostKey, "host-key", "", "host key file (default ~/.matchem/host_key)")
	f.IntVar(&flagIdleTimeout, "idle-timeout", 30, "minutes before an idle session is dropped")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(true)
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	cfg.Logger = logger.WithPrefix("matchem-ssh")

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Matchem Poker on %s, Ctrl+C stops\n", server.Addr())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Serve(ctx)
}
