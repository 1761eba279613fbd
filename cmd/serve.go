package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/0glabs/lunch-buddies/gateway"
	"github.com/0glabs/lunch-buddies/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	serveArgs struct {
		endpoint      string
		origins       []string
		groupSize     int
		cacheSize     int
		expiry        time.Duration
		seed          uint64
		statsInterval time.Duration
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start web service to create groups in browser",
		Run:   startServe,
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveArgs.endpoint, "endpoint", "127.0.0.1:6789", "HTTP endpoint to serve page and API")
	serveCmd.Flags().StringSliceVar(&serveArgs.origins, "origins", nil, "CORS origins allowed, separated by comma, all if not specified")
	serveCmd.Flags().IntVar(&serveArgs.groupSize, "group-size", session.DefaultGroupSize, "Default group size of new sessions")
	serveCmd.Flags().IntVar(&serveArgs.cacheSize, "session-cache-size", 4096, "Max number of sessions kept in memory")
	serveCmd.Flags().DurationVar(&serveArgs.expiry, "session-expiry", 12*time.Hour, "Idle time before a session is dropped")
	serveCmd.Flags().Uint64Var(&serveArgs.seed, "seed", 0, "Fixed shuffle seed for reproducible groups, random if 0")
	serveCmd.Flags().DurationVar(&serveArgs.statsInterval, "stats-interval", 10*time.Minute, "Interval to log session stats, disabled if 0")

	rootCmd.AddCommand(serveCmd)
}

func startServe(*cobra.Command, []string) {
	if serveArgs.groupSize < session.MinGroupSize {
		logrus.WithField("groupSize", serveArgs.groupSize).Fatal("Default group size too small")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gateway.MustServe(ctx, gateway.Config{
		Endpoint:       serveArgs.endpoint,
		OriginsAllowed: serveArgs.origins,
		Session: session.StoreConfig{
			CacheSize:        serveArgs.cacheSize,
			Expiry:           serveArgs.expiry,
			DefaultGroupSize: serveArgs.groupSize,
			Seed:             serveArgs.seed,
		},
		StatsInterval: serveArgs.statsInterval,
	})
}
