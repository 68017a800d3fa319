// typedesc-docs serves rendered schema documentation from a directory of
// JSON schema files, reloading connected browsers when a schema changes.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/matthiasbeyer/type-description/preview"
)

var (
	addr    string
	dir     string
	rate    int
	burst   int
	verbose bool
)

func init() {
	flag.StringVar(&addr, "addr", ":8080", "Address to listen on")
	flag.StringVar(&dir, "dir", "./schemas", "Directory of JSON schema files")
	flag.IntVar(&rate, "rate", 0, "Per-client requests per second (0 disables limiting)")
	flag.IntVar(&burst, "burst", 10, "Burst allowance for rate limiting")
	flag.BoolVar(&verbose, "v", false, "Verbose output")
}

func main() {
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []preview.Option{preview.WithLogger(logger)}
	if rate > 0 {
		opts = append(opts, preview.WithRateLimit(rate, burst))
	}

	srv := preview.New(addr, dir, opts...)
	if err := srv.Serve(ctx); err != nil {
		logger.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}
