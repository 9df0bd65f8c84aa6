package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/pochita1998/velocity-framework/pkg/dom"
	"github.com/pochita1998/velocity-framework/pkg/resource"
	"github.com/pochita1998/velocity-framework/pkg/server"
	"github.com/pochita1998/velocity-framework/pkg/snapshot"
	"github.com/pochita1998/velocity-framework/pkg/velocity"
)

func serveCmd() *cobra.Command {
	var (
		addr     string
		title    string
		bucket   string
		region   string
		prefix   string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start a demo application server",
		Long: `Start an HTTP server running the built-in counter demo.

The demo exercises the full runtime: a reactive signal drives the
rendered page, resources load in the background, and the serialized
state snapshot is embedded for client hydration.

Routes:
  GET /             Server-rendered page with embedded state
  GET /state        Current state snapshot as JSON
  GET /metrics      Prometheus metrics
  GET /healthz      Liveness probe
  GET /devtools/ws  Live runtime inspection stream

Examples:
  velocity serve
  velocity serve --addr=:3000
  velocity serve --snapshot-bucket=my-bucket --snapshot-region=us-east-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, title, bucket, region, prefix, logLevel)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
	cmd.Flags().StringVarP(&title, "title", "t", "Velocity Demo", "Page title")
	cmd.Flags().StringVar(&bucket, "snapshot-bucket", "", "S3 bucket for state persistence (in-memory when empty)")
	cmd.Flags().StringVar(&region, "snapshot-region", "us-east-1", "S3 region for state persistence")
	cmd.Flags().StringVar(&prefix, "snapshot-prefix", "velocity/", "S3 key prefix for state persistence")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}

func runServe(addr, title, bucket, region, prefix, logLevel string) error {
	printBanner()

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	rt := velocity.New(velocity.WithLogger(logger))
	cache := resource.NewCache(resource.WithLogger(logger))

	count, setCount := rt.Signal(0)
	rt.CreateEffect(func() {
		logger.Debug("counter changed", "value", count())
	})
	setCount(1)

	cache.Request("demo:motd", func(ctx context.Context) (any, error) {
		return "Welcome to Velocity", nil
	})

	var store snapshot.Store
	if bucket != "" {
		client := s3.New(s3.Options{Region: region})
		store = snapshot.NewS3Store(client, bucket, prefix)
		info("persisting state to s3://%s/%s", bucket, prefix)
	} else {
		store = snapshot.NewMemoryStore()
		info("persisting state in memory")
	}

	srv := server.New(
		&server.Config{Address: addr, Title: title},
		rt, cache, demoRoot,
		server.WithSnapshotStore(store),
		server.WithLogger(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	info("listening on %s", addr)
	return srv.Start(ctx)
}

// demoRoot renders the counter demo page body.
func demoRoot(doc *dom.MemoryDocument) (*dom.Node, error) {
	root, err := doc.CreateElement("main")
	if err != nil {
		return nil, err
	}

	heading, err := doc.CreateElement("h1")
	if err != nil {
		return nil, err
	}
	if err := doc.SetText(heading, "Velocity Demo"); err != nil {
		return nil, err
	}
	if err := doc.AppendChild(root, heading); err != nil {
		return nil, err
	}

	counter, err := doc.CreateElement("div")
	if err != nil {
		return nil, err
	}
	if err := doc.SetAttribute(counter, "data-island", "counter"); err != nil {
		return nil, err
	}
	if err := doc.SetAttribute(counter, "data-hydrate", "pending"); err != nil {
		return nil, err
	}
	if err := doc.AppendChild(root, counter); err != nil {
		return nil, err
	}

	return root, nil
}
