package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vmxmy/invoiceview/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	demo := flag.Bool("demo", false, "serve a built-in demo dataset instead of connecting to a backend")
	demoCount := flag.Int("demo-count", 0, "invoice count for the demo dataset (optional)")
	pageSize := flag.Int("page-size", 0, "invoices per fetched page (optional, overrides config)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Demo:       *demo,
		DemoCount:  *demoCount,
	}
	if size := *pageSize; size > 0 {
		opts.PageSize = size
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "invoiceview: %v\n", err)
		return 1
	}
	return 0
}
