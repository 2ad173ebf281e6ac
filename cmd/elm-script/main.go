// Command elm-script runs a compiled guest program against the bridge:
// it loads the artifact, hands the guest its startup configuration, and
// serves the guest's side-effect requests until it exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/geeksperiments/elm-script/config"
	"github.com/geeksperiments/elm-script/domain/entities"
	"github.com/geeksperiments/elm-script/host"
	"github.com/geeksperiments/elm-script/schema"
)

func main() {
	os.Exit(run())
}

func run() int {
	printSchema := flag.Bool("print-schema", false, "print the request protocol JSON schema and exit")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *printSchema {
		data, err := schema.Protocol()
		if err != nil {
			logger.Error("failed to generate protocol schema", "error", err)
			return 1
		}
		fmt.Println(string(data))
		return 0
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: elm-script [flags] <program.wasm> [script args...]")
		return 1
	}

	cfg, err := config.Detect(flag.Args()[1:], os.Environ())
	if err != nil {
		logger.Error("cannot start bridge", "error", err)
		return 1
	}
	if err := config.Validate(cfg); err != nil {
		logger.Error("cannot start bridge", "error", err)
		return 1
	}

	artifact, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Error("failed to read program artifact", "path", flag.Arg(0), "error", err)
		return 1
	}

	ctx := context.Background()
	loader := host.NewLoader(ctx)
	defer loader.Close(ctx)

	program, err := loader.Load(ctx, artifact)
	if err != nil {
		logger.Error("failed to load program", "error", err)
		return 1
	}

	requests := make(chan entities.Request)
	responses := make(chan entities.Response)

	go func() {
		defer close(requests)
		if err := program.Run(ctx, cfg, requests, responses); err != nil {
			logger.Error("program failed", "error", err)
		}
	}()

	dispatcher := host.NewDispatcher(requests, responses, host.WithLogger(logger))
	return dispatcher.Serve(ctx)
}
