package main

import (
	"log/slog"
	"os"

	"nativeimg/export"
	"nativeimg/logging"
	"nativeimg/parallel"
	"nativeimg/probe"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Workers int  `help:"Number of workers, 0 for one per CPU" default:"0"`
	Verbose bool `help:"Log debug details, including the image internals" short:"v" default:"false"`

	Inspect probe.InspectCmd `cmd:"" help:"Report the storage an image would use without allocating it"`
	Fill    probe.FillCmd    `cmd:"" help:"Fill an image with a pattern in parallel and print its checksum"`
	Export  export.CLICmd    `cmd:"" help:"Fill an image and save one plane of it as a picture"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("nativeimg"),
		kong.Description("Build and exercise n-dimensional images over typed native storage."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if cli.Verbose {
		logging.SetLogger(logger)
	}

	pool := parallel.Start(cli.Workers)
	slog.Debug("running", "command", kctx.Command(), "workers", pool.Workers())

	err := kctx.Run(pool)
	pool.Wait()
	kctx.FatalIfErrorf(err)
}
