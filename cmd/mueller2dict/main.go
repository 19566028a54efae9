// Command mueller2dict converts the Mueller English-Russian dictionary
// (KOI8-R, one entry per line) into dictfmt markup.
//
// It reads the dictionary from stdin and writes UTF-8 markup to stdout.
// Progress letters and logs go to stderr.
//
// Environment:
//
//	CONVERT_ON_ERROR        abort (default) or skip lines that cannot be parsed
//	CONVERT_PROGRESS        print progress letters (default true)
//	CONVERT_MAX_LINE_BYTES  longest accepted source line (default 1 MiB)
//	LOG_LEVEL, LOG_FORMAT   logging (info/text by default)
//	CONFIG_PATH             optional YAML file with the same settings
//
// Exit codes: 0 = success, 1 = error or skipped lines.
package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/mueller-dict/internal/app"
	"github.com/heartmarshall/mueller-dict/internal/app/converter"
	"github.com/heartmarshall/mueller-dict/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Debug("starting", slog.String("version", app.BuildVersion()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var progress io.Writer
	if cfg.Convert.Progress {
		progress = os.Stderr
	}

	conv := converter.New(logger, cfg.Convert, progress)

	stats, err := conv.Run(ctx, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("conversion failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}

	if stats.Skipped > 0 {
		logger.Warn("conversion completed with errors", slog.Int("skipped", stats.Skipped))
		stop()
		os.Exit(1)
	}
}
