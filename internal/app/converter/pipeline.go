// Package converter runs the Mueller → DICT conversion over a stream of
// source lines.
package converter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mueller-dict/internal/config"
	"github.com/heartmarshall/mueller-dict/internal/dictfmt"
	"github.com/heartmarshall/mueller-dict/internal/domain"
	"github.com/heartmarshall/mueller-dict/internal/mueller"
)

// copyrightPrefix marks the line that carries the dictionary's copyright notice.
var copyrightPrefix = []byte(" (C)")

const initialBufSize = 64 * 1024

// Stats holds counters of a single run.
type Stats struct {
	Lines     int
	Entries   int
	Skipped   int
	Copyright bool
	Duration  time.Duration
}

// Converter reads Mueller source lines and writes DICT markup.
type Converter struct {
	log      *slog.Logger
	cfg      config.ConvertConfig
	progress io.Writer
}

// New creates a Converter. progress receives human-readable progress output;
// nil disables it.
func New(log *slog.Logger, cfg config.ConvertConfig, progress io.Writer) *Converter {
	return &Converter{
		log:      log,
		cfg:      cfg,
		progress: progress,
	}
}

// runState is the mutable state of one Run call.
type runState struct {
	lineNo        int
	copyrightSeen bool
	stats         Stats
}

// Run converts every line of in and writes the result to out.
// With the abort policy the first bad line stops the run and its error is
// returned; with the skip policy bad lines are logged and counted in
// Stats.Skipped.
func (c *Converter) Run(ctx context.Context, in io.Reader, out io.Writer) (Stats, error) {
	start := time.Now()
	log := c.log.With(slog.String("run_id", uuid.NewString()))
	log.Info("conversion started", slog.String("on_error", c.cfg.OnError))

	var st runState
	w := dictfmt.NewWriter(out)
	prog := newProgress(c.progress)
	prog.start()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, min(initialBufSize, c.cfg.MaxLineBytes)), c.cfg.MaxLineBytes)

	// Entries converted before a failure are still written out.
	fail := func(err error) (Stats, error) {
		_ = w.Flush()
		prog.abort()
		st.stats.Duration = time.Since(start)
		return st.stats, err
	}

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		st.lineNo++
		st.stats.Lines++
		line := scanner.Bytes()
		prog.observe(line)

		err := c.processLine(&st, w, line)
		if err == nil {
			continue
		}

		var le *domain.LineError
		if !errors.As(err, &le) {
			return fail(fmt.Errorf("write output: %w", err))
		}
		le.LineNo = st.lineNo

		if !c.cfg.SkipBadLines() {
			return fail(fmt.Errorf("convert: %w", err))
		}
		st.stats.Skipped++
		log.Warn("skipping line",
			slog.Int("line", st.lineNo),
			slog.String("error", le.Err.Error()),
			slog.String("content", le.Line),
		)
	}

	if err := scanner.Err(); err != nil {
		return fail(fmt.Errorf("read input (line %d): %w", st.lineNo+1, err))
	}
	if err := w.Flush(); err != nil {
		return fail(fmt.Errorf("write output: %w", err))
	}

	prog.done()
	st.stats.Duration = time.Since(start)

	log.Info("conversion completed",
		slog.Int("lines", st.stats.Lines),
		slog.Int("entries", st.stats.Entries),
		slog.Int("skipped", st.stats.Skipped),
		slog.Bool("copyright", st.stats.Copyright),
		slog.Duration("duration", st.stats.Duration),
	)
	return st.stats, nil
}

// processLine handles one source line. Conversion failures are returned as
// *domain.LineError; any other error comes from the output writer.
func (c *Converter) processLine(st *runState, w *dictfmt.Writer, line []byte) error {
	if bytes.HasPrefix(line, copyrightPrefix) {
		if st.copyrightSeen {
			return nil
		}
		st.copyrightSeen = true
		return c.writeCopyright(st, w, line)
	}

	entry, err := mueller.ConvertLine(line)
	if err != nil {
		return err
	}
	if err := w.WriteEntry(entry); err != nil {
		return err
	}
	st.stats.Entries++
	return nil
}

func (c *Converter) writeCopyright(st *runState, w *dictfmt.Writer, line []byte) error {
	text, err := mueller.Decode(line)
	if err != nil {
		return domain.NewLineError(mueller.DecodeLossy(line), err)
	}
	if err := w.WriteDatabaseInfo(mueller.Wrap(text, mueller.TextWidth, "", "")); err != nil {
		return err
	}
	st.stats.Copyright = true
	c.log.Debug("database info written", slog.Int("line", st.lineNo))
	return nil
}
