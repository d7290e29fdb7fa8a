// Package cli implements the command-line interface for microbench.
//
// Arguments are leading flags followed by free-form tokens. Each token
// that names a benchmark section enables it; anything else is ignored.
// Result lines go to stdout, one per target; all logging goes to
// stderr so the report stays machine-readable.
package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/eunmann/microbench/internal/logctx"
	"github.com/eunmann/microbench/pkg/bench"
	"github.com/eunmann/microbench/pkg/hostinfo"
	"github.com/eunmann/microbench/pkg/humanfmt"
	"github.com/eunmann/microbench/pkg/logging"
	"github.com/rs/zerolog"
)

// Run executes the CLI with the given arguments (os.Args[1:]).
func Run(args []string) error {
	return runWith(args, os.Stdout)
}

// runWith is Run with an injectable report writer so tests can capture
// the report. Only result lines are written to w.
func runWith(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("microbench", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "enable debug logging")
	pretty := fs.Bool("pretty", false, "human-friendly log output")
	jsonOut := fs.Bool("json", false, "report results as JSON lines instead of text")

	if err := fs.Parse(args); err != nil {
		return err
	}

	logging.Init(*debug, *pretty)

	ctx := logctx.WithLogger(context.Background(), *logging.L())
	ctx = logctx.WithInt(ctx, "pid", os.Getpid())
	log := logctx.FromContext(ctx)

	logHostEnv(log)

	tokens := fs.Args()
	for _, tok := range tokens {
		if !slices.Contains(knownTokens(), tok) {
			log.Debug().Str("arg", tok).Msg("ignoring unrecognized argument")
		}
	}

	var selected []section
	for _, sec := range builtinSections() {
		if slices.Contains(tokens, sec.Token) {
			selected = append(selected, sec)
		}
	}
	if len(selected) == 0 {
		log.Info().Strs("known", knownTokens()).Msg("no benchmark sections selected")
		return nil
	}

	selectedTokens := make([]string, len(selected))
	targets := 0
	for i, sec := range selected {
		selectedTokens[i] = sec.Token
		targets += len(sec.Targets)
	}
	log.Info().
		Strs("sections", selectedTokens).
		Int("targets", targets).
		Msg("starting benchmark suite")

	suiteStart := time.Now()
	for _, sec := range selected {
		sctx := logctx.WithStr(ctx, "section", sec.Token)
		for _, t := range sec.Targets {
			res := bench.Run(sctx, t)
			if err := report(w, res, *jsonOut); err != nil {
				return fmt.Errorf("write result: %w", err)
			}
		}
	}

	logging.SuiteComplete(log, time.Since(suiteStart)).
		Int("sections", len(selected)).
		Int("targets", targets).
		Log("suite finished")

	return nil
}

// report writes one result line to w.
func report(w io.Writer, res bench.Result, asJSON bool) error {
	if asJSON {
		data, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	_, err := fmt.Fprintln(w, res.Line())
	return err
}

// logHostEnv records the machine the numbers were produced on.
func logHostEnv(log zerolog.Logger) {
	env := hostinfo.Collect()
	e := log.Info().
		Str("goos", env.GOOS).
		Str("goarch", env.GOARCH).
		Int("num_cpu", env.NumCPU).
		Str("go_version", env.GoVersion).
		Uint64("total_ram_bytes", env.TotalRAMBytes).
		Bool("ram_reliable", env.RAMReliable)
	if env.Hostname != "" {
		e = e.Str("hostname", env.Hostname)
	}
	if logging.IsPrettyMode() {
		e = e.Str("total_ram_h", humanfmt.BytesUint64(env.TotalRAMBytes))
	}
	e.Msg("host environment")
}
