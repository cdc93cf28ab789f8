package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/slotkit/internal/config"
	"github.com/calvinalkan/slotkit/internal/fs"
	"github.com/calvinalkan/slotkit/internal/verify"
)

// VerifyCmd returns the verify command.
func VerifyCmd(cfg *config.Config, fsys fs.FS) *Command {
	flags := flag.NewFlagSet("verify", flag.ContinueOnError)
	flags.IntP("workers", "w", 0, "Worker goroutines (default: config, then GOMAXPROCS)")
	flags.UintSlice("bases", nil, "Only check these b values (default: all 65536)")
	flags.String("report", "", "Write a JSON report to `file`")

	return &Command{
		Flags: flags,
		Usage: "verify [flags]",
		Short: "Exhaustively check the version ordering",
		Long: `Check IsOlderVersion against an independent reference for every pair of
16-bit versions. For each b it checks that b is not older than itself, that
every a agrees with the reference, that exactly 32768 values of a are older,
and that of two distinct versions at least one is older.

The full run covers 2^32 pairs and is spread over worker goroutines.
Interrupting it cancels the remaining work.`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			return execVerify(ctx, o, cfg, fsys, flags)
		},
	}
}

func execVerify(ctx context.Context, o *IO, cfg *config.Config, fsys fs.FS, flags *flag.FlagSet) error {
	workers, _ := flags.GetInt("workers")
	if !flags.Changed("workers") {
		workers = cfg.WorkerCount()
	}

	if workers < 0 {
		return fmt.Errorf("%w: %d", config.ErrInvalidWorkers, workers)
	}

	opts := verify.Options{Workers: workers}

	if flags.Changed("bases") {
		raw, _ := flags.GetUintSlice("bases")

		opts.Bases = make([]uint16, 0, len(raw))

		for _, b := range raw {
			if b > math.MaxUint16 {
				return fmt.Errorf("%w: base %d", ErrInvalidVersion, b)
			}

			opts.Bases = append(opts.Bases, uint16(b))
		}
	}

	report, err := verify.Run(ctx, opts)
	if err != nil {
		return err
	}

	o.Println("checks:", report.ChecksMode)
	o.Printf("bases: %d  pairs: %d  failures: %d\n", report.Bases, report.Pairs, report.Failures)

	for _, f := range report.Findings {
		o.Printf("FAIL %s a=%s b=%s: %s\n", f.Property,
			formatVersion(f.A, cfg.Base), formatVersion(f.B, cfg.Base), f.Detail)
	}

	if report.Truncated {
		o.Printf("(showing first %d findings)\n", len(report.Findings))
	}

	if path, _ := flags.GetString("report"); path != "" {
		err := writeReport(fsys, cfg.EffectiveCwd, path, report)
		if err != nil {
			return err
		}
	}

	if !report.OK() {
		return fmt.Errorf("%w: %d failures", ErrPropertyViolated, report.Failures)
	}

	o.Println("ok")

	return nil
}

func writeReport(fsys fs.FS, workDir, path string, report verify.Report) error {
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	err = fsys.MkdirAll(filepath.Dir(path), 0o750)
	if err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}

	err = fsys.WriteFileAtomic(path, append(data, '\n'), 0o644)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
