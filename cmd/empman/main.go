package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"empman/internal/cli"
	"empman/internal/domain/audit"
	"empman/internal/domain/employee"
	"empman/internal/domain/payroll"
	"empman/internal/platform/config"
	cryptoutil "empman/internal/platform/crypto"
	"empman/internal/platform/db"
	"empman/internal/platform/metrics"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "empman",
		Short:        "Interactive manager for salaried and hourly employee records",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	config.RegisterFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		v, err := config.NewViper(cmd.Flags())
		if err != nil {
			return err
		}
		cfg := config.Load(v)
		if err := cfg.Validate(); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	fileLog := audit.NewFileLog(cfg.LogFile)
	var pgLog *audit.PGLog
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("db connect failed: %w", err)
		}
		defer pool.Close()
		if err := db.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
		pgLog = audit.NewPGLog(pool)
		logger.Info("recording actions to database", "logFile", cfg.LogFile)
	}

	recorder, history := actionSinks(fileLog, pgLog)

	crypto, err := cryptoutil.New(cfg.DataEncryptionKey)
	if err != nil {
		return err
	}

	store := employee.NewStore()
	deps := cli.Deps{
		Service:  employee.NewService(store, recorder),
		Payslips: payroll.NewPayslipService(cfg.PayslipDir, crypto),
		History:  history,
		Metrics:  metrics.New(),
		Logger:   logger,
	}

	prompt := cli.NewTerminalPrompter()
	defer prompt.Close()
	return cli.New(deps, prompt, os.Stdout).Run(ctx)
}

// actionSinks writes to the file log and, when present, the database table.
// History is read from the database when it is configured.
func actionSinks(fileLog *audit.FileLog, pgLog *audit.PGLog) (audit.Recorder, audit.Lister) {
	if pgLog == nil {
		return fileLog, fileLog
	}
	return audit.Multi{fileLog, pgLog}, pgLog
}
