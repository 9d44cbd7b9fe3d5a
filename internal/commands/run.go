package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerize-dev/ledgerize/internal/config"
	"github.com/ledgerize-dev/ledgerize/internal/export"
	"github.com/ledgerize-dev/ledgerize/internal/format"
	"github.com/ledgerize-dev/ledgerize/internal/ingest"
	"github.com/ledgerize-dev/ledgerize/internal/logger"
	"github.com/ledgerize-dev/ledgerize/internal/model"
	"github.com/ledgerize-dev/ledgerize/internal/rules"
)

func newRunCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Normalize statement exports and write the ledger files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.FileName, "path to ledgerize.yaml")

	return cmd
}

func runRun(configPath string) error {
	log := logger.New()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	catalog := format.DefaultCatalog()
	catalog.Append(cfg.Formats...)

	cat, err := rules.DefaultCategorizer(cfg.Categories...)
	if err != nil {
		return fmt.Errorf("building category rules: %w", err)
	}

	paths, err := ingest.Scan(cfg.Statements.Dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		log.Warn().Str("dir", cfg.Statements.Dir).Msg("no statement files found")
		return nil
	}

	var txns []model.Transaction
	for _, path := range paths {
		f, err := catalog.Lookup(path)
		if err != nil {
			return err
		}
		rows, err := ingest.File(path, f, cat)
		if err != nil {
			return err
		}
		log.Info().
			Str("file", filepath.Base(path)).
			Str("source", f.SourceKey).
			Int("rows", len(rows)).
			Msg("normalized")
		txns = append(txns, rows...)
	}

	ledger := export.Split(txns)
	if err := export.WriteLedger(cfg.Ledger.Dir, ledger); err != nil {
		return err
	}

	log.Info().
		Int("income", len(ledger.Income)).
		Int("expenses", len(ledger.Expenses)).
		Str("dir", cfg.Ledger.Dir).
		Msg("ledger written")
	return nil
}
