package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"bank-reconciler/core/config"
	"bank-reconciler/core/database"
	"bank-reconciler/core/logger"
	"bank-reconciler/core/reconcile"
	"bank-reconciler/core/report"
	"bank-reconciler/core/storage"
	"bank-reconciler/feature/reconciliation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// reconcileFlags holds the inputs of a CLI reconciliation run.
type reconcileFlags struct {
	company       string
	bank          string
	companyObject string
	bankObject    string
	companyQuery  string
	out           string
	mode          string
	publish       bool
	companySkip   int
	bankSkip      int
}

var runFlags reconcileFlags

// newStorageClient connects to the bucket used for object sources and published reports.
var newStorageClient = storage.NewClient

// reconcileCmd reconciles a company ledger against a bank statement.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a company ledger against a bank statement",
	Long: `Matches every company movement against the bank statement and writes the
pending movements of both sides to an xlsx workbook.

Each side is read from a local file, an object of the storage bucket, or (company
side only) a SQL query against the accounting database.

Examples:
  # Local exports
  reconcile --company ledger.xlsx --bank statement.xls

  # One to one pairing instead of key membership
  reconcile --company ledger.xlsx --bank statement.xls --mode multiset

  # Ledger from the database, statement from the bucket, report uploaded
  reconcile --company-query "SELECT ..." --bank-object exports/statement.xls --publish`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("company-skip-rows") {
			cfg.Reconcile.CompanySkipRows = runFlags.companySkip
		}
		if cmd.Flags().Changed("bank-skip-rows") {
			cfg.Reconcile.BankSkipRows = runFlags.bankSkip
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		_, err = runReconcile(cmd.Context(), cfg, l, runFlags)
		return err
	},
}

func init() {
	f := reconcileCmd.Flags()
	f.StringVar(&runFlags.company, "company", "", "Company ledger export (xlsx, xls, csv)")
	f.StringVar(&runFlags.bank, "bank", "", "Bank statement export (xlsx, xls, csv)")
	f.StringVar(&runFlags.companyObject, "company-object", "", "Read the company ledger from this bucket object")
	f.StringVar(&runFlags.bankObject, "bank-object", "", "Read the bank statement from this bucket object")
	f.StringVar(&runFlags.companyQuery, "company-query", "", "Read the company ledger from the database (defaults to reconcile.company_query)")
	f.StringVarP(&runFlags.out, "out", "o", report.FileName, "Report output path")
	f.StringVar(&runFlags.mode, "mode", "", "Match mode: membership or multiset (defaults to reconcile.mode)")
	f.BoolVar(&runFlags.publish, "publish", false, "Upload the report to the storage bucket")
	f.IntVar(&runFlags.companySkip, "company-skip-rows", 0, "Title rows above the ledger header (defaults to reconcile.company_skip_rows)")
	f.IntVar(&runFlags.bankSkip, "bank-skip-rows", 0, "Title rows above the statement header (defaults to reconcile.bank_skip_rows)")

	RootCmd.AddCommand(reconcileCmd)
}

// runReconcile executes one run and writes the report. No report is written on failure,
// including a failed upload when publishing.
func runReconcile(ctx context.Context, cfg *config.Config, l *zap.Logger, flags reconcileFlags) (*reconcile.Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	query := flags.companyQuery
	if query == "" && flags.company == "" && flags.companyObject == "" {
		query = cfg.Reconcile.CompanyQuery
	}

	var client storage.Client
	if flags.companyObject != "" || flags.bankObject != "" || flags.publish {
		c, err := newStorageClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		client = c
	}

	var db *gorm.DB
	if query != "" {
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if sqlDB, err := conn.DB(); err == nil {
			defer sqlDB.Close()
		}
		db = conn
	}

	svc := reconciliation.NewService(client, cfg.Storage.Bucket, l, db, cfg.Reconcile)

	company, closeCompany, err := fileSource(flags.company)
	if err != nil {
		return nil, err
	}
	defer closeCompany()
	company.Object = flags.companyObject
	company.Query = query

	bank, closeBank, err := fileSource(flags.bank)
	if err != nil {
		return nil, err
	}
	defer closeBank()
	bank.Object = flags.bankObject

	res, err := svc.Reconcile(ctx, company, bank, flags.mode)
	if err != nil {
		return nil, err
	}

	data, err := svc.Report(res)
	if err != nil {
		return nil, err
	}

	fields := []zap.Field{
		zap.String("report", flags.out),
		zap.Int("matched_company", res.Summary.MatchedCompany),
		zap.Int("matched_bank", res.Summary.MatchedBank),
		zap.Int("pending_company", res.Summary.PendingCompany),
		zap.Int("pending_bank", res.Summary.PendingBank),
		zap.String("pending_company_amount", res.Summary.PendingCompanyAmount.StringFixed(2)),
		zap.String("pending_bank_amount", res.Summary.PendingBankAmount.StringFixed(2)),
	}

	// Publish first so that a failed upload leaves no local report behind
	if flags.publish {
		object, err := svc.Publish(ctx, data)
		if err != nil {
			return nil, err
		}
		fields = append(fields, zap.String("object", object))
	}

	if err := os.WriteFile(flags.out, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	l.Info(res.Summary.Message(), fields...)
	return &res.Summary, nil
}

// fileSource opens a local export. An empty path yields an empty Source.
func fileSource(path string) (reconciliation.Source, func(), error) {
	if path == "" {
		return reconciliation.Source{}, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return reconciliation.Source{}, func() {}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return reconciliation.Source{Name: filepath.Base(path), Reader: f}, func() { _ = f.Close() }, nil
}
