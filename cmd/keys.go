package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bank-reconciler/core/config"
	"bank-reconciler/core/reconcile"
	"bank-reconciler/core/table"

	"github.com/spf13/cobra"
)

var (
	keysSide     string
	keysSkipRows int
)

// keysCmd prints the derived key of every row of an export.
var keysCmd = &cobra.Command{
	Use:   "keys <file>",
	Short: "Print the match key of every row of an export",
	Long: `Loads a ledger or statement export and prints the line, key and description of
every row. Useful to see why a movement stays pending.

Examples:
  keys --side bank statement.xls
  keys --side company --skip-rows 0 ledger.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		side, err := reconcile.ParseSide(keysSide)
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		skip := cfg.Reconcile.CompanySkipRows
		if side == reconcile.Bank {
			skip = cfg.Reconcile.BankSkipRows
		}
		if cmd.Flags().Changed("skip-rows") {
			skip = keysSkipRows
		}

		return printKeys(cmd.OutOrStdout(), side, args[0], skip)
	},
}

func init() {
	keysCmd.Flags().StringVar(&keysSide, "side", "company", "Export side: company or bank")
	keysCmd.Flags().IntVar(&keysSkipRows, "skip-rows", 0, "Title rows above the header (defaults to the configured offset)")
	RootCmd.AddCommand(keysCmd)
}

// printKeys writes one tab separated line per row: sheet line, key and first column.
func printKeys(w io.Writer, side reconcile.Side, path string, skip int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	t, err := table.Load(f, table.LoadOptions{Name: filepath.Base(path), SkipRows: skip})
	if err != nil {
		return err
	}

	keys, err := reconcile.DeriveKeys(reconcile.SchemaFor(side), t)
	if err != nil {
		return err
	}

	for i, row := range t.Rows {
		label := ""
		if len(row.Cells) > 0 {
			label = row.Cells[0].String()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", row.Line, keys[i], label)
	}
	return nil
}
