package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sqlpen/sqlpen/internal/db"
	"github.com/sqlpen/sqlpen/internal/sqltext"
)

var execCmd = &cobra.Command{
	Use:   "exec <sql>",
	Short: "Run a single statement and print the result",
	Long:  `Runs one SQL statement against the resolved database and prints the result to stdout, for scripting and quick checks without the TUI.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().String("connection", "", "open a saved connection by name")
	execCmd.Flags().Bool("read-only", false, "open the database read-only")
	execCmd.Flags().String("database", "", "database file to open")
}

func runExec(cmd *cobra.Command, args []string) error {
	var pathArgs []string
	if dbFlag, _ := cmd.Flags().GetString("database"); dbFlag != "" {
		pathArgs = []string{dbFlag}
	}
	dbPath, readOnly, err := resolveDatabase(cmd, pathArgs)
	if err != nil {
		return err
	}

	conn, err := db.Open(dbPath, db.Options{ReadOnly: readOnly})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := conn.Execute(ctx, args[0])
	if err != nil {
		return err
	}

	if res.Kind != sqltext.KindQuery {
		fmt.Printf("%d row(s) affected\n", res.RowsAffected)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, col := range res.Columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)
	for _, row := range res.Rows {
		for i, val := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, val)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
