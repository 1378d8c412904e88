package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/inventory/internal/config"
)

type ResetCommand struct {
	DatabasePath string
	Variant      string

	out io.Writer
}

func NewResetCommand() *ResetCommand {
	return &ResetCommand{out: os.Stdout}
}

func (cmd *ResetCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.Variant, "variant", config.DefaultVariant, "Schema variant: catalog or inventory")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s reset [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Drop and recreate every table. Catalog files are reseeded with the demonstration data.\n")
		fmt.Fprintf(os.Stderr, "All existing rows are lost.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ResetCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath, cmd.Variant)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Reset(); err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}

	counts, err := db.TableCounts()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.out, "Reset %s (%s)\n", cmd.DatabasePath, db.Variant())
	for table, n := range counts {
		fmt.Fprintf(cmd.out, "  %s: %d rows\n", table, n)
	}
	return nil
}
