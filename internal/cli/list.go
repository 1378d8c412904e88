package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mrlokans/inventory/internal/config"
	"github.com/mrlokans/inventory/internal/database"
	"github.com/mrlokans/inventory/internal/database/catalog"
	"github.com/mrlokans/inventory/internal/database/inventory"
)

type ListCommand struct {
	Kind         string
	DatabasePath string
	Variant      string

	out io.Writer
}

func NewListCommand() *ListCommand {
	return &ListCommand{out: os.Stdout}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)

	fs.StringVar(&cmd.Kind, "kind", "movies", "What to list: movies, directors, actors or items")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.Variant, "variant", "", "Schema variant: catalog or inventory (default: derived from -kind)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print the records of one table.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s list -kind movies\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s list -kind items -db ./items.db\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	switch cmd.Kind {
	case "movies", "directors", "actors":
		if cmd.Variant == "" {
			cmd.Variant = string(database.VariantCatalog)
		}
	case "items":
		if cmd.Variant == "" {
			cmd.Variant = string(database.VariantInventory)
		}
	default:
		fs.Usage()
		return fmt.Errorf("unknown kind %q", cmd.Kind)
	}

	return nil
}

func (cmd *ListCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath, cmd.Variant)
	if err != nil {
		return err
	}
	defer db.Close()

	w := tabwriter.NewWriter(cmd.out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	if cmd.Kind == "items" {
		return listItems(w, inventory.NewRepository(db.DB))
	}

	repo := catalog.NewRepository(db.DB)
	switch cmd.Kind {
	case "directors":
		directors, err := repo.GetAllDirectors()
		if err != nil {
			return fmt.Errorf("failed to list directors: %w", err)
		}
		fmt.Fprintln(w, "ID\tNAME\tNATIONALITY\tBORN")
		for _, d := range directors {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", d.ID, d.Name, d.Nationality, d.BirthYear)
		}
	case "actors":
		actors, err := repo.GetAllActors()
		if err != nil {
			return fmt.Errorf("failed to list actors: %w", err)
		}
		fmt.Fprintln(w, "ID\tNAME\tNATIONALITY\tBORN")
		for _, a := range actors {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", a.ID, a.Name, a.Nationality, a.BirthYear)
		}
	default:
		movies, err := repo.GetAllMovies()
		if err != nil {
			return fmt.Errorf("failed to list movies: %w", err)
		}
		fmt.Fprintln(w, "ID\tTITLE\tYEAR\tDIRECTOR\tCAST")
		for _, m := range movies {
			actors, err := repo.GetActorsForMovie(m.ID)
			if err != nil {
				return fmt.Errorf("failed to list actors of movie %d: %w", m.ID, err)
			}
			names := make([]string, 0, len(actors))
			for _, a := range actors {
				names = append(names, a.Name)
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", m.ID, m.Title, m.Year, m.Director.Name, strings.Join(names, ", "))
		}
	}
	return nil
}

func listItems(w io.Writer, repo *inventory.Repository) error {
	items, err := repo.GetAllItems()
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}
	fmt.Fprintln(w, "ID\tNAME\tQUANTITY")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%d\n", item.ID, item.Name, item.Quantity)
	}
	return nil
}
