package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/inventory/internal/config"
	"github.com/mrlokans/inventory/internal/database"
	"github.com/mrlokans/inventory/internal/database/inventory"
	"github.com/mrlokans/inventory/internal/entities"
	"github.com/mrlokans/inventory/internal/forms"
)

type AddItemCommand struct {
	Name         string
	Quantity     string
	DatabasePath string

	out io.Writer
}

func NewAddItemCommand() *AddItemCommand {
	return &AddItemCommand{out: os.Stdout}
}

func (cmd *AddItemCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add-item", flag.ContinueOnError)

	fs.StringVar(&cmd.Name, "name", "", "Item name (required)")
	fs.StringVar(&cmd.Quantity, "quantity", "", "Item quantity; blank or non-numeric is stored as 0")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the inventory database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add-item [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Add an item to an inventory database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s add-item -name \"HDMI cable\" -quantity 3 -db ./items.db\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Name == "" {
		fs.Usage()
		return forms.ErrNameRequired
	}

	return nil
}

func (cmd *AddItemCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath, string(database.VariantInventory))
	if err != nil {
		return err
	}
	defer db.Close()

	item, _, err := forms.SaveItem(inventory.NewRepository(db.DB), forms.Create[entities.Item](), forms.ItemInput{
		Name:     cmd.Name,
		Quantity: cmd.Quantity,
	})
	if err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}

	fmt.Fprintf(cmd.out, "Added item %d: %s (%d)\n", item.ID, item.Name, item.Quantity)
	return nil
}
