package cli

import (
	"fmt"

	"gorm.io/gorm/logger"

	"github.com/mrlokans/inventory/internal/database"
)

// openDatabase opens the store file for a command, keeping gorm quiet so
// only command output reaches the terminal.
func openDatabase(path, variant string) (*database.Database, error) {
	v, err := database.ParseVariant(variant)
	if err != nil {
		return nil, err
	}
	db, err := database.Open(database.Options{Path: path, Variant: v, LogLevel: logger.Error})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
