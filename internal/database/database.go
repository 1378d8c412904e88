package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SchemaVersion is the schema revision this build writes. Raising it makes
// every existing file go through a destructive rebuild on next open.
const SchemaVersion = 1

type Variant string

const (
	VariantCatalog   Variant = "catalog"   // directors, actors, movies and their cast
	VariantInventory Variant = "inventory" // plain item/quantity tracker
)

// ParseVariant maps a configuration value onto a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantCatalog, "":
		return VariantCatalog, nil
	case VariantInventory:
		return VariantInventory, nil
	}
	return "", fmt.Errorf("unknown schema variant %q", s)
}

type Options struct {
	Path     string
	Variant  Variant
	LogLevel logger.LogLevel

	// version overrides SchemaVersion; only tests set it.
	version int
}

type Database struct {
	DB      *gorm.DB
	path    string
	variant Variant
	version int
}

// NewDatabase opens (creating if needed) the store file at dbPath for the given variant.
func NewDatabase(dbPath string, variant Variant) (*Database, error) {
	return Open(Options{Path: dbPath, Variant: variant, LogLevel: logger.Warn})
}

func Open(opts Options) (*Database, error) {
	if opts.Variant == "" {
		opts.Variant = VariantCatalog
	}
	if _, ok := schemas[opts.Variant]; !ok {
		return nil, fmt.Errorf("unknown schema variant %q", opts.Variant)
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Warn
	}
	version := opts.version
	if version == 0 {
		version = SchemaVersion
	}

	db, err := gorm.Open(sqlite.Open(dsn(opts.Path)), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	// SQLite allows a single writer; one connection keeps callers taking turns.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	database := &Database{DB: db, path: opts.Path, variant: opts.Variant, version: version}

	if err := database.migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	log.Printf("Database initialized successfully at %s (%s, schema v%d)", opts.Path, opts.Variant, version)

	return database, nil
}

// dsn turns a file path into a go-sqlite3 DSN with foreign keys enforced on
// every connection the pool opens.
func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Variant() Variant {
	return d.variant
}

func (d *Database) Path() string {
	return d.path
}

// SchemaVersion reports the version stamped into the open file.
func (d *Database) SchemaVersion() (int, error) {
	var version int
	err := d.DB.Raw("PRAGMA user_version").Row().Scan(&version)
	return version, err
}

// Reset drops every table of the variant and recreates it from scratch,
// reseeding the catalog demonstration data. All existing rows are lost.
func (d *Database) Reset() error {
	return WithConn(d.DB, d.rebuild)
}

// WithConn runs fn on a single connection checked out of the pool and returns
// it when fn returns, error or not. fn may issue any number of statements on
// conn; each starts from a clean statement.
func WithConn(db *gorm.DB, fn func(conn *gorm.DB) error) error {
	return db.Connection(func(tx *gorm.DB) error {
		return fn(tx.Session(&gorm.Session{NewDB: true}))
	})
}

// TableCounts returns the number of rows in each table of the open variant.
func (d *Database) TableCounts() (map[string]int64, error) {
	tables := schemas[d.variant].tables
	counts := make(map[string]int64, len(tables))
	err := WithConn(d.DB, func(conn *gorm.DB) error {
		for _, table := range tables {
			var n int64
			if err := conn.Table(table).Count(&n).Error; err != nil {
				return fmt.Errorf("count %s: %w", table, err)
			}
			counts[table] = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
