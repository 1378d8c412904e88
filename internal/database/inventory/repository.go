// Package inventory provides database operations for the item/quantity
// tracker. It only works against files opened with database.VariantInventory.
//
// # Usage
//
//	repo := inventory.NewRepository(db.DB)
//	id, err := repo.AddItem("HDMI cable", 3)
package inventory

import (
	"gorm.io/gorm"

	"github.com/mrlokans/inventory/internal/database"
	"github.com/mrlokans/inventory/internal/entities"
)

// Repository handles all item database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new inventory repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddItem inserts an item and returns its new identity.
func (r *Repository) AddItem(name string, quantity int) (int64, error) {
	item := entities.Item{Name: name, Quantity: quantity}
	err := database.WithConn(r.db, func(conn *gorm.DB) error {
		return conn.Create(&item).Error
	})
	if err != nil {
		return 0, database.Classify(err)
	}
	return item.ID, nil
}

// UpdateItem overwrites the item's name and quantity. It reports false when
// id matches no row.
func (r *Repository) UpdateItem(id int64, name string, quantity int) (bool, error) {
	var affected int64
	err := database.WithConn(r.db, func(conn *gorm.DB) error {
		result := conn.Model(&entities.Item{}).Where("id = ?", id).Updates(map[string]any{
			"name":     name,
			"quantity": quantity,
		})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return false, database.Classify(err)
	}
	return affected > 0, nil
}

// DeleteItem removes an item, reporting false when id matches no row.
func (r *Repository) DeleteItem(id int64) (bool, error) {
	var affected int64
	err := database.WithConn(r.db, func(conn *gorm.DB) error {
		result := conn.Delete(&entities.Item{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// GetAllItems returns every item in storage order.
func (r *Repository) GetAllItems() ([]entities.Item, error) {
	var items []entities.Item
	err := database.WithConn(r.db, func(conn *gorm.DB) error {
		return conn.Find(&items).Error
	})
	return items, err
}

// CountItems returns the number of stored items.
func (r *Repository) CountItems() (int64, error) {
	var count int64
	err := database.WithConn(r.db, func(conn *gorm.DB) error {
		return conn.Model(&entities.Item{}).Count(&count).Error
	})
	return count, err
}
