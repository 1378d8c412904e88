package catalog

import (
	"gorm.io/gorm"

	"github.com/mrlokans/inventory/internal/database"
	"github.com/mrlokans/inventory/internal/entities"
)

// AddActor inserts an actor and returns its new identity.
func (r *Repository) AddActor(name, nationality string, birthYear int) (int64, error) {
	actor := entities.Actor{Name: name, Nationality: nationality, BirthYear: birthYear}
	err := r.withConn(func(conn *gorm.DB) error {
		return conn.Create(&actor).Error
	})
	if err != nil {
		return 0, database.Classify(err)
	}
	return actor.ID, nil
}

// UpdateActor overwrites every field of the actor. It reports false when id
// matches no row.
func (r *Repository) UpdateActor(id int64, name, nationality string, birthYear int) (bool, error) {
	var affected int64
	err := r.withConn(func(conn *gorm.DB) error {
		result := conn.Model(&entities.Actor{}).Where("id = ?", id).Updates(map[string]any{
			"name":        name,
			"nationality": nationality,
			"birth_year":  birthYear,
		})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return false, database.Classify(err)
	}
	return affected > 0, nil
}

// DeleteActor removes the actor's cast rows and then the actor, atomically.
// The result reflects only whether the actor row existed.
func (r *Repository) DeleteActor(id int64) (bool, error) {
	var affected int64
	err := r.withConn(func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("actor_id = ?", id).Delete(&entities.MovieActor{}).Error; err != nil {
				return err
			}
			result := tx.Delete(&entities.Actor{}, id)
			affected = result.RowsAffected
			return result.Error
		})
	})
	if err != nil {
		return false, database.Classify(err)
	}
	return affected > 0, nil
}

// GetAllActors returns every actor in storage order.
func (r *Repository) GetAllActors() ([]entities.Actor, error) {
	var actors []entities.Actor
	err := r.withConn(func(conn *gorm.DB) error {
		return conn.Find(&actors).Error
	})
	return actors, err
}
