package catalog

import (
	"gorm.io/gorm"

	"github.com/mrlokans/inventory/internal/database"
	"github.com/mrlokans/inventory/internal/entities"
)

// DirectorInUseMessage is reported when movies still reference a director being deleted.
const DirectorInUseMessage = "director has associated movies"

// AddDirector inserts a director and returns its new identity.
func (r *Repository) AddDirector(name, nationality string, birthYear int) (int64, error) {
	director := entities.Director{Name: name, Nationality: nationality, BirthYear: birthYear}
	err := r.withConn(func(conn *gorm.DB) error {
		return conn.Create(&director).Error
	})
	if err != nil {
		return 0, database.Classify(err)
	}
	return director.ID, nil
}

// UpdateDirector overwrites every field of the director. It reports false when
// id matches no row.
func (r *Repository) UpdateDirector(id int64, name, nationality string, birthYear int) (bool, error) {
	var affected int64
	err := r.withConn(func(conn *gorm.DB) error {
		result := conn.Model(&entities.Director{}).Where("id = ?", id).Updates(map[string]any{
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

// DeleteDirector removes a director. A director still referenced by a movie is
// rejected with database.ErrConstraintViolation; an unknown id reports false.
func (r *Repository) DeleteDirector(id int64) (bool, error) {
	var affected int64
	err := r.withConn(func(conn *gorm.DB) error {
		result := conn.Delete(&entities.Director{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return false, database.Describe(database.Classify(err), database.ErrConstraintViolation, DirectorInUseMessage)
	}
	return affected > 0, nil
}

// GetAllDirectors returns every director in storage order.
func (r *Repository) GetAllDirectors() ([]entities.Director, error) {
	var directors []entities.Director
	err := r.withConn(func(conn *gorm.DB) error {
		return conn.Find(&directors).Error
	})
	return directors, err
}
