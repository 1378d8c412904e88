package catalog

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/inventory/internal/database"
	"github.com/mrlokans/inventory/internal/entities"
)

// movieRow is the flat shape of the movie/director join.
type movieRow struct {
	ID           int64
	Title        string
	Year         int
	DirectorID   int64
	DirectorName string
}

// AddMovie inserts a movie and returns its new identity. directorID is not
// checked here; the schema's foreign key rejects unknown directors with
// database.ErrConstraintViolation.
func (r *Repository) AddMovie(title string, year int, directorID int64) (int64, error) {
	var id int64
	err := r.withConn(func(conn *gorm.DB) error {
		var err error
		id, err = insertMovie(conn, title, year, directorID)
		return err
	})
	if err != nil {
		return 0, database.Classify(err)
	}
	return id, nil
}

// UpdateMovie overwrites every field of the movie. It reports false when id
// matches no row.
func (r *Repository) UpdateMovie(id int64, title string, year int, directorID int64) (bool, error) {
	var changed bool
	err := r.withConn(func(conn *gorm.DB) error {
		var err error
		changed, err = updateMovie(conn, id, title, year, directorID)
		return err
	})
	if err != nil {
		return false, database.Classify(err)
	}
	return changed, nil
}

// DeleteMovie removes the movie's cast rows and then the movie, atomically.
// The result reflects only whether the movie row existed.
func (r *Repository) DeleteMovie(id int64) (bool, error) {
	var affected int64
	err := r.withConn(func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			if err := clearCast(tx, id); err != nil {
				return err
			}
			result := tx.Delete(&entities.Movie{}, id)
			affected = result.RowsAffected
			return result.Error
		})
	})
	if err != nil {
		return false, database.Classify(err)
	}
	return affected > 0, nil
}

// GetAllMovies returns every movie joined with its director. Only the
// director's ID and Name are filled in. Movies whose director does not
// resolve are left out.
func (r *Repository) GetAllMovies() ([]entities.Movie, error) {
	var rows []movieRow
	err := r.withConn(func(conn *gorm.DB) error {
		return conn.Table("movies AS m").
			Select("m.id, m.title, m.year, d.id AS director_id, d.name AS director_name").
			Joins("JOIN directors d ON m.director_id = d.id").
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	movies := make([]entities.Movie, 0, len(rows))
	for _, row := range rows {
		movies = append(movies, entities.Movie{
			ID:         row.ID,
			Title:      row.Title,
			Year:       row.Year,
			DirectorID: row.DirectorID,
			Director:   entities.Director{ID: row.DirectorID, Name: row.DirectorName},
		})
	}
	return movies, nil
}

func insertMovie(tx *gorm.DB, title string, year int, directorID int64) (int64, error) {
	movie := entities.Movie{Title: title, Year: year, DirectorID: directorID}
	if err := tx.Omit(clause.Associations).Create(&movie).Error; err != nil {
		return 0, err
	}
	return movie.ID, nil
}

func updateMovie(tx *gorm.DB, id int64, title string, year int, directorID int64) (bool, error) {
	result := tx.Model(&entities.Movie{}).Where("id = ?", id).Updates(map[string]any{
		"title":       title,
		"year":        year,
		"director_id": directorID,
	})
	return result.RowsAffected > 0, result.Error
}
