package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/inventory/internal/entities"
)

var seedDirectors = []entities.Director{
	{Name: "Jonathan Demme", Nationality: "EE.UU.", BirthYear: 1944},
	{Name: "Martin Campbell", Nationality: "Nueva Zelanda", BirthYear: 1943},
	{Name: "Quentin Tarantino", Nationality: "EE.UU.", BirthYear: 1963},
}

var seedActors = []entities.Actor{
	{Name: "Jodie Foster", Nationality: "EE.UU.", BirthYear: 1962},
	{Name: "Anthony Hopkins", Nationality: "Reino Unido", BirthYear: 1937},
	{Name: "Antonio Banderas", Nationality: "España", BirthYear: 1960},
	{Name: "Catherine Zeta-Jones", Nationality: "Reino Unido", BirthYear: 1969},
	{Name: "Jamie Foxx", Nationality: "EE.UU.", BirthYear: 1967},
	{Name: "Leonardo DiCaprio", Nationality: "EE.UU.", BirthYear: 1974},
}

// seedMovies index into seedDirectors; seedCast indexes into seedMovies and seedActors.
var seedMovies = []struct {
	Title    string
	Year     int
	Director int
}{
	{"El silencio de los corderos", 1991, 0},
	{"La leyenda del Zorro", 2005, 1},
	{"Django", 2012, 2},
}

var seedCast = [][2]int{
	{0, 0}, {0, 1},
	{1, 2}, {1, 3},
	{2, 4}, {2, 5},
}

// SeedCounts is the size of the demonstration dataset written on creation.
var SeedCounts = entities.CatalogStats{
	Directors:   int64(len(seedDirectors)),
	Actors:      int64(len(seedActors)),
	Movies:      int64(len(seedMovies)),
	MovieActors: int64(len(seedCast)),
}

func seedCatalog(tx *gorm.DB) error {
	directorIDs := make([]int64, 0, len(seedDirectors))
	for _, d := range seedDirectors {
		if err := tx.Create(&d).Error; err != nil {
			return fmt.Errorf("failed to create director %s: %w", d.Name, err)
		}
		directorIDs = append(directorIDs, d.ID)
	}

	actorIDs := make([]int64, 0, len(seedActors))
	for _, a := range seedActors {
		if err := tx.Create(&a).Error; err != nil {
			return fmt.Errorf("failed to create actor %s: %w", a.Name, err)
		}
		actorIDs = append(actorIDs, a.ID)
	}

	movieIDs := make([]int64, 0, len(seedMovies))
	for _, m := range seedMovies {
		movie := entities.Movie{Title: m.Title, Year: m.Year, DirectorID: directorIDs[m.Director]}
		if err := tx.Omit(clause.Associations).Create(&movie).Error; err != nil {
			return fmt.Errorf("failed to create movie %s: %w", m.Title, err)
		}
		movieIDs = append(movieIDs, movie.ID)
	}

	for _, pair := range seedCast {
		row := entities.MovieActor{MovieID: movieIDs[pair[0]], ActorID: actorIDs[pair[1]]}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to link movie %d and actor %d: %w", row.MovieID, row.ActorID, err)
		}
	}
	return nil
}
