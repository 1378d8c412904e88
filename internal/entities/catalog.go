package entities

type Director struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	BirthYear   int    `json:"birth_year"`
}

func (Director) TableName() string {
	return "directors"
}

type Actor struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	BirthYear   int    `json:"birth_year"`
}

func (Actor) TableName() string {
	return "actors"
}

// Movie references exactly one Director. When read through the catalog
// listing only Director.ID and Director.Name are populated.
type Movie struct {
	ID         int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string   `json:"title"`
	Year       int      `json:"year"`
	DirectorID int64    `json:"director_id"`
	Director   Director `gorm:"foreignKey:DirectorID" json:"director"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieActor is a row of the movie/actor join table. The pair is the primary key.
type MovieActor struct {
	MovieID int64 `gorm:"primaryKey;autoIncrement:false" json:"movie_id"`
	ActorID int64 `gorm:"primaryKey;autoIncrement:false" json:"actor_id"`
}

func (MovieActor) TableName() string {
	return "movies_actors"
}

// CatalogStats holds row counts for every catalog table.
type CatalogStats struct {
	Directors   int64 `json:"directors"`
	Actors      int64 `json:"actors"`
	Movies      int64 `json:"movies"`
	MovieActors int64 `json:"movie_actors"`
}
