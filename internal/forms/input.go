package forms

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrTitleRequired    = errors.New("title is required")
	ErrDirectorRequired = errors.New("director is required")
)

// ParseNumber reads a numeric form field. Blank or non-numeric text is 0.
func ParseNumber(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ParseID reads an identity form field. Anything that is not a positive
// integer is 0.
func ParseID(s string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// PersonInput is the raw text of the director and actor dialogs.
type PersonInput struct {
	Name        string `form:"name" json:"name"`
	Nationality string `form:"nationality" json:"nationality"`
	BirthYear   string `form:"birth_year" json:"birth_year"`
}

func (in PersonInput) Validate() error {
	if in.Name == "" {
		return ErrNameRequired
	}
	return nil
}

// MovieInput is the raw text of the movie dialog. ActorIDs are the checked actors.
type MovieInput struct {
	Title      string   `form:"title" json:"title"`
	Year       string   `form:"year" json:"year"`
	DirectorID string   `form:"director_id" json:"director_id"`
	ActorIDs   []string `form:"actor_ids" json:"actor_ids"`
}

func (in MovieInput) Validate() error {
	if in.Title == "" {
		return ErrTitleRequired
	}
	if ParseID(in.DirectorID) == 0 {
		return ErrDirectorRequired
	}
	return nil
}

// Actors returns the selected actor identities, dropping unparsable entries
// and repeats while keeping selection order.
func (in MovieInput) Actors() []int64 {
	ids := make([]int64, 0, len(in.ActorIDs))
	seen := make(map[int64]bool, len(in.ActorIDs))
	for _, raw := range in.ActorIDs {
		id := ParseID(raw)
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// ItemInput is the raw text of the add-item screen.
type ItemInput struct {
	Name     string `form:"name" json:"name"`
	Quantity string `form:"quantity" json:"quantity"`
}

func (in ItemInput) Validate() error {
	if in.Name == "" {
		return ErrNameRequired
	}
	return nil
}
