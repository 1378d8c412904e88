package entities

// Item belongs to the inventory schema, which never coexists with the catalog tables.
type Item struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func (Item) TableName() string {
	return "items"
}
