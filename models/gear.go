package models

// GearItem is a single entry of the gear collection.
type GearItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Order int64  `json:"order"`
}

func (g GearItem) TableName() string {
	return "gear"
}
