package models

type RoomType struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	TypeName    string  `gorm:"size:100" json:"type_name"`
	Description *string `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`
	MaxPerson   int     `gorm:"default:2" json:"max_person"`
}

type RoomTypeResponse struct {
	ID          string  `json:"id"`
	TypeName    string  `json:"type_name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	MaxPerson   int     `json:"max_person"`
}
