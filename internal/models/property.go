package models

type Property struct {
	BaseModel
	PropertyType    string  `gorm:"type:varchar(100);not null" json:"property_type"`
	Address         string  `gorm:"type:text;not null" json:"address"`
	Price           float64 `gorm:"not null" json:"price"`
	SqFt            int     `json:"sq_ft"`
	CatFriendly     bool    `gorm:"not null;default:false" json:"cat_friendly"`
	NumBedrooms     int     `json:"num_bedrooms"`
	AirConditioning bool    `gorm:"not null;default:false" json:"air_conditioning"`
	ParkingType     string  `gorm:"type:varchar(100)" json:"parking_type"`
	CommuteMorning  string  `gorm:"type:varchar(50)" json:"commute_morning"`
	CommuteMidday   string  `gorm:"type:varchar(50)" json:"commute_midday"`
	CommuteEvening  string  `gorm:"type:varchar(50)" json:"commute_evening"`
}
