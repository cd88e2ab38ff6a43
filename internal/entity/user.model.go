package entity

type User struct {
	Username  string `json:"username" gorm:"type:varchar(55);primaryKey"`
	Password  string `json:"-" gorm:"type:text;not null"`
	FirstName string `json:"first_name" gorm:"type:varchar(100)"`
	LastName  string `json:"last_name" gorm:"type:varchar(100)"`
	Email     string `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	PhotoURL  string `json:"photo_url" gorm:"type:text"`
	IsAdmin   bool   `json:"is_admin" gorm:"not null;default:false"`
}
