package entity

type Company struct {
	Handle       string `json:"handle" gorm:"type:varchar(55);primaryKey"`
	Name         string `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	NumEmployees int    `json:"num_employees"`
	Description  string `json:"description" gorm:"type:text"`
	LogoURL      string `json:"logo_url" gorm:"type:text"`
	Jobs         []Job  `json:"jobs,omitempty" gorm:"foreignKey:CompanyHandle;constraint:OnDelete:CASCADE"`
}
