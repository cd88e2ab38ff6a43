package entity

import "time"

type Job struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title" gorm:"type:varchar(100);not null"`
	Salary        float64   `json:"salary" gorm:"not null"`
	Equity        float64   `json:"equity" gorm:"check:equity >= 0 AND equity <= 1"`
	CompanyHandle string    `json:"company_handle" gorm:"type:varchar(55);not null"`
	DatePosted    time.Time `json:"date_posted" gorm:"autoCreateTime"`
}
