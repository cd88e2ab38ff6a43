package entity

import "time"

// Application states a user can hold toward a job posting.
const (
	StateInterested = "interested"
	StateApplied    = "applied"
	StateAccepted   = "accepted"
	StateRejected   = "rejected"
)

type Application struct {
	Username  string    `json:"username" gorm:"type:varchar(55);primaryKey"`
	JobID     int64     `json:"job_id" gorm:"primaryKey"`
	State     string    `json:"state" gorm:"type:varchar(20);not null;check:state IN ('interested','applied','accepted','rejected')"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User User `json:"-" gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
	Job  Job  `json:"-" gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE"`
}

// ValidState reports whether s is one of the enumerated application states.
func ValidState(s string) bool {
	switch s {
	case StateInterested, StateApplied, StateAccepted, StateRejected:
		return true
	}
	return false
}
