package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleDoctor  = "DOCTOR"
	RolePatient = "PATIENT"
	RoleAdmin   = "ADMIN"
)

// User is a doctor, a patient or an administrator. Patients point to the
// doctor responsible for them.
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Email        string     `json:"email" gorm:"unique_index;not null"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role" gorm:"not null"`
	DoctorID     *uuid.UUID `json:"doctor_id,omitempty" gorm:"type:uuid;index"`
	Birthdate    *time.Time `json:"birthdate,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
