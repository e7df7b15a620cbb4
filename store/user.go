package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/deepheart/deepheart-api/schema"
)

var (
	ErrUserExists         = fmt.Errorf("an account with the same email already exists")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")
	ErrInvalidRole        = fmt.Errorf("invalid role")
)

// NewUser carries what is needed to register a user.
type NewUser struct {
	Email     string
	Name      string
	Password  string
	Role      string
	DoctorID  *uuid.UUID
	Birthdate *time.Time
}

func validRole(role string) bool {
	switch role {
	case schema.RoleDoctor, schema.RolePatient, schema.RoleAdmin:
		return true
	}
	return false
}

// CreateUser registers a user with a bcrypt hashed password
func (s *DeepHeartStore) CreateUser(nu NewUser) (*schema.User, error) {
	if !validRole(nu.Role) {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nu.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := schema.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(nu.Email)),
		Name:         nu.Name,
		PasswordHash: string(hash),
		Role:         nu.Role,
		DoctorID:     nu.DoctorID,
		Birthdate:    nu.Birthdate,
	}

	if err := s.ormDB.Create(&u).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return &u, nil
}

// GetUser returns a user by id
func (s *DeepHeartStore) GetUser(id uuid.UUID) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("id = ?", id).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail returns a user by email
func (s *DeepHeartStore) GetUserByEmail(email string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Authenticate checks a password against the stored hash. Unknown emails
// and wrong passwords give the same error.
func (s *DeepHeartStore) Authenticate(email, password string) (*schema.User, error) {
	u, err := s.GetUserByEmail(email)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// ListPatients returns the patients of a doctor ordered by registration
func (s *DeepHeartStore) ListPatients(doctorID uuid.UUID) ([]schema.User, error) {
	patients := []schema.User{}
	if err := s.ormDB.
		Where("role = ? AND doctor_id = ?", schema.RolePatient, doctorID).
		Order("created_at").
		Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (s *DeepHeartStore) CountPatients(doctorID uuid.UUID) (int64, error) {
	var count int64
	if err := s.ormDB.Model(&schema.User{}).
		Where("role = ? AND doctor_id = ?", schema.RolePatient, doctorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
