package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/deepheart/deepheart-api/schema"
)

// deepheart main datastore
type DeepHeartCore interface {
	Ping() error

	// User
	CreateUser(u NewUser) (*schema.User, error)
	GetUser(id uuid.UUID) (*schema.User, error)
	GetUserByEmail(email string) (*schema.User, error)
	Authenticate(email, password string) (*schema.User, error)

	// Patient
	ListPatients(doctorID uuid.UUID) ([]schema.User, error)
	CountPatients(doctorID uuid.UUID) (int64, error)
}

// DeepHeartStore is an implementation of DeepHeartCore
type DeepHeartStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewDeepHeartStore(ormDB *gorm.DB, mongo MongoStore) *DeepHeartStore {
	return &DeepHeartStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *DeepHeartStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return err
	}
	return s.mongo.Ping()
}
