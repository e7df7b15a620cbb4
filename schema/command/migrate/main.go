package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/deepheart/deepheart-api/schema"
	"github.com/deepheart/deepheart-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("deepheart")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS deepheart`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO deepheart").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.User{},
	).Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	if err := provisionAdmin(db); err != nil {
		panic(err)
	}
}

// provisionAdmin creates the administrator named by admin.email when it does
// not exist yet. Administrators cannot sign up through the API.
func provisionAdmin(db *gorm.DB) error {
	email := viper.GetString("admin.email")
	if email == "" {
		return nil
	}

	_, err := store.NewDeepHeartStore(db, nil).CreateUser(store.NewUser{
		Email:    email,
		Name:     "Administrator",
		Password: viper.GetString("admin.password"),
		Role:     schema.RoleAdmin,
	})
	if err == store.ErrUserExists {
		return nil
	}
	return err
}
