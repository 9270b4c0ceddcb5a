package database

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"os"
	"time"
)

type Migrator func(db *gorm.DB) error

type Configurator func(c *Config)

type Config struct {
	migrators []Migrator
}

func SetMigrations(migrators ...Migrator) Configurator {
	return func(c *Config) {
		c.migrators = migrators
	}
}

func dsn() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
}

// Connect opens the service database, retrying while it becomes available, and applies migrations.
func Connect(l logrus.FieldLogger, configurators ...Configurator) *gorm.DB {
	c := &Config{migrators: make([]Migrator, 0)}
	for _, configurator := range configurators {
		configurator(c)
	}

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= 10; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn()), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err == nil {
			break
		}
		l.WithError(err).Warnf("Unable to connect to database, attempt [%d].", attempt)
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	if err != nil {
		l.WithError(err).Fatalf("Unable to connect to database.")
	}

	for _, migrator := range c.migrators {
		if err = migrator(db); err != nil {
			l.WithError(err).Fatalf("Unable to migrate database.")
		}
	}
	return db
}
