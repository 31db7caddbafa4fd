// Package pgtest starts a throwaway PostgreSQL container for integration suites.
package pgtest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Suite owns one container per test suite. Embedding suites call Migrate from their own
// SetupSuite after the embedded one has run.
type Suite struct {
	suite.Suite
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

func (s *Suite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.Container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.DB = db
}

func (s *Suite) TearDownSuite() {
	if s.Container != nil {
		s.Require().NoError(s.Container.Terminate(context.Background()))
	}
}

// Truncate empties the given tables.
func (s *Suite) Truncate(tables ...string) {
	for _, table := range tables {
		s.Require().NoError(s.DB.Exec("TRUNCATE TABLE " + table + " CASCADE").Error)
	}
}
