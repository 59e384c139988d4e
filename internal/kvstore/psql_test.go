package kvstore

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/2beens/gymroutines/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
)

// PsqlStoreTestSuite runs the postgres backend against a throwaway container.
// It is skipped when no docker daemon is reachable.
type PsqlStoreTestSuite struct {
	suite.Suite

	dockerPool *dockertest.Pool
	pgResource *dockertest.Resource
	pool       *pgxpool.Pool
	sqlDB      *sql.DB
	store      *PsqlStore
}

func TestPsqlStoreTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("postgres suite skipped in short mode")
	}
	suite.Run(t, new(PsqlStoreTestSuite))
}

func (s *PsqlStoreTestSuite) SetupSuite() {
	ctx := context.Background()

	var err error
	s.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		s.T().Skipf("could not create new dockertest pool: %s", err)
	}
	if err := s.dockerPool.Client.Ping(); err != nil {
		s.T().Skipf("could not ping dockertest pool: %s", err)
	}

	s.pgResource, err = s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=gymroutines",
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	s.Require().NoError(err)

	params := db.NewDBPoolParams{
		DBHost: "localhost",
		DBPort: s.pgResource.GetPort("5432/tcp"),
		DBName: "gymroutines",
	}

	s.Require().NoError(s.dockerPool.Retry(func() error {
		sqlDB, err := sql.Open("postgres", params.ConnString())
		if err != nil {
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			_ = sqlDB.Close()
			return err
		}
		s.sqlDB = sqlDB
		return nil
	}))

	s.pool, err = db.NewDBPool(ctx, params)
	s.Require().NoError(err)

	s.store = NewPsqlStore(s.pool)
	s.Require().NoError(s.store.EnsureSchema(ctx))
	// second call must be a no-op
	s.Require().NoError(s.store.EnsureSchema(ctx))
}

func (s *PsqlStoreTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.sqlDB != nil {
		if err := s.sqlDB.Close(); err != nil {
			fmt.Printf("sql db close: %s\n", err)
		}
	}
	if s.pgResource != nil {
		if err := s.pgResource.Close(); err != nil {
			fmt.Printf("postgres teardown: %s\n", err)
		}
	}
}

func (s *PsqlStoreTestSuite) SetupTest() {
	_, err := s.sqlDB.Exec(`TRUNCATE kv_blob;`)
	s.Require().NoError(err)
}

func (s *PsqlStoreTestSuite) TestGetMissingKey() {
	value, err := s.store.Get(context.Background(), KeyRoutines)
	s.ErrorIs(err, ErrKeyNotFound)
	s.Nil(value)
}

func (s *PsqlStoreTestSuite) TestSetOverwrites() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, KeyRoutines, []byte(`[{"id":"1"}]`)))
	s.Require().NoError(s.store.Set(ctx, KeyRoutines, []byte(`[]`)))

	value, err := s.store.Get(ctx, KeyRoutines)
	s.Require().NoError(err)
	s.Equal(`[]`, string(value))

	var rows int
	s.Require().NoError(s.sqlDB.QueryRow(`SELECT COUNT(*) FROM kv_blob;`).Scan(&rows))
	s.Equal(1, rows)
}

func (s *PsqlStoreTestSuite) TestKeysAreIndependent() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, KeyRoutines, []byte(`routines`)))
	s.Require().NoError(s.store.Set(ctx, KeyWorkoutLogs, []byte(`logs`)))

	routines, err := s.store.Get(ctx, KeyRoutines)
	s.Require().NoError(err)
	logs, err := s.store.Get(ctx, KeyWorkoutLogs)
	s.Require().NoError(err)

	s.Equal("routines", string(routines))
	s.Equal("logs", string(logs))
}
