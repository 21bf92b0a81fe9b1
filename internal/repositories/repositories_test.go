package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gearted/gearted-backend/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, migrations.Up(ctx, db.DB))

	teardown := func() {
		db.Close()
		container.Terminate(ctx)
	}

	return db, teardown
}

// seedCatalogue inserts one manufacturer, two categories and four items:
// 1 rifle, 2 magazine, 3 hop-up (category 2), 4 scope.
func seedCatalogue(t *testing.T, db *sqlx.DB) {
	t.Helper()
	db.MustExec(`INSERT INTO manufacturers (id, name) VALUES (1, 'Tokyo Marui')`)
	db.MustExec(`INSERT INTO equipment_categories (id, name) VALUES (1, 'Magazines'), (2, 'Internals')`)
	db.MustExec(`
		INSERT INTO equipment (id, name, model, manufacturer_id, category_id, image_url) VALUES
			(1, 'M4A1', 'MWS', 1, 1, 'm4.jpg'),
			(2, 'Mag', 'MWS 35rd', 1, 1, NULL),
			(3, 'Hop-up', 'Chamber', 1, 2, NULL),
			(4, 'Scope', NULL, 1, 1, NULL)
	`)
}
