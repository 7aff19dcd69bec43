package testutil

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pratik-mahalle/usuarios-api/internal/config"
)

const (
	postgresPort     = "5432"
	postgresUser     = "test"
	postgresPassword = "test"
	postgresDatabase = "usuarios_test"
)

// PostgresContainer is a throwaway PostgreSQL server for integration tests
type PostgresContainer struct {
	testcontainers.Container
	Host string
	Port int
}

// NewPostgresContainer starts a PostgreSQL container. The test is skipped
// when -short is set or no container runtime is reachable.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{postgresPort + "/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     postgresUser,
			"POSTGRES_PASSWORD": postgresPassword,
			"POSTGRES_DB":       postgresDatabase,
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort(postgresPort+"/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Errorf("Failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	mapped, err := container.MappedPort(ctx, postgresPort)
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	port, err := strconv.Atoi(mapped.Port())
	if err != nil {
		t.Fatalf("Failed to parse container port: %v", err)
	}

	return &PostgresContainer{
		Container: container,
		Host:      host,
		Port:      port,
	}
}

// DatabaseConfig returns the configuration to reach the container with driver
func (c *PostgresContainer) DatabaseConfig(driver string) config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:          driver,
		Host:            c.Host,
		Port:            c.Port,
		Name:            postgresDatabase,
		User:            postgresUser,
		Password:        postgresPassword,
		SSLMode:         "disable",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}
}

