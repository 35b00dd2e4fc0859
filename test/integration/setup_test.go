package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidaplus/clinic/internal/domain/directory"
	"github.com/vidaplus/clinic/internal/platform/db"
)

// testDB holds the shared database infrastructure for integration tests.
type testDB struct {
	Pool    *pgxpool.Pool
	ConnStr string
}

// globalDB is the package-level test database, initialized once in TestMain.
var globalDB *testDB

func TestMain(m *testing.M) {
	ctx := context.Background()

	connStr, cleanup, err := startPostgresContainer(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to setup postgres container: %v\n", err)
		os.Exit(1)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "failed to create pool: %v\n", err)
		os.Exit(1)
	}

	migrator := db.NewMigrator(pool, findMigrationsDir())
	if _, err := migrator.Up(ctx); err != nil {
		pool.Close()
		cleanup()
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	globalDB = &testDB{Pool: pool, ConnStr: connStr}
	code := m.Run()
	pool.Close()
	cleanup()
	os.Exit(code)
}

// findMigrationsDir locates the migrations directory relative to this test file.
func findMigrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	// test/integration -> repo root
	return filepath.Join(dir, "..", "..", "migrations")
}

// truncateAll clears every clinic table so each test starts from an empty
// database. Tests run sequentially within the package, so a shared database
// with truncation between tests is enough isolation.
func truncateAll(t *testing.T, ctx context.Context) {
	t.Helper()
	_, err := globalDB.Pool.Exec(ctx,
		`TRUNCATE patients, professionals, appointments, teleconsultations, record_entries`)
	if err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

func ptrStr(s string) *string { return &s }

func createTestPatient(t *testing.T, ctx context.Context, owner uuid.UUID, name, cpf string) *directory.Patient {
	t.Helper()
	repo := directory.NewPatientRepoPG(globalDB.Pool)
	p := &directory.Patient{
		Name:    name,
		CPF:     cpf,
		Email:   ptrStr("patient@example.com"),
		OwnerID: owner,
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create test patient: %v", err)
	}
	return p
}

func createTestProfessional(t *testing.T, ctx context.Context, owner uuid.UUID, name, specialty string) *directory.Professional {
	t.Helper()
	repo := directory.NewProfessionalRepoPG(globalDB.Pool)
	p := &directory.Professional{
		Name:      name,
		Specialty: specialty,
		CRM:       "CRM/SP " + uuid.New().String()[:6],
		OwnerID:   owner,
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create test professional: %v", err)
	}
	return p
}

// timeAt builds a fixed UTC timestamp offset from a stable base so ordering
// assertions do not depend on the wall clock.
func timeAt(hoursFromBase int) time.Time {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(hoursFromBase) * time.Hour)
}
