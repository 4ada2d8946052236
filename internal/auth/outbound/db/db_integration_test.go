package db

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/tracksense/goalnet/internal/auth/entity"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
)

const testSchema = `
CREATE TABLE users (
	id               BIGINT PRIMARY KEY,
	email            TEXT NOT NULL UNIQUE,
	full_name        TEXT,
	role             TEXT,
	primary_goal     TEXT,
	company          TEXT,
	website          TEXT,
	location         TEXT,
	one_liner        TEXT,
	photo_url        TEXT,
	interests        TEXT[] NOT NULL DEFAULT '{}',
	skills           TEXT[] NOT NULL DEFAULT '{}',
	connection_count INTEGER NOT NULL DEFAULT 0,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE otp_requests (
	id         BIGINT PRIMARY KEY,
	email      TEXT NOT NULL,
	code_hash  TEXT NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL,
	consumed   BOOLEAN NOT NULL DEFAULT false,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX otp_requests_email_created_at_idx ON otp_requests (email, created_at DESC);
`

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	pgc, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("goalnet"),
		postgres.WithUsername("goalnet"),
		postgres.WithPassword("goalnet"),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort(nat.Port("5432/tcp")),
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("could not start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgc); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := pgc.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, testSchema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	return NewDB(pool, instrument.NewNoop())
}

func TestConsumeOTPRequestIsAtomic(t *testing.T) {
	// Arrange
	store := setupTestDB(t)
	ctx := context.Background()

	rec := entity.OTPRequest{
		ID:        1001,
		Email:     "race@x.com",
		CodeHash:  "deadbeef",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	if err := store.CreateOTPRequest(ctx, rec); err != nil {
		t.Fatalf("create otp request: %v", err)
	}

	// Act: concurrent conditional consumes of the same record.
	const attempts = 16
	wins := make(chan bool, attempts)
	var wg sync.WaitGroup
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.ConsumeOTPRequest(ctx, rec.ID)
			if err != nil {
				t.Errorf("consume: %v", err)
				wins <- false
				return
			}
			wins <- ok
		}()
	}
	wg.Wait()
	close(wins)

	// Assert
	var winners int
	for ok := range wins {
		if ok {
			winners++
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one consume to win, got %d", winners)
	}
}

func TestGetLatestValidOTPRequestPicksNewest(t *testing.T) {
	// Arrange
	store := setupTestDB(t)
	ctx := context.Background()
	now := time.Now()

	older := entity.OTPRequest{ID: 1, Email: "u@x.com", CodeHash: "old", ExpiresAt: now.Add(10 * time.Minute)}
	if err := store.CreateOTPRequest(ctx, older); err != nil {
		t.Fatalf("create older: %v", err)
	}
	time.Sleep(20 * time.Millisecond) // distinct created_at
	newer := entity.OTPRequest{ID: 2, Email: "u@x.com", CodeHash: "new", ExpiresAt: now.Add(10 * time.Minute)}
	if err := store.CreateOTPRequest(ctx, newer); err != nil {
		t.Fatalf("create newer: %v", err)
	}

	// Act
	got, err := store.GetLatestValidOTPRequest(ctx, "u@x.com", now)

	// Assert
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if got.ID != newer.ID {
		t.Fatalf("expected newest record %d, got %d", newer.ID, got.ID)
	}

	// Consuming the newest leaves the older one as the next candidate.
	if ok, err := store.ConsumeOTPRequest(ctx, newer.ID); err != nil || !ok {
		t.Fatalf("consume newest: ok=%v err=%v", ok, err)
	}
	got, err = store.GetLatestValidOTPRequest(ctx, "u@x.com", now)
	if err != nil {
		t.Fatalf("get latest after consume: %v", err)
	}
	if got.ID != older.ID {
		t.Fatalf("expected older record %d, got %d", older.ID, got.ID)
	}
}

func TestUserRoundTrip(t *testing.T) {
	// Arrange
	store := setupTestDB(t)
	ctx := context.Background()

	if err := store.CreateUser(ctx, entity.User{ID: 7, Email: "founder@x.com"}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	// Act
	if err := store.UpdateUserProfile(ctx, entity.UpdateUserProfile{
		ID:          7,
		FullName:    "Jordan Lee",
		Role:        entity.UserRoleFounder,
		PrimaryGoal: entity.PrimaryGoalFundraising,
		Company:     "Acme",
		Interests:   []string{"ai", "fintech"},
		Skills:      []string{"go"},
	}); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	// Assert
	got, err := store.GetUserByEmail(ctx, "founder@x.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.FullName != "Jordan Lee" || got.Role != entity.UserRoleFounder {
		t.Fatalf("unexpected user %+v", got)
	}
	if len(got.Interests) != 2 || got.Interests[0] != "ai" {
		t.Fatalf("unexpected interests %v", got.Interests)
	}

	// Duplicate email maps to conflict.
	err = store.CreateUser(ctx, entity.User{ID: 8, Email: "founder@x.com"})
	if err == nil {
		t.Fatalf("expected conflict on duplicate email")
	}
}
