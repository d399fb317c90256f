//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMye1VdLPSbsxEYFBCPZZWS3HhSEQW8p6EK"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, name, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, "Test Staff", role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestAccommodationType(t *testing.T, db DBLike, name, slug string, overnight bool) uuid.UUID {
	t.Helper()

	typeID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO accommodation_types (id, name, slug, overnight) VALUES ($1, $2, $3, $4) ON CONFLICT (slug) DO NOTHING",
		typeID, name, slug, overnight)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM accommodation_types WHERE slug = $1", slug).Scan(&typeID)
	}

	return typeID
}

func CreateTestAccommodation(t *testing.T, db DBLike, typeID uuid.UUID, name, slug string) uuid.UUID {
	t.Helper()

	accID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO accommodations (
			id, type_id, name, slug,
			day_price_centavos, night_price_centavos, capacity,
			extra_person_fee_centavos, pool_access, max_stay_hours
		)
		VALUES ($1, $2, $3, $4, 150000, 180000, 4, 20000, false, 0)
		ON CONFLICT (slug) DO NOTHING`,
		accID, typeID, name, slug)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM accommodations WHERE slug = $1", slug).Scan(&accID)
	}

	return accID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// A rate table must exist before any quote or reservation succeeds.
	_, err := pool.Exec(ctx, `
		INSERT INTO resort_rates (
			id,
			adult_day_centavos, adult_night_centavos,
			child_day_centavos, child_night_centavos,
			pwd_senior_day_centavos, pwd_senior_night_centavos,
			effective_from
		)
		VALUES (gen_random_uuid(), 10000, 12000, 5000, 6000, 8000, 9600, now() - interval '1 day')`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
