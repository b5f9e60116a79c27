package store

import sq "github.com/Masterminds/squirrel"

// Column lists shared by SELECT and INSERT statements. Order matters: scan
// helpers read columns in exactly this order.
var (
	userColumns = []string{"user_id", "login", "password_hash", "created_at"}

	readingColumns = []string{
		"id", "owner",
		"timestamp_ct", "temperature_ct", "humidity_ct", "co2_ct", "light_ct", "soil_moisture_ct",
		"submitted_at",
	}

	twinColumns = []string{
		"id", "fingerprint_ct", "health_score_ct", "last_updated",
		"summary", "health_score", "revealed",
	}

	recommendationColumns = []string{
		"id", "watering_ct", "nutrients_ct", "light_adjust_ct", "last_updated",
		"watering", "nutrients", "light_adjust", "revealed",
	}

	aggregateColumns = []string{
		"agg_key", "key_hash", "handle", "owner", "additions", "position", "created_at", "updated_at",
	}

	requestColumns = []string{
		"id", "entity_id", "tag", "kind", "handles", "reading_count", "requester", "created_at", "expires_at",
	}

	eventColumns = []string{"seq", "name", "entity_id", "request_id", "event_key", "value", "created_at"}
)

// Upsert suffixes. Both dialects accept the same ON CONFLICT syntax.
const (
	upsertTwin = `ON CONFLICT (id) DO UPDATE SET
		fingerprint_ct = excluded.fingerprint_ct,
		health_score_ct = excluded.health_score_ct,
		last_updated = excluded.last_updated,
		summary = excluded.summary,
		health_score = excluded.health_score,
		revealed = excluded.revealed`

	upsertRecommendation = `ON CONFLICT (id) DO UPDATE SET
		watering_ct = excluded.watering_ct,
		nutrients_ct = excluded.nutrients_ct,
		light_adjust_ct = excluded.light_adjust_ct,
		last_updated = excluded.last_updated,
		watering = excluded.watering,
		nutrients = excluded.nutrients,
		light_adjust = excluded.light_adjust,
		revealed = excluded.revealed`

	upsertRequest = `ON CONFLICT (id) DO UPDATE SET
		entity_id = excluded.entity_id,
		tag = excluded.tag,
		kind = excluded.kind,
		handles = excluded.handles,
		reading_count = excluded.reading_count,
		requester = excluded.requester,
		created_at = excluded.created_at,
		expires_at = excluded.expires_at`

	upsertData = `ON CONFLICT (owner, data_key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at`

	incrementCounter = `ON CONFLICT (name) DO UPDATE SET value = counters.value + 1 RETURNING value`

	ignoreConflict = `ON CONFLICT DO NOTHING`
)

// newSQLRepositories binds every repository to one transaction.
func newSQLRepositories(tx DBTX, sb sq.StatementBuilderType) Repositories {
	return Repositories{
		Readings:        &readingRepository{tx: tx, sb: sb},
		Twins:           &twinRepository{tx: tx, sb: sb},
		Recommendations: &recommendationRepository{tx: tx, sb: sb},
		Aggregates:      &aggregateRepository{tx: tx, sb: sb},
		Requests:        &requestRepository{tx: tx, sb: sb},
		Events:          &eventRepository{tx: tx, sb: sb},
		Data:            &dataRepository{tx: tx, sb: sb},
		ACL:             &aclRepository{tx: tx, sb: sb},
		Counters:        &counterRepository{tx: tx, sb: sb},
		Users:           &userRepository{tx: tx, sb: sb},
	}
}
