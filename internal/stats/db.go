package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sebastian-gasior/jobfit/internal/types"
)

// DBRecorder persists usage events to PostgreSQL. Each event gets a random
// ID; no input text or profile data is stored.
type DBRecorder struct {
	pool *pgxpool.Pool
}

// NewDBRecorder wraps an existing connection pool.
func NewDBRecorder(pool *pgxpool.Pool) *DBRecorder {
	return &DBRecorder{pool: pool}
}

// Record implements Recorder.
func (r *DBRecorder) Record(ctx context.Context, result *types.AnalysisResult, jobText string) error {
	event := BuildEvent(result, jobText)
	_, err := r.pool.Exec(ctx,
		`INSERT INTO usage_events (id, role_cluster, industry_cluster, ats_bucket, match_label)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), event.RoleCluster, event.IndustryCluster, event.ATSBucket, event.MatchLabel,
	)
	if err != nil {
		return fmt.Errorf("failed to record usage event: %w", err)
	}
	return nil
}
