package storage

import (
	"database/sql"
	"time"

	pq "github.com/lib/pq"

	"github.com/guttosm/marketpulse/internal/domain/models"
)

// CurveRepository defines the DB operations backing the yield-curve dataset.
type CurveRepository interface {
	ReplaceCurvePoints(points []models.CurvePoint) error
	GetCurvePoints(date *time.Time) ([]models.CurvePoint, error)
	LatestObservationDate() (time.Time, bool, error)
	UpsertRefreshLog(latest time.Time, rowCount int) error
}

type curveRepository struct {
	db *sql.DB
}

func NewCurveRepository(db *sql.DB) CurveRepository {
	return &curveRepository{db: db}
}

// ReplaceCurvePoints swaps the stored curve for the given long-form points
// in one transaction, bulk-loading via COPY.
func (r *curveRepository) ReplaceCurvePoints(points []models.CurvePoint) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	// Bulk-load optimization; the refresh log is the durability marker.
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.Exec(`DELETE FROM treasury_rates`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"treasury_rates",
		"observation_date",
		"maturity_label",
		"maturity_years",
		"yield",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, p := range points {
		if _, err := stmt.Exec(p.Date, p.MaturityLabel, p.MaturityYears, p.Yield); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// GetCurvePoints returns stored curve points, optionally restricted to one
// observation date, ordered for line drawing (date, then maturity).
func (r *curveRepository) GetCurvePoints(date *time.Time) ([]models.CurvePoint, error) {
	query := `
		SELECT observation_date, maturity_label, maturity_years, yield
		FROM treasury_rates`
	var args []interface{}
	if date != nil {
		query += ` WHERE observation_date = $1`
		args = append(args, *date)
	}
	query += ` ORDER BY observation_date, maturity_years`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var points []models.CurvePoint
	for rows.Next() {
		var p models.CurvePoint
		if err := rows.Scan(&p.Date, &p.MaturityLabel, &p.MaturityYears, &p.Yield); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// LatestObservationDate returns the newest stored observation date; the
// bool is false when the table is empty.
func (r *curveRepository) LatestObservationDate() (time.Time, bool, error) {
	var latest sql.NullTime
	err := r.db.QueryRow(`SELECT MAX(observation_date) FROM treasury_rates`).Scan(&latest)
	if err != nil {
		return time.Time{}, false, err
	}
	if !latest.Valid {
		return time.Time{}, false, nil
	}
	return latest.Time, true, nil
}

// UpsertRefreshLog records (or updates) the refresh marker for the dataset.
func (r *curveRepository) UpsertRefreshLog(latest time.Time, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO refresh_log (dataset, latest_observation, row_count)
		VALUES ('treasury_rates', $1, $2)
		ON CONFLICT (dataset)
		DO UPDATE SET latest_observation = EXCLUDED.latest_observation,
					  row_count = EXCLUDED.row_count,
					  refreshed_at = NOW()
	`, latest, rowCount)
	return err
}
