// Package store queries the batch execution history.
//
// The store is a Spring-Batch-style schema: batch_job_instance holds one
// row per logical job, batch_job_execution one row per run. Both window
// queries aggregate executions into (job_name, status, count) groups; a
// job that ran with more than one status in a window yields one record
// per status.
package store

import (
	"database/sql"

	"github.com/teranos/vigil/errors"
)

// ExecutionRecord is one (job_name, status) group observed in a window.
type ExecutionRecord struct {
	JobName string
	Status  string
	Count   int
}

// StatusCompleted is the terminal success status in the execution store.
const StatusCompleted = "COMPLETED"

// Store reads aggregated execution history from the batch database.
type Store struct {
	db *sql.DB
}

// NewStore creates a new execution store backed by db.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const yesterdayQuery = `
	SELECT bji.job_name, be.status, count(*) AS execution_count
	FROM batch_job_execution be
	JOIN batch_job_instance bji ON bji.job_instance_id = be.job_instance_id
	WHERE be.create_time::date = current_date - 1
	GROUP BY bji.job_name, be.status
`

const morningQuery = `
	SELECT bji.job_name, be.status, count(*) AS execution_count
	FROM batch_job_execution be
	JOIN batch_job_instance bji ON bji.job_instance_id = be.job_instance_id
	WHERE be.create_time BETWEEN current_date AND current_date + interval '6 hours'
	GROUP BY bji.job_name, be.status
`

// YesterdayExecutions returns the execution groups whose creation date is
// the calendar day before the database's current date.
func (s *Store) YesterdayExecutions() ([]ExecutionRecord, error) {
	records, err := s.queryExecutions(yesterdayQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query yesterday's executions")
	}
	return records, nil
}

// MorningExecutions returns the execution groups created between today
// 00:00 and 06:00 database time.
func (s *Store) MorningExecutions() ([]ExecutionRecord, error) {
	records, err := s.queryExecutions(morningQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query this morning's executions")
	}
	return records, nil
}

func (s *Store) queryExecutions(query string) ([]ExecutionRecord, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ExecutionRecord
	for rows.Next() {
		var rec ExecutionRecord
		if err := rows.Scan(&rec.JobName, &rec.Status, &rec.Count); err != nil {
			return nil, errors.Wrap(err, "failed to scan execution row")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
