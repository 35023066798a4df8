package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/actuallystonmai/health-lens-service/internal/dataset"
	"github.com/jackc/pgx/v5"
)

const healthRecordsTable = "health_records"

// Categorical and target columns are TEXT; everything else is DOUBLE PRECISION.
var textColumns = map[string]bool{
	"gender":                 true,
	"activity_level":         true,
	"diet_pattern":           true,
	"snack_freq":             true,
	"smoking_status":         true,
	dataset.RiskScoresColumn: true,
}

// Get dataset rows for offline training
func (r *Repository) HealthRecords(ctx context.Context, limit int) ([]dataset.Record, error) {
	cols := dataset.Columns()
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id`, strings.Join(cols, ", "), healthRecordsTable)
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query health records: %w", err)
	}
	defer rows.Close()

	var records []dataset.Record
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("scan health record: %w", err)
		}
		rec := make(dataset.Record, len(cols))
		for i, col := range cols {
			rec[col] = fromDBValue(values[i])
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate health records: %w", err)
	}
	return records, nil
}

// Bulk load dataset rows
func (r *Repository) InsertHealthRecords(ctx context.Context, records []dataset.Record) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	cols := dataset.Columns()
	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(cols))
		for j, col := range cols {
			row[j] = toDBValue(col, rec[col])
		}
		rows[i] = row
	}

	n, err := r.pool.CopyFrom(ctx, pgx.Identifier{healthRecordsTable}, cols, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy health records: %w", err)
	}
	return n, nil
}

// Count dataset rows
func (r *Repository) CountHealthRecords(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM health_records`,
	).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("count health records: %w", err)
	}
	return total, nil
}

// toDBValue maps an empty or unparseable numeric cell to NULL.
func toDBValue(col, cell string) any {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	if textColumns[col] {
		return cell
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}
	return v
}

func fromDBValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	}
	return fmt.Sprint(v)
}
