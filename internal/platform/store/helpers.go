package store

import "context"

// Each runs sql on q and calls fn for every row, stopping at the first error
func Each(ctx context.Context, q Querier, sql string, fn func(Row) error, args ...any) error {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
