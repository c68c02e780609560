package postgres

import "fmt"

// placeholder appends a positional parameter to a query fragment,
// e.g. placeholder(" AND habit_id = ", 1) -> " AND habit_id = $1".
func placeholder(prefix string, n int) string {
	return fmt.Sprintf("%s$%d", prefix, n)
}
