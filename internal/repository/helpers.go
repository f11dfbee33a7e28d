package repository

import (
	"fmt"
	"sort"
	"strings"
)

var updatableColumns = map[string]struct{}{
	"name":                {},
	"category":            {},
	"description":         {},
	"price":               {},
	"image_url":           {},
	"is_trend":            {},
	"keywords":            {},
	"trending_percentage": {},
}

// buildUpdateQuery renders an UPDATE ... RETURNING statement touching only
// the given columns plus updated_at. Columns are sorted so the statement
// text is stable for a given set of fields.
func buildUpdateQuery(id string, columns map[string]any) (string, []any, error) {
	if len(columns) == 0 {
		return "", nil, fmt.Errorf("update without columns")
	}

	names := make([]string, 0, len(columns))
	for name := range columns {
		if _, ok := updatableColumns[name]; !ok {
			return "", nil, fmt.Errorf("column %q is not updatable", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([]string, 0, len(names)+1)
	args := make([]any, 0, len(names)+1)
	for i, name := range names {
		sets = append(sets, fmt.Sprintf("%s = $%d", name, i+1))
		args = append(args, columns[name])
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), productColumns,
	)
	return query, args, nil
}
