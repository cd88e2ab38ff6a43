// Package querybuilder constructs parameterized SQL for partial updates and
// filtered listings. Values are always bound positionally; column names are
// interpolated only after passing a fixed per-table allow-list, so client
// payload keys can never reach the SQL text unchecked.
package querybuilder

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownTable      = errors.New("querybuilder: unknown table")
	ErrUnknownColumn     = errors.New("querybuilder: column not allowed for table")
	ErrNoFields          = errors.New("querybuilder: no fields to update")
	ErrInvalidParameters = errors.New("querybuilder: check that your parameters are correct")
)

// MetaPrefix marks payload keys that carry transport concerns (the auth
// token) rather than entity data. They are stripped, never persisted.
const MetaPrefix = "_"

// updatableColumns is the allow-list of columns a partial update may touch.
// Primary keys are deliberately absent.
var updatableColumns = map[string]map[string]bool{
	"users": {
		"password":   true,
		"first_name": true,
		"last_name":  true,
		"email":      true,
		"photo_url":  true,
		"is_admin":   true,
	},
	"companies": {
		"name":          true,
		"num_employees": true,
		"description":   true,
		"logo_url":      true,
	},
	"jobs": {
		"title":          true,
		"salary":         true,
		"equity":         true,
		"company_handle": true,
	},
}

// filterClause binds a recognized filter name to its SQL predicate. The
// placeholder marker %d is replaced with the next positional parameter.
type filterClause struct {
	name   string
	clause string
}

// Filter order is fixed so identical inputs always produce identical SQL.
// min_equity is historically an upper bound despite its name; preserved.
var filterClauses = map[string][]filterClause{
	"companies": {
		{name: "search", clause: "handle LIKE $%d"},
		{name: "min_employees", clause: "num_employees > $%d"},
		{name: "max_employees", clause: "num_employees < $%d"},
	},
	"jobs": {
		{name: "search", clause: "(title LIKE $%d OR company_handle LIKE $%d)"},
		{name: "min_salary", clause: "salary > $%d"},
		{name: "min_equity", clause: "equity < $%d"},
	},
}

// BuildUpdate produces an UPDATE statement for the subset of columns present
// in fields, keyed by keyColumn = keyValue, returning the updated row.
// Every field must be in the table's allow-list. Keys are applied in sorted
// order so the statement text is deterministic.
func BuildUpdate(table string, fields map[string]interface{}, keyColumn string, keyValue interface{}) (string, []interface{}, error) {
	allowed, ok := updatableColumns[table]
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	if len(fields) == 0 {
		return "", nil, ErrNoFields
	}

	columns := make([]string, 0, len(fields))
	for col := range fields {
		if strings.HasPrefix(col, MetaPrefix) || !allowed[col] {
			return "", nil, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
		}
		columns = append(columns, col)
	}
	sort.Strings(columns)

	sets := make([]string, 0, len(columns))
	values := make([]interface{}, 0, len(columns)+1)
	for i, col := range columns {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
		values = append(values, fields[col])
	}
	values = append(values, keyValue)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d RETURNING *",
		table, strings.Join(sets, ", "), keyColumn, len(values),
	)
	return query, values, nil
}

// BuildFilter produces a SELECT over table conjoining only the recognized
// filters that are present with non-zero values. Meta-prefixed and
// unrecognized keys are dropped. When both min_employees and max_employees
// are present and the range is impossible, it fails before any SQL is built.
func BuildFilter(table string, filters map[string]interface{}) (string, []interface{}, error) {
	clauses, ok := filterClauses[table]
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	active := make(map[string]interface{}, len(filters))
	for name, value := range filters {
		if strings.HasPrefix(name, MetaPrefix) || isZero(value) {
			continue
		}
		active[name] = value
	}

	if min, ok := active["min_employees"]; ok {
		if max, ok := active["max_employees"]; ok {
			if toFloat(min) > toFloat(max) {
				return "", nil, ErrInvalidParameters
			}
		}
	}

	query := "SELECT * FROM " + table
	var (
		predicates []string
		values     []interface{}
	)
	for _, fc := range clauses {
		value, ok := active[fc.name]
		if !ok {
			continue
		}
		n := len(values) + 1
		placeholders := make([]interface{}, strings.Count(fc.clause, "%d"))
		for i := range placeholders {
			placeholders[i] = n
		}
		predicates = append(predicates, fmt.Sprintf(fc.clause, placeholders...))
		values = append(values, value)
	}
	if len(predicates) > 0 {
		query += " WHERE " + strings.Join(predicates, " AND ")
	}
	return query, values, nil
}

func isZero(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case int:
		return t == 0
	case int64:
		return t == 0
	case float64:
		return t == 0
	case bool:
		return !t
	}
	return false
}

func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case float64:
		return t
	}
	return 0
}
