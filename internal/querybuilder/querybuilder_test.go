package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdateSingleField(t *testing.T) {
	query, values, err := BuildUpdate("users", map[string]interface{}{
		"first_name": "roni",
	}, "username", "roni")

	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET first_name = $1 WHERE username = $2 RETURNING *", query)
	assert.Equal(t, []interface{}{"roni", "roni"}, values)
}

func TestBuildUpdateMultipleFieldsSortedAndBound(t *testing.T) {
	query, values, err := BuildUpdate("companies", map[string]interface{}{
		"num_employees": 50,
		"description":   "a small shop",
		"name":          "Roni Inc",
	}, "handle", "roni")

	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE companies SET description = $1, name = $2, num_employees = $3 WHERE handle = $4 RETURNING *",
		query)
	assert.Equal(t, []interface{}{"a small shop", "Roni Inc", 50, "roni"}, values)
}

func TestBuildUpdateRejectsUnknownColumn(t *testing.T) {
	_, _, err := BuildUpdate("users", map[string]interface{}{
		"username; DROP TABLE users": "x",
	}, "username", "roni")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestBuildUpdateRejectsKeyColumnInFields(t *testing.T) {
	// Primary keys are not in the allow-list, so renames are impossible.
	_, _, err := BuildUpdate("companies", map[string]interface{}{"handle": "new"}, "handle", "old")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestBuildUpdateRejectsMetaKeys(t *testing.T) {
	_, _, err := BuildUpdate("users", map[string]interface{}{"_token": "abc"}, "username", "roni")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestBuildUpdateEmptyFields(t *testing.T) {
	_, _, err := BuildUpdate("users", map[string]interface{}{}, "username", "roni")
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestBuildUpdateUnknownTable(t *testing.T) {
	_, _, err := BuildUpdate("sessions", map[string]interface{}{"email": "a@b.com"}, "id", 1)
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestBuildFilterNoFilters(t *testing.T) {
	query, values, err := BuildFilter("companies", nil)

	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM companies", query)
	assert.Empty(t, values)
}

func TestBuildFilterSearchOnly(t *testing.T) {
	query, values, err := BuildFilter("companies", map[string]interface{}{"search": "roni"})

	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM companies WHERE handle LIKE $1", query)
	assert.Equal(t, []interface{}{"roni"}, values)
}

func TestBuildFilterAllCompanyFilters(t *testing.T) {
	query, values, err := BuildFilter("companies", map[string]interface{}{
		"search":        "roni",
		"min_employees": 2,
		"max_employees": 100,
	})

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT * FROM companies WHERE handle LIKE $1 AND num_employees > $2 AND num_employees < $3",
		query)
	assert.Equal(t, []interface{}{"roni", 2, 100}, values)
}

func TestBuildFilterImpossibleEmployeeRange(t *testing.T) {
	_, _, err := BuildFilter("companies", map[string]interface{}{
		"min_employees": 100,
		"max_employees": 2,
	})

	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestBuildFilterDropsZeroValues(t *testing.T) {
	query, values, err := BuildFilter("companies", map[string]interface{}{
		"search":        "",
		"min_employees": 0,
		"max_employees": 10,
	})

	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM companies WHERE num_employees < $1", query)
	assert.Equal(t, []interface{}{10}, values)
}

func TestBuildFilterDropsMetaAndUnknownKeys(t *testing.T) {
	query, values, err := BuildFilter("companies", map[string]interface{}{
		"_token": "abc",
		"color":  "blue",
		"search": "roni",
	})

	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM companies WHERE handle LIKE $1", query)
	assert.Equal(t, []interface{}{"roni"}, values)
}

func TestBuildFilterJobSearchSharesParameter(t *testing.T) {
	query, values, err := BuildFilter("jobs", map[string]interface{}{
		"search":     "roni",
		"min_salary": 50000.0,
	})

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT * FROM jobs WHERE (title LIKE $1 OR company_handle LIKE $1) AND salary > $2",
		query)
	assert.Equal(t, []interface{}{"roni", 50000.0}, values)
}

func TestBuildFilterJobMinEquityIsUpperBound(t *testing.T) {
	query, values, err := BuildFilter("jobs", map[string]interface{}{"min_equity": 0.5})

	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM jobs WHERE equity < $1", query)
	assert.Equal(t, []interface{}{0.5}, values)
}

func TestBuildFilterUnknownTable(t *testing.T) {
	_, _, err := BuildFilter("users", map[string]interface{}{"search": "roni"})
	assert.ErrorIs(t, err, ErrUnknownTable)
}
