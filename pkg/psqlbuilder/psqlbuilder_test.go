package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "status").
		From("bookings").
		Where(squirrel.Eq{"listing_id": 7}).
		Where(squirrel.Eq{"desk_label": "Q-1"}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, status FROM bookings WHERE listing_id = $1 AND desk_label = $2", query)
	assert.Equal(t, []interface{}{7, "Q-1"}, args)
}

func TestDelete_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Delete("blackout_dates").Where(squirrel.Eq{"listing_id": int64(3)}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM blackout_dates WHERE listing_id = $1", query)
	assert.Equal(t, []interface{}{int64(3)}, args)
}
