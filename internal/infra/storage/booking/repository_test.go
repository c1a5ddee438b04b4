package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	"github.com/m04kA/FlexDesk-BookingService/pkg/ptr"
)

func TestDeskCondition(t *testing.T) {
	tests := []struct {
		name     string
		filter   domain.BookingsFilter
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "desk with label fallback",
			filter:   domain.BookingsFilter{DeskID: ptr.Ptr(int64(11)), DeskLabel: ptr.Ptr("Q-1")},
			wantSQL:  "(desk_id = ? OR (desk_id IS NULL AND lower(desk_label) = lower(?)))",
			wantArgs: []interface{}{int64(11), "Q-1"},
		},
		{
			name:     "desk only",
			filter:   domain.BookingsFilter{DeskID: ptr.Ptr(int64(11))},
			wantSQL:  "desk_id = ?",
			wantArgs: []interface{}{int64(11)},
		},
		{
			name:     "label only",
			filter:   domain.BookingsFilter{DeskLabel: ptr.Ptr("q-1")},
			wantSQL:  "lower(desk_label) = lower(?)",
			wantArgs: []interface{}{"q-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond := deskCondition(tt.filter)
			require.NotNil(t, cond)

			sql, args, err := cond.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}

	assert.Nil(t, deskCondition(domain.BookingsFilter{}))
}
