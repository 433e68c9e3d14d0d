package order_test

import (
	"testing"

	"orderprocessing/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{
		order.New,
		order.Exported,
		order.ExportFailed,
		order.Processed,
		order.Pending,
		order.Error,
		order.APIError,
		order.APIFailure,
		order.Completed,
		order.InProgress,
		order.UnknownType,
		order.DBError,
	}

	for _, s := range valid {
		t.Run(s.String(), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	t.Run("empty status is invalid", func(t *testing.T) {
		err := order.Status("").Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a valid status")
	})
}

func TestStatus_WireValues(t *testing.T) {
	assert.Equal(t, "new", order.New.String())
	assert.Equal(t, "export_failed", order.ExportFailed.String())
	assert.Equal(t, "api_failure", order.APIFailure.String())
	assert.Equal(t, "in_progress", order.InProgress.String())
	assert.Equal(t, "unknown_type", order.UnknownType.String())
	assert.Equal(t, "db_error", order.DBError.String())
}

func TestType_IsKnown(t *testing.T) {
	testCases := []struct {
		typ   order.Type
		known bool
	}{
		{order.TypeA, true},
		{order.TypeB, true},
		{order.TypeC, true},
		{order.Type("D"), false},
		{order.Type("a"), false},
		{order.Type(""), false},
	}

	for _, tc := range testCases {
		t.Run("type_"+tc.typ.String(), func(t *testing.T) {
			assert.Equal(t, tc.known, tc.typ.IsKnown())
		})
	}
}
