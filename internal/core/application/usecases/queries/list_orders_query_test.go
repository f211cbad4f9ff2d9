package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/pkg/errs"
)

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("should accept limits at both bounds", func(t *testing.T) {
		for _, limit := range []int{1, 100} {
			query, err := queries.NewListOrdersQuery(limit, 0)

			require.NoError(t, err)
			assert.Equal(t, limit, query.Limit())
		}
	})

	t.Run("should reject limits outside [1,100]", func(t *testing.T) {
		for _, limit := range []int{0, -1, 101} {
			_, err := queries.NewListOrdersQuery(limit, 0)

			require.Error(t, err, "limit %d must be rejected", limit)
			assert.ErrorIs(t, err, errs.ErrValidationFailed)
			assert.Contains(t, err.Error(), "limit")
		}
	})

	t.Run("should reject a negative offset", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(10, -1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidationFailed)
		assert.Contains(t, err.Error(), "offset")
	})

	t.Run("zero value query should fail validation", func(t *testing.T) {
		var query queries.ListOrdersQuery

		require.ErrorIs(t, query.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("should create a valid query", func(t *testing.T) {
		query, err := queries.NewGetOrderQuery("order-1")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "order-1", query.OrderID())
	})

	t.Run("should reject a blank id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery("   ")

		require.ErrorIs(t, err, errs.ErrValidationFailed)
	})
}
