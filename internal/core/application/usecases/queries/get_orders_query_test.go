package queries_test

import (
	"testing"

	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery(t *testing.T) {
	t.Run("should create query without filter", func(t *testing.T) {
		query, err := queries.NewGetOrdersQuery("", 0)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, order.Status(""), query.Status())
		assert.Equal(t, 0, query.Limit())
	})

	t.Run("should create query with status filter and limit", func(t *testing.T) {
		query, err := queries.NewGetOrdersQuery("open", 25)

		require.NoError(t, err)
		assert.Equal(t, order.StatusOpen, query.Status())
		assert.Equal(t, 25, query.Limit())
	})

	t.Run("should fail with unknown status", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery("cancelled", 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}

func TestNewGetActiveProductsQuery(t *testing.T) {
	query := queries.NewGetActiveProductsQuery()

	require.NoError(t, query.Validate())
}

func TestGetActiveProductsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetActiveProductsQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetActiveProductsQueryIsNotConstructed)
}
