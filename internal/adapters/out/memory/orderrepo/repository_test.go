package orderrepo_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orders/internal/adapters/out/memory/orderrepo"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

func newOrder(t *testing.T, id string) *order.Order {
	t.Helper()

	o, err := order.NewOrder(id, "c1", []string{"i1"})
	require.NoError(t, err)
	return o
}

func TestRepository_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("should store and return the order", func(t *testing.T) {
		repo := orderrepo.NewRepository()

		require.NoError(t, repo.Add(ctx, newOrder(t, "order-1")))

		got, err := repo.Get(ctx, "order-1")
		require.NoError(t, err)
		assert.Equal(t, "order-1", got.ID())
		assert.Equal(t, order.Pending, got.Status())
	})

	t.Run("should reject a duplicate id", func(t *testing.T) {
		repo := orderrepo.NewRepository()
		require.NoError(t, repo.Add(ctx, newOrder(t, "order-1")))

		err := repo.Add(ctx, newOrder(t, "order-1"))

		require.Error(t, err)
	})

	t.Run("should reject an unconstructed order", func(t *testing.T) {
		repo := orderrepo.NewRepository()

		err := repo.Add(ctx, &order.Order{})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("should return not found for an unknown id", func(t *testing.T) {
		repo := orderrepo.NewRepository()

		_, err := repo.Get(ctx, "missing")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should return identical data on repeated reads", func(t *testing.T) {
		repo := orderrepo.NewRepository()
		require.NoError(t, repo.Add(ctx, newOrder(t, "order-1")))

		first, err := repo.Get(ctx, "order-1")
		require.NoError(t, err)
		second, err := repo.Get(ctx, "order-1")
		require.NoError(t, err)

		assert.Equal(t, first.ID(), second.ID())
		assert.Equal(t, first.Status(), second.Status())
		assert.Equal(t, first.Items(), second.Items())
	})

	t.Run("should hand out copies that do not alias the store", func(t *testing.T) {
		repo := orderrepo.NewRepository()
		require.NoError(t, repo.Add(ctx, newOrder(t, "order-1")))

		got, err := repo.Get(ctx, "order-1")
		require.NoError(t, err)
		require.NoError(t, got.ChangeStatus(order.Paid))

		stored, err := repo.Get(ctx, "order-1")
		require.NoError(t, err)
		assert.Equal(t, order.Pending, stored.Status())
	})
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("should persist a status change", func(t *testing.T) {
		repo := orderrepo.NewRepository()
		require.NoError(t, repo.Add(ctx, newOrder(t, "order-1")))

		got, err := repo.Get(ctx, "order-1")
		require.NoError(t, err)
		require.NoError(t, got.ChangeStatus(order.Paid))
		require.NoError(t, repo.Update(ctx, got))

		stored, err := repo.Get(ctx, "order-1")
		require.NoError(t, err)
		assert.Equal(t, order.Paid, stored.Status())
	})

	t.Run("should return not found for an unknown id", func(t *testing.T) {
		repo := orderrepo.NewRepository()

		err := repo.Update(ctx, newOrder(t, "missing"))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, repo *orderrepo.Repository, n int) {
		t.Helper()
		for i := 1; i <= n; i++ {
			require.NoError(t, repo.Add(ctx, newOrder(t, fmt.Sprintf("order-%d", i))))
		}
	}

	t.Run("should page in creation order with the full total", func(t *testing.T) {
		repo := orderrepo.NewRepository()
		seed(t, repo, 3)

		page, total, err := repo.List(ctx, 2, 1)

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, page, 2)
		assert.Equal(t, "order-2", page[0].ID())
		assert.Equal(t, "order-3", page[1].ID())
	})

	t.Run("should clip the page to the available length", func(t *testing.T) {
		repo := orderrepo.NewRepository()
		seed(t, repo, 2)

		page, total, err := repo.List(ctx, 100, 0)

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, page, 2)
	})

	t.Run("should return an empty page past the end", func(t *testing.T) {
		repo := orderrepo.NewRepository()
		seed(t, repo, 2)

		page, total, err := repo.List(ctx, 10, 5)

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Empty(t, page)
	})

	t.Run("should list an empty repository", func(t *testing.T) {
		repo := orderrepo.NewRepository()

		page, total, err := repo.List(ctx, 10, 0)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, page)
	})
}

func TestRepository_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			o, err := order.NewOrder(fmt.Sprintf("order-%d", i), "c1", []string{"i1"})
			require.NoError(t, err)
			require.NoError(t, repo.Add(ctx, o))
			_, _, _ = repo.List(ctx, 10, 0)
			_, _ = repo.Get(ctx, o.ID())
		}(i)
	}
	wg.Wait()

	_, total, err := repo.List(ctx, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 50, total)
}
