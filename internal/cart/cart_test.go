package cart_test

import (
	"fmt"
	"sync"
	"testing"

	"ordering/internal/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineItem(t *testing.T, productID int, price string, quantity int) kernel.LineItem {
	t.Helper()
	item, err := kernel.NewLineItem(productID, fmt.Sprintf("product %d", productID), decimal.RequireFromString(price), quantity)
	require.NoError(t, err)
	return item
}

func TestStore_Add(t *testing.T) {
	store := cart.NewStore()

	c, err := store.Add("cart-1", lineItem(t, 101, "8.99", 2))
	require.NoError(t, err)
	require.Len(t, c.Items, 1)

	c, err = store.Add("cart-1", lineItem(t, 201, "2.99", 1))
	require.NoError(t, err)
	assert.Len(t, c.Items, 2)
	assert.Equal(t, "20.97", c.Total().String())
}

func TestStore_Add_SameProductMergesQuantity(t *testing.T) {
	store := cart.NewStore()

	_, err := store.Add("cart-1", lineItem(t, 101, "8.99", 2))
	require.NoError(t, err)
	c, err := store.Add("cart-1", lineItem(t, 101, "9.99", 3))
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity())
	assert.Equal(t, "8.99", c.Items[0].UnitPrice().String())
}

func TestStore_Add_BlankCartID(t *testing.T) {
	_, err := cart.NewStore().Add("  ", lineItem(t, 101, "8.99", 1))
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestStore_Get_UnknownCartIsEmpty(t *testing.T) {
	c, err := cart.NewStore().Get("nobody")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, "0.00", c.Total().String())
}

func TestStore_Remove(t *testing.T) {
	store := cart.NewStore()
	_, err := store.Add("cart-1", lineItem(t, 101, "8.99", 1))
	require.NoError(t, err)
	_, err = store.Add("cart-1", lineItem(t, 201, "2.99", 1))
	require.NoError(t, err)

	c, err := store.Remove("cart-1", 101)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 201, c.Items[0].ProductID())

	_, err = store.Remove("cart-2", 101)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStore_Clear(t *testing.T) {
	store := cart.NewStore()
	_, err := store.Add("cart-1", lineItem(t, 101, "8.99", 1))
	require.NoError(t, err)

	require.NoError(t, store.Clear("cart-1"))
	assert.ErrorIs(t, store.Clear("cart-1"), errs.ErrObjectNotFound)
}

func TestStore_TakeAndRestore(t *testing.T) {
	store := cart.NewStore()
	_, err := store.Add("cart-1", lineItem(t, 101, "8.99", 1))
	require.NoError(t, err)

	taken, err := store.Take("cart-1")
	require.NoError(t, err)
	assert.Len(t, taken.Items, 1)

	_, err = store.Take("cart-1")
	assert.ErrorIs(t, err, errs.ErrInvalidCart)

	store.Restore(taken)
	c, err := store.Get("cart-1")
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)
}

func TestStore_Take_OnlyOneConcurrentWinner(t *testing.T) {
	store := cart.NewStore()
	_, err := store.Add("cart-1", lineItem(t, 101, "8.99", 1))
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Take("cart-1"); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}
