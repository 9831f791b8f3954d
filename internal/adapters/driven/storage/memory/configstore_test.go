package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Empty(t, store.Path())
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("ui.theme", "light"))
	require.NoError(t, store.Set("ui.theme", "dark"))

	val, ok := store.Get("ui.theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", val)
}

func TestConfigStore_Get_Missing(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("nope")
	assert.False(t, ok)
	assert.Nil(t, val)
	assert.Empty(t, store.GetString("nope"))
	assert.Zero(t, store.GetInt("nope"))
}

func TestConfigStore_GetString_WrongType(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("ui.page_size", 10))

	assert.Empty(t, store.GetString("ui.page_size"))
}

func TestConfigStore_GetInt_Conversions(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"int", 7, 7},
		{"int64", int64(8), 8},
		{"float64", float64(9), 9},
		{"string", "10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewConfigStore()
			require.NoError(t, store.Set("ui.page_size", tt.value))
			assert.Equal(t, tt.want, store.GetInt("ui.page_size"))
		})
	}
}

func TestConfigStore_Load_NoOp(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("a", "b"))

	require.NoError(t, store.Load())
	assert.Equal(t, "b", store.GetString("a"))
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("ui.page_size", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("ui.page_size")
		}()
	}

	wg.Wait()
	_, ok := store.Get("ui.page_size")
	assert.True(t, ok)
}
