package catalog

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mug() NewProduct {
	return NewProduct{
		Name:        "Mug",
		Category:    "Kitchen",
		Description: "Ceramic mug",
		Price:       300,
		Stock:       5,
	}
}

func ptr[T any](v T) *T { return &v }

func TestNewStore_Seed(t *testing.T) {
	s := NewStore()

	products, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 10)

	seen := map[string]bool{}
	for i, p := range products {
		assert.Len(t, p.ID, idLength)
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.Equal(t, DefaultSeed()[i].Name, p.Name, "seed order")
	}
}

func TestMemStore_Create(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	in := mug()
	in.Name = "  Mug  "
	in.Category = "\tKitchen\n"
	p, err := s.Create(ctx, in)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Mug", p.Name)
	assert.Equal(t, "Kitchen", p.Category)
	assert.Equal(t, "Ceramic mug", p.Description)
	assert.Equal(t, 300.0, p.Price)
	assert.Equal(t, int64(5), p.Stock)
	assert.Equal(t, 0.0, p.Rating)
	assert.Equal(t, PlaceholderImage, p.Image)

	got, ok, err := s.Get(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p, got)
}

func TestMemStore_Create_KeepsImageAndRating(t *testing.T) {
	s := NewMemStore()

	in := mug()
	in.Rating = 4.5
	in.Image = " https://example.com/mug.png "
	p, err := s.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 4.5, p.Rating)
	assert.Equal(t, "https://example.com/mug.png", p.Image)
}

func TestMemStore_List_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	var want []string
	for i := 0; i < 5; i++ {
		in := mug()
		in.Name = fmt.Sprintf("item-%d", i)
		p, err := s.Create(ctx, in)
		require.NoError(t, err)
		want = append(want, p.ID)
	}

	products, err := s.List(ctx)
	require.NoError(t, err)

	var got []string
	for _, p := range products {
		got = append(got, p.ID)
	}
	assert.Equal(t, want, got)
}

func TestMemStore_List_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(mug())

	products, err := s.List(ctx)
	require.NoError(t, err)
	products[0].Name = "changed"

	again, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mug", again[0].Name)
}

func TestMemStore_Get_Missing(t *testing.T) {
	s := NewStore()

	_, ok, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStore_Update(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(mug())
	orig, err := s.List(ctx)
	require.NoError(t, err)
	id := orig[0].ID

	t.Run("only provided fields change", func(t *testing.T) {
		p, err := s.Update(ctx, id, Patch{Stock: ptr(int64(3))})
		require.NoError(t, err)

		want := orig[0]
		want.Stock = 3
		assert.Equal(t, want, p)
	})

	t.Run("strings are trimmed", func(t *testing.T) {
		p, err := s.Update(ctx, id, Patch{Name: ptr("  Big mug "), Description: ptr(" Large ")})
		require.NoError(t, err)
		assert.Equal(t, "Big mug", p.Name)
		assert.Equal(t, "Large", p.Description)
	})

	t.Run("blank image resets to placeholder", func(t *testing.T) {
		_, err := s.Update(ctx, id, Patch{Image: ptr("https://example.com/a.png")})
		require.NoError(t, err)

		p, err := s.Update(ctx, id, Patch{Image: ptr("  ")})
		require.NoError(t, err)
		assert.Equal(t, PlaceholderImage, p.Image)
	})

	t.Run("zero rating is applied", func(t *testing.T) {
		_, err := s.Update(ctx, id, Patch{Rating: ptr(4.0)})
		require.NoError(t, err)

		p, err := s.Update(ctx, id, Patch{Rating: ptr(0.0)})
		require.NoError(t, err)
		assert.Equal(t, 0.0, p.Rating)
	})

	t.Run("empty patch", func(t *testing.T) {
		_, err := s.Update(ctx, id, Patch{})
		assert.ErrorIs(t, err, ErrNoChanges)
	})

	t.Run("missing id wins over empty patch", func(t *testing.T) {
		_, err := s.Update(ctx, "nope", Patch{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	products, err := s.List(ctx)
	require.NoError(t, err)
	victim := products[3]

	require.NoError(t, s.Delete(ctx, victim.ID))
	assert.Equal(t, 9, s.Len())

	_, ok, err := s.Get(ctx, victim.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, s.Delete(ctx, victim.ID), ErrNotFound)

	after, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, products[2].ID, after[2].ID)
	assert.Equal(t, products[4].ID, after[3].ID)
}

func TestMemStore_RegeneratesCollidingID(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(mug())
	existing := s.items[0].ID

	ids := []string{existing, existing, "fresh1"}
	s.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	p, err := s.Create(ctx, mug())
	require.NoError(t, err)
	assert.Equal(t, "fresh1", p.ID)
	assert.Empty(t, ids)
}

func TestMemStore_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Create(ctx, mug())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	products, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, n+10)

	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		_, dup := seen[p.ID]
		require.False(t, dup, "duplicate id %s", p.ID)
		seen[p.ID] = struct{}{}
	}
}
