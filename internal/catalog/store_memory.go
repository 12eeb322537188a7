package catalog

import (
	"context"
	"strings"
	"sync"

	nanoid "github.com/jaevor/go-nanoid"
)

const idLength = 6

type MemStore struct {
	mu    sync.RWMutex
	items []Product
	newID func() string
}

// NewMemStore returns a store holding the given products in order, each
// with a freshly generated id.
func NewMemStore(seed ...NewProduct) *MemStore {
	gen, err := nanoid.Standard(idLength)
	if err != nil {
		panic(err)
	}

	s := &MemStore{
		items: make([]Product, 0, len(seed)),
		newID: gen,
	}
	for _, in := range seed {
		s.items = append(s.items, s.build(in))
	}
	return s
}

// NewStore returns a store with the default catalog loaded.
func NewStore() *MemStore {
	return NewMemStore(DefaultSeed()...)
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *MemStore) List(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Product{}, false, nil
	}
	return s.items[i], true, nil
}

func (s *MemStore) Create(ctx context.Context, in NewProduct) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.build(in)
	s.items = append(s.items, p)
	return p, nil
}

func (s *MemStore) Update(ctx context.Context, id string, patch Patch) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Product{}, ErrNotFound
	}
	if patch.IsEmpty() {
		return Product{}, ErrNoChanges
	}

	p := &s.items[i]
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Category != nil {
		p.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Description != nil {
		p.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Image != nil {
		p.Image = imageOrPlaceholder(*patch.Image)
	}
	return *p, nil
}

func (s *MemStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// build must be called with the write lock held (or before the store is shared).
func (s *MemStore) build(in NewProduct) Product {
	return Product{
		ID:          s.uniqueID(),
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		Rating:      in.Rating,
		Image:       imageOrPlaceholder(in.Image),
	}
}

func (s *MemStore) uniqueID() string {
	for {
		id := s.newID()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

func (s *MemStore) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func imageOrPlaceholder(image string) string {
	if image = strings.TrimSpace(image); image == "" {
		return PlaceholderImage
	}
	return image
}
