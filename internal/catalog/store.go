package catalog

import (
	"context"
	"errors"
)

// PlaceholderImage is stored when a product is created or patched without an image.
const PlaceholderImage = "https://via.placeholder.com/150?text=Product"

var (
	ErrNotFound  = errors.New("product not found")
	ErrNoChanges = errors.New("nothing to update")
)

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
}

// NewProduct carries the caller-supplied fields of a product to be inserted.
// The store assigns the id.
type NewProduct struct {
	Name        string
	Category    string
	Description string
	Price       float64
	Stock       int64
	Rating      float64
	Image       string
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	Name        *string
	Category    *string
	Description *string
	Price       *float64
	Stock       *int64
	Rating      *float64
	Image       *string
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil &&
		p.Category == nil &&
		p.Description == nil &&
		p.Price == nil &&
		p.Stock == nil &&
		p.Rating == nil &&
		p.Image == nil
}

type Store interface {
	Ping(ctx context.Context) error
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, bool, error)
	Create(ctx context.Context, in NewProduct) (Product, error)
	Update(ctx context.Context, id string, patch Patch) (Product, error)
	Delete(ctx context.Context, id string) error
}
