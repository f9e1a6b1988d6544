package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Product is a catalog product as the backend reports it.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Price       float64   `json:"price"`
	Inventory   int       `json:"inventory"`
	Description string    `json:"description"`
	Category    *Category `json:"category,omitempty"`
	Images      []Image   `json:"images,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
}

// ProductInput is the payload for creating or updating a product. The
// category is referenced by name; the backend resolves it.
type ProductInput struct {
	Name        string         `json:"name"`
	Brand       string         `json:"brand"`
	Price       float64        `json:"price"`
	Inventory   int            `json:"inventory"`
	Description string         `json:"description"`
	Category    CategoryRef    `json:"category"`
	Variants    []VariantInput `json:"variants,omitempty"`
}

// CategoryRef references a category by name.
type CategoryRef struct {
	Name string `json:"name"`
}

// Products returns the full product list.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products/all", nil, nil, &products); err != nil {
		return nil, errors.Wrap(err, "[Client.Products]")
	}
	return products, nil
}

// Product returns a single product by ID.
func (c *Client) Product(ctx context.Context, id int64) (Product, error) {
	var product Product
	path := fmt.Sprintf("/products/product/%d/product", id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &product); err != nil {
		return Product{}, errors.Wrap(err, "[Client.Product]")
	}
	return product, nil
}

// CreateProduct creates a product and returns the stored record.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPost, "/products/add", nil, input, &product); err != nil {
		return Product{}, errors.Wrap(err, "[Client.CreateProduct]")
	}
	return product, nil
}

// UpdateProduct updates an existing product.
func (c *Client) UpdateProduct(ctx context.Context, id int64, input ProductInput) (Product, error) {
	var product Product
	path := fmt.Sprintf("/products/product/%d/update", id)
	if err := c.do(ctx, http.MethodPut, path, nil, input, &product); err != nil {
		return Product{}, errors.Wrap(err, "[Client.UpdateProduct]")
	}
	return product, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/products/product/%d/delete", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return errors.Wrap(err, "[Client.DeleteProduct]")
	}
	return nil
}
