package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

// Variant is a product option (size, colour, etc.) with its own price and
// stock level.
type Variant struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Inventory int     `json:"inventory"`
}

// VariantInput is the payload for creating or updating a variant.
type VariantInput struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Inventory int     `json:"inventory"`
}

// AddVariant attaches a new variant to a product.
func (c *Client) AddVariant(ctx context.Context, productID int64, input VariantInput) (Variant, error) {
	var variant Variant
	query := url.Values{"productId": []string{strconv.FormatInt(productID, 10)}}
	if err := c.do(ctx, http.MethodPost, "/variants/variant/add", query, input, &variant); err != nil {
		return Variant{}, errors.Wrap(err, "[Client.AddVariant]")
	}
	return variant, nil
}

// UpdateVariant updates an existing variant.
func (c *Client) UpdateVariant(ctx context.Context, id int64, input VariantInput) (Variant, error) {
	var variant Variant
	path := fmt.Sprintf("/variants/variant/%d/update", id)
	if err := c.do(ctx, http.MethodPut, path, nil, input, &variant); err != nil {
		return Variant{}, errors.Wrap(err, "[Client.UpdateVariant]")
	}
	return variant, nil
}

// DeleteVariant removes a variant.
func (c *Client) DeleteVariant(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/variants/variant/%d/delete", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return errors.Wrap(err, "[Client.DeleteVariant]")
	}
	return nil
}
