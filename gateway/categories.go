package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// Category is a product category as the backend reports it.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image *Image `json:"image,omitempty"`
}

// CategoryInput is the payload for creating or updating a category.
type CategoryInput struct {
	Name string `json:"name"`
}

// Categories returns the full category list.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/categories/all", nil, nil, &categories); err != nil {
		return nil, errors.Wrap(err, "[Client.Categories]")
	}
	return categories, nil
}

// Category returns a single category by ID.
func (c *Client) Category(ctx context.Context, id int64) (Category, error) {
	var category Category
	path := fmt.Sprintf("/categories/category/%d/category", id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &category); err != nil {
		return Category{}, errors.Wrap(err, "[Client.Category]")
	}
	return category, nil
}

// CreateCategory creates a category and returns the stored record.
func (c *Client) CreateCategory(ctx context.Context, input CategoryInput) (Category, error) {
	var category Category
	if err := c.do(ctx, http.MethodPost, "/categories/add", nil, input, &category); err != nil {
		return Category{}, errors.Wrap(err, "[Client.CreateCategory]")
	}
	return category, nil
}

// UpdateCategory updates an existing category.
func (c *Client) UpdateCategory(ctx context.Context, id int64, input CategoryInput) (Category, error) {
	var category Category
	path := fmt.Sprintf("/categories/category/%d/update", id)
	if err := c.do(ctx, http.MethodPut, path, nil, input, &category); err != nil {
		return Category{}, errors.Wrap(err, "[Client.UpdateCategory]")
	}
	return category, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/categories/category/%d/delete", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return errors.Wrap(err, "[Client.DeleteCategory]")
	}
	return nil
}

// UploadCategoryImage replaces the category's image.
func (c *Client) UploadCategoryImage(ctx context.Context, id int64, filename string, file io.Reader) (Image, error) {
	var image Image
	path := fmt.Sprintf("/categories/%d/upload-image", id)
	if err := c.doMultipart(ctx, path, nil, "file", filename, file, &image); err != nil {
		return Image{}, errors.Wrap(err, "[Client.UploadCategoryImage]")
	}
	return image, nil
}

// DeleteCategoryImage removes the category's image.
func (c *Client) DeleteCategoryImage(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/categories/image/%d/delete-image", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return errors.Wrap(err, "[Client.DeleteCategoryImage]")
	}
	return nil
}
