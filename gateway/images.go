package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

// Image is a stored product or category image.
type Image struct {
	ID          int64  `json:"id"`
	FileName    string `json:"fileName"`
	DownloadURL string `json:"downloadUrl"`
}

// UploadProductImage uploads one image for a product.
func (c *Client) UploadProductImage(ctx context.Context, productID int64, filename string, file io.Reader) ([]Image, error) {
	var images []Image
	query := url.Values{"productId": []string{strconv.FormatInt(productID, 10)}}
	if err := c.doMultipart(ctx, "/images/upload", query, "file", filename, file, &images); err != nil {
		return nil, errors.Wrap(err, "[Client.UploadProductImage]")
	}
	return images, nil
}

// DeleteImage removes a product image.
func (c *Client) DeleteImage(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/images/image/%d/delete", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return errors.Wrap(err, "[Client.DeleteImage]")
	}
	return nil
}
