package gateway_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopfront/admin-console/gateway"
)

// recordingBackend captures the last request and answers with a canned
// envelope.
type recordingBackend struct {
	method string
	path   string
	query  string
	body   []byte
	reply  string
}

func (rb *recordingBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rb.method = r.Method
		rb.path = r.URL.Path
		rb.query = r.URL.RawQuery
		rb.body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(rb.reply))
	}
}

func TestClient_ProductEndpoints(t *testing.T) {
	rb := &recordingBackend{reply: `{"data": {"id": 5, "name": "Desk Lamp", "price": 39.9}}`}
	backend := httptest.NewServer(rb.handler())
	defer backend.Close()

	client := gateway.NewClient(backend.URL)
	ctx := context.Background()

	t.Run("fetch", func(t *testing.T) {
		product, err := client.Product(ctx, 5)
		require.NoError(t, err)
		require.Equal(t, "GET", rb.method)
		require.Equal(t, "/products/product/5/product", rb.path)
		require.Equal(t, int64(5), product.ID)
		require.Equal(t, "Desk Lamp", product.Name)
	})

	t.Run("create", func(t *testing.T) {
		input := gateway.ProductInput{
			Name:     "Desk Lamp",
			Brand:    "Lumen",
			Price:    39.9,
			Category: gateway.CategoryRef{Name: "Lighting"},
		}
		_, err := client.CreateProduct(ctx, input)
		require.NoError(t, err)
		require.Equal(t, "POST", rb.method)
		require.Equal(t, "/products/add", rb.path)
		require.Contains(t, string(rb.body), `"category":{"name":"Lighting"}`)
	})

	t.Run("update", func(t *testing.T) {
		_, err := client.UpdateProduct(ctx, 5, gateway.ProductInput{Name: "Desk Lamp v2"})
		require.NoError(t, err)
		require.Equal(t, "PUT", rb.method)
		require.Equal(t, "/products/product/5/update", rb.path)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, client.DeleteProduct(ctx, 5))
		require.Equal(t, "DELETE", rb.method)
		require.Equal(t, "/products/product/5/delete", rb.path)
	})
}

func TestClient_VariantEndpoints(t *testing.T) {
	rb := &recordingBackend{reply: `{"data": {"id": 9, "name": "Large", "price": 44.9, "inventory": 3}}`}
	backend := httptest.NewServer(rb.handler())
	defer backend.Close()

	client := gateway.NewClient(backend.URL)
	ctx := context.Background()

	t.Run("add carries the product id as a query parameter", func(t *testing.T) {
		variant, err := client.AddVariant(ctx, 5, gateway.VariantInput{Name: "Large", Price: 44.9, Inventory: 3})
		require.NoError(t, err)
		require.Equal(t, "/variants/variant/add", rb.path)
		require.Equal(t, "productId=5", rb.query)
		require.Equal(t, "Large", variant.Name)
	})

	t.Run("update and delete address the variant", func(t *testing.T) {
		_, err := client.UpdateVariant(ctx, 9, gateway.VariantInput{Name: "Large", Price: 49.9})
		require.NoError(t, err)
		require.Equal(t, "/variants/variant/9/update", rb.path)

		require.NoError(t, client.DeleteVariant(ctx, 9))
		require.Equal(t, "/variants/variant/9/delete", rb.path)
	})
}

func TestClient_ImageEndpoints(t *testing.T) {
	rb := &recordingBackend{reply: `{"data": [{"id": 3, "fileName": "front.png", "downloadUrl": "/img/3"}]}`}
	backend := httptest.NewServer(rb.handler())
	defer backend.Close()

	client := gateway.NewClient(backend.URL)
	ctx := context.Background()

	t.Run("upload is multipart", func(t *testing.T) {
		images, err := client.UploadProductImage(ctx, 5, "front.png", strings.NewReader("fake-bytes"))
		require.NoError(t, err)
		require.Equal(t, "/images/upload", rb.path)
		require.Equal(t, "productId=5", rb.query)
		require.Len(t, images, 1)
		require.Equal(t, "front.png", images[0].FileName)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, client.DeleteImage(ctx, 3))
		require.Equal(t, "/images/image/3/delete", rb.path)
	})
}

func TestClient_CategoryEndpoints(t *testing.T) {
	rb := &recordingBackend{reply: `{"data": {"id": 2, "name": "Lighting"}}`}
	backend := httptest.NewServer(rb.handler())
	defer backend.Close()

	client := gateway.NewClient(backend.URL)
	ctx := context.Background()

	t.Run("crud paths", func(t *testing.T) {
		_, err := client.Category(ctx, 2)
		require.NoError(t, err)
		require.Equal(t, "/categories/category/2/category", rb.path)

		_, err = client.CreateCategory(ctx, gateway.CategoryInput{Name: "Lighting"})
		require.NoError(t, err)
		require.Equal(t, "/categories/add", rb.path)

		_, err = client.UpdateCategory(ctx, 2, gateway.CategoryInput{Name: "Lights"})
		require.NoError(t, err)
		require.Equal(t, "/categories/category/2/update", rb.path)

		require.NoError(t, client.DeleteCategory(ctx, 2))
		require.Equal(t, "/categories/category/2/delete", rb.path)
	})

	t.Run("image upload and delete", func(t *testing.T) {
		_, err := client.UploadCategoryImage(ctx, 2, "banner.png", strings.NewReader("fake-bytes"))
		require.NoError(t, err)
		require.Equal(t, "/categories/2/upload-image", rb.path)

		require.NoError(t, client.DeleteCategoryImage(ctx, 2))
		require.Equal(t, "/categories/image/2/delete-image", rb.path)
	})
}
