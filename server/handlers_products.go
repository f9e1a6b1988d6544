package server

import (
	"net/http"

	"github.com/shopfront/admin-console/gateway"
)

// ProductsListHandler proxies the product list.
func (s *Server) ProductsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry := entryFromContext(r.Context())
		products, err := entry.Gateway.Products(r.Context())
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, products, "")
	}
}

// ProductGetHandler proxies a single product fetch.
func (s *Server) ProductGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, nil, "invalid product id")
			return
		}

		entry := entryFromContext(r.Context())
		product, err := entry.Gateway.Product(r.Context(), id)
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, product, "")
	}
}

// ProductCreateHandler proxies product creation.
func (s *Server) ProductCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input gateway.ProductInput
		if !decodeBody(w, r, &input) {
			return
		}

		entry := entryFromContext(r.Context())
		product, err := entry.Gateway.CreateProduct(r.Context(), input)
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, product, "product created")
	}
}

// ProductUpdateHandler proxies product updates.
func (s *Server) ProductUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, nil, "invalid product id")
			return
		}

		var input gateway.ProductInput
		if !decodeBody(w, r, &input) {
			return
		}

		entry := entryFromContext(r.Context())
		product, err := entry.Gateway.UpdateProduct(r.Context(), id, input)
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, product, "product updated")
	}
}

// ProductDeleteHandler proxies product deletion.
func (s *Server) ProductDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, nil, "invalid product id")
			return
		}

		entry := entryFromContext(r.Context())
		if err := entry.Gateway.DeleteProduct(r.Context(), id); err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, nil, "product deleted")
	}
}

// ProductImageUploadHandler forwards uploaded images to the backend.
func (s *Server) ProductImageUploadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, nil, "invalid product id")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, nil, "missing image file")
			return
		}
		defer file.Close()

		entry := entryFromContext(r.Context())
		images, err := entry.Gateway.UploadProductImage(r.Context(), id, header.Filename, file)
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, images, "images uploaded")
	}
}

// ImageDeleteHandler proxies product image deletion.
func (s *Server) ImageDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, nil, "invalid image id")
			return
		}

		entry := entryFromContext(r.Context())
		if err := entry.Gateway.DeleteImage(r.Context(), id); err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, nil, "image deleted")
	}
}

// VariantAddHandler proxies variant creation for a product.
func (s *Server) VariantAddHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, nil, "invalid product id")
			return
		}

		var input gateway.VariantInput
		if !decodeBody(w, r, &input) {
			return
		}

		entry := entryFromContext(r.Context())
		variant, err := entry.Gateway.AddVariant(r.Context(), id, input)
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, variant, "variant added")
	}
}

// VariantUpdateHandler proxies variant updates.
func (s *Server) VariantUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, nil, "invalid variant id")
			return
		}

		var input gateway.VariantInput
		if !decodeBody(w, r, &input) {
			return
		}

		entry := entryFromContext(r.Context())
		variant, err := entry.Gateway.UpdateVariant(r.Context(), id, input)
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, variant, "variant updated")
	}
}

// VariantDeleteHandler proxies variant deletion.
func (s *Server) VariantDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, nil, "invalid variant id")
			return
		}

		entry := entryFromContext(r.Context())
		if err := entry.Gateway.DeleteVariant(r.Context(), id); err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, nil, "variant deleted")
	}
}
