package server

import (
	"net/http"

	"github.com/shopfront/admin-console/gateway"
)

// CategoriesListHandler proxies the category list.
func (s *Server) CategoriesListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry := entryFromContext(r.Context())
		categories, err := entry.Gateway.Categories(r.Context())
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, categories, "")
	}
}

// CategoryGetHandler proxies a single category fetch.
func (s *Server) CategoryGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, nil, "invalid category id")
			return
		}

		entry := entryFromContext(r.Context())
		category, err := entry.Gateway.Category(r.Context(), id)
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, category, "")
	}
}

// CategoryCreateHandler proxies category creation.
func (s *Server) CategoryCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input gateway.CategoryInput
		if !decodeBody(w, r, &input) {
			return
		}

		entry := entryFromContext(r.Context())
		category, err := entry.Gateway.CreateCategory(r.Context(), input)
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, category, "category created")
	}
}

// CategoryUpdateHandler proxies category updates.
func (s *Server) CategoryUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, nil, "invalid category id")
			return
		}

		var input gateway.CategoryInput
		if !decodeBody(w, r, &input) {
			return
		}

		entry := entryFromContext(r.Context())
		category, err := entry.Gateway.UpdateCategory(r.Context(), id, input)
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, category, "category updated")
	}
}

// CategoryDeleteHandler proxies category deletion.
func (s *Server) CategoryDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, nil, "invalid category id")
			return
		}

		entry := entryFromContext(r.Context())
		if err := entry.Gateway.DeleteCategory(r.Context(), id); err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, nil, "category deleted")
	}
}

// CategoryImageUploadHandler forwards a category image to the backend.
func (s *Server) CategoryImageUploadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, nil, "invalid category id")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, nil, "missing image file")
			return
		}
		defer file.Close()

		entry := entryFromContext(r.Context())
		image, err := entry.Gateway.UploadCategoryImage(r.Context(), id, header.Filename, file)
		if err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, image, "image uploaded")
	}
}

// CategoryImageDeleteHandler proxies category image deletion.
func (s *Server) CategoryImageDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, nil, "invalid category id")
			return
		}

		entry := entryFromContext(r.Context())
		if err := entry.Gateway.DeleteCategoryImage(r.Context(), id); err != nil {
			writeBackendError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, nil, "image deleted")
	}
}
