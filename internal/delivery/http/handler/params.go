package handler

import (
	"net/http"
	"strconv"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parseIDParam reads the {id} path variable as an unsigned integer
func parseIDParam(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseUintQuery reads an optional unsigned integer query parameter,
// returning 0 when absent or malformed
func parseUintQuery(r *http.Request, name string) uint {
	value, err := strconv.ParseUint(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(value)
}

// parsePagination reads zero-based page and size query parameters
func parsePagination(r *http.Request) (page, size int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err = strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// requestUsuario resolves the acting user for audit trails: the explicit
// usuario query parameter wins, falling back to the authenticated login
func requestUsuario(r *http.Request) string {
	if usuario := r.URL.Query().Get("usuario"); usuario != "" {
		return usuario
	}
	if login, ok := middleware.GetUserLoginFromContext(r.Context()); ok {
		return login
	}
	return "sistema"
}
