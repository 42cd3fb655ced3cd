package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret, uploadDir string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{DB: db}
	uploadHandler := &UploadHandler{Dir: uploadDir}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: register and login. Logout does its own header handling so it
	// can report a malformed header as a client error.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)

	// Inventory, scoped to the authenticated user.
	mux.Handle("GET /api/inventory", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/inventory", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("GET /api/inventory/search", authMW(http.HandlerFunc(itemsHandler.Search)))
	mux.Handle("GET /api/inventory/low-stock", authMW(http.HandlerFunc(itemsHandler.LowStock)))
	mux.Handle("GET /api/inventory/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("PUT /api/inventory/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /api/inventory/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("PATCH /api/inventory/{id}/stock", authMW(http.HandlerFunc(itemsHandler.AdjustStock)))

	// Image upload and static serving of stored images.
	mux.Handle("POST /api/upload/image", authMW(http.HandlerFunc(uploadHandler.UploadImage)))
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	return mux
}
