package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	mw "github.com/rogerio-castellano/product-catalog/internal/http/middleware"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/signup", handlers.SignupHandler)
		r.Post("/login", handlers.LoginHandler)
		r.Get("/", handlers.GetUsersHandler)
	})

	r.Route("/api/contact", func(r chi.Router) {
		r.Post("/", handlers.CreateContactItemHandler)
		r.Get("/", handlers.GetContactItemsHandler)
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Use(mw.AuthMiddleware)
		r.Use(rl.Middleware)
		r.Get("/{gtin}", handlers.GetProductByGTINHandler)
		r.Get("/user/{userId}", handlers.GetProductsByUserHandler)
		r.Post("/", handlers.CreateProductHandler)
		r.Patch("/{gtin}", handlers.UpdateProductHandler)
		r.Delete("/{gtin}", handlers.DeleteProductHandler)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "could not find this route"})
	})

	return r
}
