package routers

import (
	"mediplant-service/internal/app/delivery/http/middlewares"
	"mediplant-service/internal/app/services/core/cart"

	"github.com/go-chi/chi/v5"
)

func attachCartRoutes(router chi.Router, middlewares *middlewares.Middlewares, cartController *cart.CartController) {
	router.Use(middlewares.CartSession)

	router.Post("/sessions", cartController.CreateSession)
	router.Get("/", cartController.GetCart)
	router.Post("/items", cartController.AddItem)
	router.Patch("/items", cartController.UpdateQuantity)
	router.Delete("/", cartController.ClearCart)
}
