package routers

import (
	"mediplant-service/internal/app/delivery/http/middlewares"
	"mediplant-service/internal/app/services/core/checkout"

	"github.com/go-chi/chi/v5"
)

func attachCheckoutRoutes(router chi.Router, middlewares *middlewares.Middlewares, checkoutController *checkout.CheckoutController) {
	router.Use(middlewares.CartSession)

	router.Get("/", checkoutController.GetCheckout)
	router.Post("/", checkoutController.BeginCheckout)
	router.Post("/back", checkoutController.BackToCart)
	router.Post("/payment", checkoutController.CompletePayment)
}
