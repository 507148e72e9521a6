package routers

import (
	"mediplant-service/internal/app/delivery/http/middlewares"
	"mediplant-service/internal/app/services/core/catalog"

	"github.com/go-chi/chi/v5"
)

func attachProductRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *catalog.CatalogController) {
	router.Get("/", catalogController.ListProducts)
	router.With(middlewares.RequireAdminAPIKey).Post("/", catalogController.CreateProduct)
}

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *catalog.CatalogController) {
	router.Get("/", catalogController.ListDoctors)
	router.With(middlewares.RequireAdminAPIKey).Post("/", catalogController.CreateDoctor)
}
