package contracts

import (
	"context"
	"mediplant-service/internal/app/models"
	"mediplant-service/internal/pkg/dto/requests"
	"mediplant-service/internal/pkg/dto/responses"
)

type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]responses.Product, error)
	ListDoctors(ctx context.Context, institutionID string) ([]responses.Doctor, error)
	CreateProduct(ctx context.Context, request *requests.CreateProductRequest) (*responses.Product, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctorRequest) (*responses.Doctor, error)
}

type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, productID string) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) (*models.Product, error)
}

type DoctorRepository interface {
	FindAll(ctx context.Context, institutionID string) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	Insert(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
}
