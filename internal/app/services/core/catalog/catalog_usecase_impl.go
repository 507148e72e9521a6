package catalog

import (
	"context"
	"encoding/base64"
	"mediplant-service/internal/app/config"
	"mediplant-service/internal/app/contracts"
	"mediplant-service/internal/app/models"
	"mediplant-service/internal/pkg/constvars"
	"mediplant-service/internal/pkg/dto/requests"
	"mediplant-service/internal/pkg/dto/responses"
	"mediplant-service/internal/pkg/exceptions"
	"mediplant-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type catalogUsecase struct {
	ProductRepository contracts.ProductRepository
	DoctorRepository  contracts.DoctorRepository
	Storage           contracts.Storage
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	catalogUsecaseInstance contracts.CatalogUsecase
	onceCatalogUsecase     sync.Once
)

func NewCatalogUsecase(
	productRepository contracts.ProductRepository,
	doctorRepository contracts.DoctorRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CatalogUsecase {
	onceCatalogUsecase.Do(func() {
		instance := &catalogUsecase{
			ProductRepository: productRepository,
			DoctorRepository:  doctorRepository,
			Storage:           storage,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
		catalogUsecaseInstance = instance
	})
	return catalogUsecaseInstance
}

func (uc *catalogUsecase) ListProducts(ctx context.Context) ([]responses.Product, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.ListProducts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	products, err := uc.ProductRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("catalogUsecase.ListProducts error calling ProductRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	presignTTL := time.Duration(uc.InternalConfig.Minio.PresignedUrlExpiryTimeInHours) * time.Hour
	result := make([]responses.Product, 0, len(products))
	for _, product := range products {
		item := responses.Product{
			ID:           product.ID,
			Name:         product.Name,
			Category:     product.Category,
			DisplayPrice: product.DisplayPrice,
		}
		if product.ImageRef != "" {
			imageURL, presignErr := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, product.ImageRef, presignTTL)
			if presignErr != nil {
				// A missing image never blocks the listing.
				uc.Log.Warn("catalogUsecase.ListProducts error presigning image",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingProductIDKey, product.ID),
					zap.Error(presignErr),
				)
			} else {
				item.ImageURL = imageURL
			}
		}
		result = append(result, item)
	}

	uc.Log.Info("catalogUsecase.ListProducts succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	return result, nil
}

// ListDoctors lists the bookable doctors, optionally narrowed to a single
// institution.
func (uc *catalogUsecase) ListDoctors(ctx context.Context, institutionID string) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstitutionIDKey, institutionID),
	)

	doctors, err := uc.DoctorRepository.FindAll(ctx, institutionID)
	if err != nil {
		uc.Log.Error("catalogUsecase.ListDoctors error calling DoctorRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		result = append(result, responses.Doctor{
			ID:             doctor.ID,
			Name:           doctor.Name,
			Specialization: doctor.Specialization,
			InstitutionID:  doctor.InstitutionID,
		})
	}

	uc.Log.Info("catalogUsecase.ListDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	return result, nil
}

func (uc *catalogUsecase) CreateProduct(ctx context.Context, request *requests.CreateProductRequest) (*responses.Product, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.CreateProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	unitPriceCents, err := utils.ParseDisplayPrice(request.DisplayPrice)
	if err != nil {
		uc.Log.Error("catalogUsecase.CreateProduct error parsing display price",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseDisplayPrice(err)
	}

	product := &models.Product{
		ID:             uuid.NewString(),
		Name:           request.Name,
		Category:       request.Category,
		UnitPriceCents: unitPriceCents,
		DisplayPrice:   utils.FormatDisplayPrice(unitPriceCents),
		CreatedAt:      time.Now().UTC(),
	}

	if request.ImageBase64 != "" {
		imageData, decodeErr := base64.StdEncoding.DecodeString(request.ImageBase64)
		if decodeErr != nil {
			return nil, exceptions.ErrInputValidation(decodeErr)
		}
		fileName := utils.GenerateFileName("product", product.ID, request.ImageExtension)
		objectName, uploadErr := uc.Storage.UploadBase64Image(ctx, imageData, uc.InternalConfig.Minio.BucketName, fileName, request.ImageExtension)
		if uploadErr != nil {
			uc.Log.Error("catalogUsecase.CreateProduct error uploading image",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(uploadErr),
			)
			return nil, uploadErr
		}
		product.ImageRef = objectName
	}

	inserted, err := uc.ProductRepository.Insert(ctx, product)
	if err != nil {
		uc.Log.Error("catalogUsecase.CreateProduct error calling ProductRepository.Insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("catalogUsecase.CreateProduct succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, inserted.ID),
	)
	return &responses.Product{
		ID:           inserted.ID,
		Name:         inserted.Name,
		Category:     inserted.Category,
		DisplayPrice: inserted.DisplayPrice,
	}, nil
}

func (uc *catalogUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctorRequest) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstitutionIDKey, request.InstitutionID),
	)

	doctor := &models.Doctor{
		ID:             uuid.NewString(),
		Name:           request.Name,
		Specialization: request.Specialization,
		InstitutionID:  request.InstitutionID,
	}

	inserted, err := uc.DoctorRepository.Insert(ctx, doctor)
	if err != nil {
		uc.Log.Error("catalogUsecase.CreateDoctor error calling DoctorRepository.Insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("catalogUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, inserted.ID),
	)
	return &responses.Doctor{
		ID:             inserted.ID,
		Name:           inserted.Name,
		Specialization: inserted.Specialization,
		InstitutionID:  inserted.InstitutionID,
	}, nil
}
