package catalog

import (
	"context"
	"mediplant-service/internal/app/contracts"
	"mediplant-service/internal/app/models"
	"mediplant-service/internal/pkg/constvars"
	"mediplant-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductMongoRepository struct {
	Collection *mongo.Collection
}

func NewProductMongoRepository(db *mongo.Client, dbName string) contracts.ProductRepository {
	return &ProductMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProducts),
	}
}

func (r *ProductMongoRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return products, nil
}

func (r *ProductMongoRepository) FindByID(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	err := r.Collection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &product, nil
}

func (r *ProductMongoRepository) Insert(ctx context.Context, product *models.Product) (*models.Product, error) {
	_, err := r.Collection.InsertOne(ctx, product)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return product, nil
}
