package catalog

import (
	"context"
	"mediplant-service/internal/app/contracts"
	"mediplant-service/internal/app/models"
	"mediplant-service/internal/pkg/constvars"
	"mediplant-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) FindAll(ctx context.Context, institutionID string) ([]models.Doctor, error) {
	filter := bson.M{}
	if institutionID != "" {
		filter["institution_id"] = institutionID
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}

func (r *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, bson.M{"_id": doctorID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) Insert(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	_, err := r.Collection.InsertOne(ctx, doctor)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return doctor, nil
}
