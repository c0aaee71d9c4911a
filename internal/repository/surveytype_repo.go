package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pulsesurvey/internal/model"
)

// SurveyTypeRepo handles MongoDB operations for survey type definitions
type SurveyTypeRepo interface {
	Create(ctx context.Context, surveyType *model.SurveyType) (string, error)
	GetByID(ctx context.Context, id string) (*model.SurveyType, error)
	List(ctx context.Context) ([]*model.SurveyType, error)
	Update(ctx context.Context, surveyType *model.SurveyType) error
	Delete(ctx context.Context, id string) error
}

type surveyTypeRepo struct {
	collection *mongo.Collection
}

// NewSurveyTypeRepo creates a new survey type repository
func NewSurveyTypeRepo(db *mongo.Database) SurveyTypeRepo {
	return &surveyTypeRepo{
		collection: db.Collection("survey_types"),
	}
}

func (r *surveyTypeRepo) Create(ctx context.Context, surveyType *model.SurveyType) (string, error) {
	result, err := r.collection.InsertOne(ctx, surveyType)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *surveyTypeRepo) GetByID(ctx context.Context, id string) (*model.SurveyType, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var surveyType model.SurveyType
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&surveyType)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	surveyType.ID = id
	return &surveyType, nil
}

func (r *surveyTypeRepo) List(ctx context.Context) ([]*model.SurveyType, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var surveyTypes []*model.SurveyType
	if err := cursor.All(ctx, &surveyTypes); err != nil {
		return nil, err
	}
	return surveyTypes, nil
}

func (r *surveyTypeRepo) Update(ctx context.Context, surveyType *model.SurveyType) error {
	oid, err := primitive.ObjectIDFromHex(surveyType.ID)
	if err != nil {
		return err
	}

	surveyType.Version++
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, surveyType)
	return err
}

func (r *surveyTypeRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
