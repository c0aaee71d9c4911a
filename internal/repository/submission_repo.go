package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pulsesurvey/internal/model"
)

// SubmissionFilter narrows a submission query. Zero-value fields are not
// applied, so the empty filter means "all".
type SubmissionFilter struct {
	OrganizationID string
	SurveyTypeID   string
}

// SubmissionRepo handles MongoDB operations for survey submissions
type SubmissionRepo interface {
	Create(ctx context.Context, submission *model.Submission) error
	GetByID(ctx context.Context, id string) (*model.Submission, error)
	Find(ctx context.Context, filter SubmissionFilter) ([]*model.Submission, error)
}

type submissionRepo struct {
	collection *mongo.Collection
}

// NewSubmissionRepo creates a new submission repository
func NewSubmissionRepo(db *mongo.Database) SubmissionRepo {
	return &submissionRepo{
		collection: db.Collection("submissions"),
	}
}

func (r *submissionRepo) Create(ctx context.Context, submission *model.Submission) error {
	if submission.CompletedAt.IsZero() {
		submission.CompletedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, submission)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		submission.ID = oid.Hex()
	}
	return nil
}

func (r *submissionRepo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var submission model.Submission
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&submission)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepo) Find(ctx context.Context, filter SubmissionFilter) ([]*model.Submission, error) {
	query := bson.M{}
	if filter.OrganizationID != "" {
		query["organizationId"] = filter.OrganizationID
	}
	if filter.SurveyTypeID != "" {
		query["surveyTypeId"] = filter.SurveyTypeID
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []*model.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}
