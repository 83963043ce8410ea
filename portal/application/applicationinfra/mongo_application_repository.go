package applicationinfra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/talentgate/jobportal/pkg/kernel"
	"github.com/talentgate/jobportal/portal/application"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Field keys as stored in the collection.
const (
	fieldID        = "ID"
	fieldPosition  = "Position"
	fieldStatus    = "Status"
	fieldCreatedAt = "Created At"
	fieldUpdatedAt = "Updated At"
	fieldEmail     = "Email"
)

// MongoApplicationRepository implements application.Repository on the
// "applications" collection.
type MongoApplicationRepository struct {
	coll *mongo.Collection
}

// NewMongoApplicationRepository creates a new MongoDB application repository
func NewMongoApplicationRepository(db *mongo.Database) *MongoApplicationRepository {
	return &MongoApplicationRepository{
		coll: db.Collection("applications"),
	}
}

// EnsureIndexes creates the unique sequential-ID index and the secondary
// query indexes. The unique index is what makes the ID race safe.
func (r *MongoApplicationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: fieldID, Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: fieldEmail, Value: 1}}},
		{Keys: bson.D{{Key: fieldPosition, Value: 1}}},
		{Keys: bson.D{{Key: fieldStatus, Value: 1}}},
		{Keys: bson.D{{Key: fieldCreatedAt, Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create application indexes: %w", err)
	}
	return nil
}

// NextID reads the current maximum sequential ID and returns max+1, or 1
// when the collection is empty.
func (r *MongoApplicationRepository) NextID(ctx context.Context) (kernel.ApplicationID, error) {
	var last struct {
		ID int64 `bson:"ID"`
	}
	err := r.coll.FindOne(ctx, bson.D{},
		options.FindOne().
			SetSort(bson.D{{Key: fieldID, Value: -1}}).
			SetProjection(bson.D{{Key: fieldID, Value: 1}}),
	).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return kernel.NewApplicationID(1), nil
		}
		return 0, fmt.Errorf("failed to read max application id: %w", err)
	}
	return kernel.NewApplicationID(last.ID + 1), nil
}

// Create inserts a new application document.
func (r *MongoApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	res, err := r.coll.InsertOne(ctx, app)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return application.ErrDuplicateID().WithDetail("id", app.ID.Int64())
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		app.ObjectID = oid
	}
	return nil
}

// GetByID retrieves an application by its sequential ID
func (r *MongoApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	var app application.Application
	err := r.coll.FindOne(ctx, bson.D{{Key: fieldID, Value: id.Int64()}}).Decode(&app)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, application.ErrApplicationNotFound().WithDetail("id", id.Int64())
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// List retrieves applications matching the filter, descending by ID
func (r *MongoApplicationRepository) List(ctx context.Context, filter application.ListFilter) ([]application.Application, error) {
	query := bson.D{}
	if filter.Position != "" {
		query = append(query, bson.E{Key: fieldPosition, Value: filter.Position})
	}
	if filter.Status != "" {
		query = append(query, bson.E{Key: fieldStatus, Value: filter.Status})
	}

	cursor, err := r.coll.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: fieldID, Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	apps := make([]application.Application, 0)
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("failed to decode applications: %w", err)
	}
	return apps, nil
}

// UpdateStatus sets the status and update timestamp of one record
func (r *MongoApplicationRepository) UpdateStatus(ctx context.Context, id kernel.ApplicationID, status application.Status, updatedAt time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: fieldID, Value: id.Int64()}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: fieldStatus, Value: status},
			{Key: fieldUpdatedAt, Value: updatedAt},
		}}},
	)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if res.MatchedCount == 0 {
		return application.ErrApplicationNotFound().WithDetail("id", id.Int64())
	}
	return nil
}

// Delete removes an application record
func (r *MongoApplicationRepository) Delete(ctx context.Context, id kernel.ApplicationID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: fieldID, Value: id.Int64()}})
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if res.DeletedCount == 0 {
		return application.ErrApplicationNotFound().WithDetail("id", id.Int64())
	}
	return nil
}

// Count returns the total number of applications
func (r *MongoApplicationRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

// CountByPosition groups application counts by position
func (r *MongoApplicationRepository) CountByPosition(ctx context.Context) (map[string]int64, error) {
	return r.countGroupedBy(ctx, fieldPosition)
}

// CountByStatus groups application counts by stored status value
func (r *MongoApplicationRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countGroupedBy(ctx, fieldStatus)
}

func (r *MongoApplicationRepository) countGroupedBy(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by %s: %w", field, err)
	}

	var rows []struct {
		Key   string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode aggregation: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

// ListRecent returns the most recently created applications
func (r *MongoApplicationRepository) ListRecent(ctx context.Context, limit int) ([]application.Application, error) {
	cursor, err := r.coll.Find(ctx, bson.D{},
		options.Find().
			SetSort(bson.D{{Key: fieldCreatedAt, Value: -1}}).
			SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent applications: %w", err)
	}

	apps := make([]application.Application, 0, limit)
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("failed to decode recent applications: %w", err)
	}
	return apps, nil
}
