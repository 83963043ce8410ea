package jobinfra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/talentgate/jobportal/pkg/kernel"
	"github.com/talentgate/jobportal/portal/job"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoJobRepository implements job.Repository on the "jobs" collection.
type MongoJobRepository struct {
	coll *mongo.Collection
}

// NewMongoJobRepository creates a new MongoDB job repository
func NewMongoJobRepository(db *mongo.Database) *MongoJobRepository {
	return &MongoJobRepository{
		coll: db.Collection("jobs"),
	}
}

// EnsureIndexes creates the unique sequential-ID index and the board's
// filter indexes.
func (r *MongoJobRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "experience", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create job indexes: %w", err)
	}
	return nil
}

// NextID reads the current maximum sequential ID and returns max+1, or 1
// when the collection is empty.
func (r *MongoJobRepository) NextID(ctx context.Context) (kernel.JobID, error) {
	var last struct {
		ID int64 `bson:"id"`
	}
	err := r.coll.FindOne(ctx, bson.D{},
		options.FindOne().
			SetSort(bson.D{{Key: "id", Value: -1}}).
			SetProjection(bson.D{{Key: "id", Value: 1}}),
	).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return kernel.NewJobID(1), nil
		}
		return 0, fmt.Errorf("failed to read max job id: %w", err)
	}
	return kernel.NewJobID(last.ID + 1), nil
}

// Create inserts a new posting document.
func (r *MongoJobRepository) Create(ctx context.Context, posting *job.Job) error {
	res, err := r.coll.InsertOne(ctx, posting)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return job.ErrDuplicateID().WithDetail("id", posting.ID.Int64())
		}
		return fmt.Errorf("failed to create job: %w", err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		posting.ObjectID = oid
	}
	return nil
}

// GetByID retrieves a posting by its sequential ID
func (r *MongoJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	var posting job.Job
	err := r.coll.FindOne(ctx, bson.D{{Key: "id", Value: id.Int64()}}).Decode(&posting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, job.ErrJobNotFound().WithDetail("id", id.Int64())
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &posting, nil
}

// Update replaces the posting document addressed by its sequential ID
func (r *MongoJobRepository) Update(ctx context.Context, posting *job.Job) error {
	res, err := r.coll.ReplaceOne(ctx,
		bson.D{{Key: "id", Value: posting.ID.Int64()}},
		posting,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return job.ErrJobNotFound().WithDetail("id", posting.ID.Int64())
	}
	return nil
}

// Delete removes a posting
func (r *MongoJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "id", Value: id.Int64()}})
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return job.ErrJobNotFound().WithDetail("id", id.Int64())
	}
	return nil
}

// SetStatus updates only the visibility status and update timestamp
func (r *MongoJobRepository) SetStatus(ctx context.Context, id kernel.JobID, status job.Status, updatedAt time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "id", Value: id.Int64()}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: status},
			{Key: "updated_at", Value: updatedAt},
		}}},
	)
	if err != nil {
		return fmt.Errorf("failed to set job status: %w", err)
	}
	if res.MatchedCount == 0 {
		return job.ErrJobNotFound().WithDetail("id", id.Int64())
	}
	return nil
}

// ListPublic returns active postings matching the filter, newest first
func (r *MongoJobRepository) ListPublic(ctx context.Context, filter job.PublicFilter) ([]job.Job, error) {
	query := bson.D{{Key: "status", Value: job.StatusActive}}
	if filter.Type != "" {
		query = append(query, bson.E{Key: "type", Value: filter.Type})
	}
	if filter.Experience != "" {
		query = append(query, bson.E{Key: "experience", Value: filter.Experience})
	}
	return r.list(ctx, query)
}

// ListAll returns every posting regardless of status, newest first
func (r *MongoJobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	return r.list(ctx, bson.D{})
}

func (r *MongoJobRepository) list(ctx context.Context, query bson.D) ([]job.Job, error) {
	cursor, err := r.coll.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	postings := make([]job.Job, 0)
	if err := cursor.All(ctx, &postings); err != nil {
		return nil, fmt.Errorf("failed to decode jobs: %w", err)
	}
	return postings, nil
}

// Count returns the total number of postings
func (r *MongoJobRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}
