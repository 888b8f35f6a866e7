package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
)

const schedulesCollection = "work_schedule"

type ScheduleRepository struct {
	coll *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{coll: db.Collection(schedulesCollection)}
}

type scheduleDoc struct {
	ID         string    `bson:"_id"`
	ProjectID  string    `bson:"project_id"`
	EmployeeID string    `bson:"employee_id,omitempty"`
	Task       string    `bson:"task"`
	StartDate  time.Time `bson:"start_date"`
	EndDate    time.Time `bson:"end_date"`
	Status     string    `bson:"status"`
}

func (d scheduleDoc) toDomain() domain.ScheduleTask {
	return domain.ScheduleTask{
		ID:         d.ID,
		ProjectID:  d.ProjectID,
		EmployeeID: d.EmployeeID,
		Task:       d.Task,
		StartDate:  d.StartDate.UTC(),
		EndDate:    d.EndDate.UTC(),
		Status:     domain.TaskStatus(d.Status),
	}
}

func fromSchedule(t *domain.ScheduleTask) scheduleDoc {
	return scheduleDoc{
		ID:         t.ID,
		ProjectID:  t.ProjectID,
		EmployeeID: t.EmployeeID,
		Task:       t.Task,
		StartDate:  t.StartDate,
		EndDate:    t.EndDate,
		Status:     string(t.Status),
	}
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*domain.ScheduleTask, error) {
	var doc scheduleDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("find schedule task: %w", err)
	}
	t := doc.toDomain()
	return &t, nil
}

func (r *ScheduleRepository) List(ctx context.Context, opts ports.ListOptions) ([]domain.ScheduleTask, error) {
	filter := bson.M{}
	if opts.Keyword != "" {
		rx := keywordRegex(opts.Keyword)
		filter["$or"] = bson.A{
			bson.M{"task": rx},
			bson.M{"status": rx},
			bson.M{"project_id": rx},
		}
	}

	findOpts := options.Find()
	allowed := map[string]string{
		"task":       "task",
		"status":     "status",
		"start_date": "start_date",
		"end_date":   "end_date",
	}
	if key, ok := sortKey(opts.SortField, allowed); ok {
		findOpts.SetSort(bson.D{{Key: key, Value: sortDirection(opts.SortDesc)}})
	}

	cur, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list schedule tasks: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.ScheduleTask
	for cur.Next(ctx) {
		var doc scheduleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode schedule task: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *ScheduleRepository) Create(ctx context.Context, t *domain.ScheduleTask) error {
	if _, err := r.coll.InsertOne(ctx, fromSchedule(t)); err != nil {
		return fmt.Errorf("insert schedule task: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) Update(ctx context.Context, t *domain.ScheduleTask) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": t.ID}, fromSchedule(t))
	if err != nil {
		return fmt.Errorf("update schedule task: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete schedule task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}
