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

const estimatesCollection = "estimates"

type EstimateRepository struct {
	coll *mongo.Collection
}

func NewEstimateRepository(db *mongo.Database) *EstimateRepository {
	return &EstimateRepository{coll: db.Collection(estimatesCollection)}
}

type estimateDoc struct {
	ID               string    `bson:"_id"`
	ProjectID        string    `bson:"project_id"`
	ExpenseItem      string    `bson:"expense_item"`
	UnitsMeasurement string    `bson:"units_measurement"`
	Amount           float64   `bson:"amount"`
	Price            float64   `bson:"price"`
	RecordDate       time.Time `bson:"record_date"`
}

func (d estimateDoc) toDomain() domain.Estimate {
	return domain.Estimate{
		ID:               d.ID,
		ProjectID:        d.ProjectID,
		ExpenseItem:      d.ExpenseItem,
		UnitsMeasurement: d.UnitsMeasurement,
		Amount:           d.Amount,
		Price:            d.Price,
		RecordDate:       d.RecordDate.UTC(),
	}
}

func fromEstimate(e *domain.Estimate) estimateDoc {
	return estimateDoc{
		ID:               e.ID,
		ProjectID:        e.ProjectID,
		ExpenseItem:      e.ExpenseItem,
		UnitsMeasurement: e.UnitsMeasurement,
		Amount:           e.Amount,
		Price:            e.Price,
		RecordDate:       e.RecordDate,
	}
}

func (r *EstimateRepository) FindByID(ctx context.Context, id string) (*domain.Estimate, error) {
	var doc estimateDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEstimateNotFound
		}
		return nil, fmt.Errorf("find estimate: %w", err)
	}
	e := doc.toDomain()
	return &e, nil
}

func (r *EstimateRepository) List(ctx context.Context, opts ports.ListOptions) ([]domain.Estimate, error) {
	filter := bson.M{}
	if opts.Keyword != "" {
		rx := keywordRegex(opts.Keyword)
		filter["$or"] = bson.A{
			bson.M{"expense_item": rx},
			bson.M{"units_measurement": rx},
			bson.M{"project_id": rx},
		}
	}

	findOpts := options.Find()
	allowed := map[string]string{
		"expense_item": "expense_item",
		"amount":       "amount",
		"price":        "price",
		"record_date":  "record_date",
	}
	if key, ok := sortKey(opts.SortField, allowed); ok {
		findOpts.SetSort(bson.D{{Key: key, Value: sortDirection(opts.SortDesc)}})
	}

	cur, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list estimates: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Estimate
	for cur.Next(ctx) {
		var doc estimateDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode estimate: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *EstimateRepository) Create(ctx context.Context, e *domain.Estimate) error {
	if _, err := r.coll.InsertOne(ctx, fromEstimate(e)); err != nil {
		return fmt.Errorf("insert estimate: %w", err)
	}
	return nil
}

func (r *EstimateRepository) Update(ctx context.Context, e *domain.Estimate) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": e.ID}, fromEstimate(e))
	if err != nil {
		return fmt.Errorf("update estimate: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEstimateNotFound
	}
	return nil
}

func (r *EstimateRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete estimate: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEstimateNotFound
	}
	return nil
}
