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

const projectsCollection = "projects"

type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectsCollection)}
}

type projectDoc struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	Client        string    `bson:"client"`
	StartDate     time.Time `bson:"start_date"`
	EndDate       time.Time `bson:"end_date"`
	ResponsibleID string    `bson:"responsible_id,omitempty"`
	Budget        float64   `bson:"budget"`
}

func (d projectDoc) toDomain() domain.Project {
	return domain.Project{
		ID:            d.ID,
		Name:          d.Name,
		Client:        d.Client,
		StartDate:     d.StartDate.UTC(),
		EndDate:       d.EndDate.UTC(),
		ResponsibleID: d.ResponsibleID,
		Budget:        d.Budget,
	}
}

func fromProject(p *domain.Project) projectDoc {
	return projectDoc{
		ID:            p.ID,
		Name:          p.Name,
		Client:        p.Client,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		ResponsibleID: p.ResponsibleID,
		Budget:        p.Budget,
	}
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	var doc projectDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	p := doc.toDomain()
	return &p, nil
}

func (r *ProjectRepository) List(ctx context.Context, opts ports.ListOptions) ([]domain.Project, error) {
	filter := bson.M{}
	if opts.Keyword != "" {
		rx := keywordRegex(opts.Keyword)
		filter["$or"] = bson.A{bson.M{"name": rx}, bson.M{"client": rx}}
	}

	findOpts := options.Find()
	allowed := map[string]string{
		"name":       "name",
		"client":     "client",
		"start_date": "start_date",
		"end_date":   "end_date",
		"budget":     "budget",
	}
	if key, ok := sortKey(opts.SortField, allowed); ok {
		findOpts.SetSort(bson.D{{Key: key, Value: sortDirection(opts.SortDesc)}})
	}

	cur, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Project
	for cur.Next(ctx) {
		var doc projectDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	if _, err := r.coll.InsertOne(ctx, fromProject(p)); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, fromProject(p))
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}
