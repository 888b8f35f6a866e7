package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
)

const employeesCollection = "employees"

type EmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{coll: db.Collection(employeesCollection)}
}

type employeeDoc struct {
	ID           string `bson:"_id"`
	FullName     string `bson:"full_name"`
	Position     string `bson:"position"`
	AccountLogin string `bson:"account_login,omitempty"`
}

func (d employeeDoc) toDomain() domain.Employee {
	return domain.Employee{ID: d.ID, FullName: d.FullName, Position: d.Position, AccountLogin: d.AccountLogin}
}

func fromEmployee(e *domain.Employee) employeeDoc {
	return employeeDoc{ID: e.ID, FullName: e.FullName, Position: e.Position, AccountLogin: e.AccountLogin}
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	var doc employeeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	e := doc.toDomain()
	return &e, nil
}

func (r *EmployeeRepository) List(ctx context.Context, opts ports.ListOptions) ([]domain.Employee, error) {
	filter := bson.M{}
	if opts.Keyword != "" {
		rx := keywordRegex(opts.Keyword)
		filter["$or"] = bson.A{
			bson.M{"full_name": rx},
			bson.M{"position": rx},
			bson.M{"account_login": rx},
		}
	}

	findOpts := options.Find()
	allowed := map[string]string{"full_name": "full_name", "position": "position", "login": "account_login"}
	if key, ok := sortKey(opts.SortField, allowed); ok {
		findOpts.SetSort(bson.D{{Key: key, Value: sortDirection(opts.SortDesc)}})
	}

	cur, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Employee
	for cur.Next(ctx) {
		var doc employeeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	if _, err := r.coll.InsertOne(ctx, fromEmployee(e)); err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": e.ID}, fromEmployee(e))
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) DeleteByAccountLogin(ctx context.Context, login string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"account_login": login}); err != nil {
		return fmt.Errorf("delete employee by account: %w", err)
	}
	return nil
}
