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

const usersCollection = "users"

// CredentialRepository persists user accounts in MongoDB. Login uniqueness
// is guaranteed by the unique index created in EnsureIndexes.
type CredentialRepository struct {
	coll *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	Login        string `bson:"login"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
}

func (d userDoc) toDomain() domain.Credential {
	return domain.Credential{Login: d.Login, PasswordHash: d.PasswordHash, Role: domain.Role(d.Role)}
}

func (r *CredentialRepository) FindByLogin(ctx context.Context, login string) (*domain.Credential, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"login": login}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	cred := doc.toDomain()
	return &cred, nil
}

func (r *CredentialRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"login": login})
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

func (r *CredentialRepository) List(ctx context.Context, opts ports.ListOptions) ([]domain.Credential, error) {
	filter := bson.M{}
	if opts.Keyword != "" {
		rx := keywordRegex(opts.Keyword)
		filter["$or"] = bson.A{bson.M{"login": rx}, bson.M{"role": rx}}
	}

	findOpts := options.Find()
	if key, ok := sortKey(opts.SortField, map[string]string{"login": "login", "role": "role"}); ok {
		findOpts.SetSort(bson.D{{Key: key, Value: sortDirection(opts.SortDesc)}})
	}

	cur, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Credential
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *CredentialRepository) Create(ctx context.Context, cred *domain.Credential) error {
	doc := userDoc{Login: cred.Login, PasswordHash: cred.PasswordHash, Role: string(cred.Role)}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *CredentialRepository) Update(ctx context.Context, cred *domain.Credential) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"login": cred.Login}, bson.M{"$set": bson.M{
		"password_hash": cred.PasswordHash,
		"role":          string(cred.Role),
	}})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *CredentialRepository) Delete(ctx context.Context, login string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"login": login})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
