package mongo

import (
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

const (
	collectionBrands   = "brands"
	collectionProducts = "products"
	collectionUsers    = "users"
)

// FixtureSource reads the startup data set from MongoDB. It is read once;
// nothing is ever written back.
type FixtureSource struct {
	db *mongo.Database
}

func NewFixtureSource(db *mongo.Database) *FixtureSource {
	return &FixtureSource{db: db}
}

type mongoUser struct {
	Login domain.Credentials `bson:"login"`
	Name  domain.PersonName  `bson:"name"`
	Email string             `bson:"email"`
	Cart  []bson.Raw         `bson:"cart"`
}

func (s *FixtureSource) Load(ctx context.Context) (*ports.Fixtures, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f ports.Fixtures
	if err := s.findAll(ctx, collectionBrands, &f.Brands); err != nil {
		return nil, err
	}
	if err := s.findAll(ctx, collectionProducts, &f.Products); err != nil {
		return nil, err
	}

	var docs []mongoUser
	if err := s.findAll(ctx, collectionUsers, &docs); err != nil {
		return nil, err
	}
	for _, doc := range docs {
		user, err := toDomainUser(doc)
		if err != nil {
			return nil, err
		}
		f.Users = append(f.Users, user)
	}
	return &f, nil
}

func (s *FixtureSource) findAll(ctx context.Context, collection string, out any) error {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("find %s: %w", collection, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// toDomainUser converts stored cart documents through relaxed extended JSON so
// that cart lines keep every client field, exactly as the JSON fixtures do.
func toDomainUser(doc mongoUser) (domain.User, error) {
	user := domain.User{Login: doc.Login, Name: doc.Name, Email: doc.Email, Cart: domain.Cart{}}
	for i, raw := range doc.Cart {
		data, err := bson.MarshalExtJSON(raw, false, false)
		if err != nil {
			return domain.User{}, fmt.Errorf("user %s: cart line %d: %w", doc.Login.Username, i, err)
		}
		var line domain.CartLine
		if err := json.Unmarshal(data, &line); err != nil {
			return domain.User{}, fmt.Errorf("user %s: cart line %d: %w", doc.Login.Username, i, err)
		}
		user.Cart = append(user.Cart, line)
	}
	return user, nil
}
