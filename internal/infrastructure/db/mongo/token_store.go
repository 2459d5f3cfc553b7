package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
)

const sessionsCollection = "client_sessions"

// TokenStore persists the token pair as one document per client profile.
type TokenStore struct {
	coll    *mongo.Collection
	profile string
}

var _ ports.TokenStore = (*TokenStore)(nil)

func NewTokenStore(db *mongo.Database, profile string) *TokenStore {
	return &TokenStore{coll: db.Collection(sessionsCollection), profile: profile}
}

type sessionDoc struct {
	Profile      string `bson:"_id"`
	AccessToken  string `bson:"access_token"`
	RefreshToken string `bson:"refresh_token"`
	UpdatedAt    int64  `bson:"updated_at"`
}

func (s *TokenStore) Load(ctx context.Context) (domain.TokenPair, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc sessionDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": s.profile}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.TokenPair{}, nil
	}
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("mongo token load: %w", err)
	}
	return domain.TokenPair{AccessToken: doc.AccessToken, RefreshToken: doc.RefreshToken}, nil
}

// Save upserts the profile document so both tokens change in one write.
func (s *TokenStore) Save(ctx context.Context, tokens domain.TokenPair) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := sessionDoc{
		Profile:      s.profile,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		UpdatedAt:    time.Now().UTC().Unix(),
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": s.profile}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo token save: %w", err)
	}
	return nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": s.profile}); err != nil {
		return fmt.Errorf("mongo token clear: %w", err)
	}
	return nil
}
