package user

import (
	"context"

	"github.com/F1oxyz/coffe-cat-cop/internal/docstore"
	"github.com/F1oxyz/coffe-cat-cop/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Users are keyed by email so duplicate registration is detectable with a
// single lookup.
const usersCollection = "users"

type Repository interface {
	Create(ctx context.Context, email, passwordHash string) (Identity, error)
	// FindByEmail returns the identity and its stored password hash.
	FindByEmail(ctx context.Context, email string) (Identity, string, error)
}

type repository struct {
	store docstore.Store
}

func NewRepository(store docstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Create(ctx context.Context, email, passwordHash string) (Identity, error) {
	log := logger.FromCtx(ctx)

	if _, err := r.store.Get(ctx, usersCollection, email); err == nil {
		return Identity{}, ErrEmailExists
	} else if err != docstore.ErrNotFound {
		return Identity{}, err
	}

	id := Identity{UID: uuid.NewString(), Email: email}
	doc := docstore.Document{
		"uid":          id.UID,
		"email":        id.Email,
		"passwordHash": passwordHash,
	}

	if err := r.store.Create(ctx, usersCollection, email, doc); err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", email),
			zap.Error(err),
		)
		return Identity{}, err
	}

	return id, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (Identity, string, error) {
	rec, err := r.store.Get(ctx, usersCollection, email)
	if err != nil {
		return Identity{}, "", err
	}

	uid, _ := rec.Doc["uid"].(string)
	hash, _ := rec.Doc["passwordHash"].(string)
	if uid == "" || hash == "" {
		return Identity{}, "", docstore.ErrNotFound
	}

	return Identity{UID: uid, Email: email}, hash, nil
}
