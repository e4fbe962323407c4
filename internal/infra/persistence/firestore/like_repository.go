package firestore

import (
	"context"

	"lunchradar/internal/domain/entity"
	"lunchradar/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// likeRepository keeps one document per like, keyed userId_restaurantId
type likeRepository struct {
	client *firestore.Client
}

// NewLikeRepository creates a Firestore backed LikeRepository
func NewLikeRepository(client *firestore.Client) repository.LikeRepository {
	return &likeRepository{client: client}
}

func (r *likeRepository) SaveLike(ctx context.Context, like *entity.Like) error {
	_, err := r.client.Collection(likesCollection).Doc(like.Key()).Set(ctx, fromLikeDomain(like))

	return errors.Wrap(err, "failed to save like")
}

func (r *likeRepository) DeleteLike(ctx context.Context, userID, restaurantID string) error {
	_, err := r.client.Collection(likesCollection).Doc(entity.LikeKey(userID, restaurantID)).Delete(ctx)

	return errors.Wrap(err, "failed to delete like")
}

func (r *likeRepository) ExistsLike(ctx context.Context, userID, restaurantID string) (bool, error) {
	snapshot, err := r.client.Collection(likesCollection).Doc(entity.LikeKey(userID, restaurantID)).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to read like")
	}

	return snapshot.Exists(), nil
}
