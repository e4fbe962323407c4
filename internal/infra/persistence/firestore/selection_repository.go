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

// selectionRepository keeps one document per user and day, keyed day_userId
type selectionRepository struct {
	client *firestore.Client
}

// NewSelectionRepository creates a Firestore backed SelectionRepository
func NewSelectionRepository(client *firestore.Client) repository.SelectionRepository {
	return &selectionRepository{client: client}
}

func (r *selectionRepository) SaveSelection(ctx context.Context, selection *entity.Selection) error {
	_, err := r.client.Collection(selectionsCollection).Doc(selection.Key()).Set(ctx, fromSelectionDomain(selection))

	return errors.Wrap(err, "failed to save selection")
}

func (r *selectionRepository) FindSelection(ctx context.Context, userID, day string) (*entity.Selection, error) {
	key := (&entity.Selection{UserID: userID, Day: day}).Key()

	snapshot, err := r.client.Collection(selectionsCollection).Doc(key).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrSelectionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read selection")
	}

	var doc selectionDocument
	if err := snapshot.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode selection")
	}

	return doc.toDomain(), nil
}
