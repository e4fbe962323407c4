package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "lunchradar/internal/delivery/context"
	"lunchradar/internal/domain/entity"
	domainerrors "lunchradar/internal/domain/errors"
	"lunchradar/internal/domain/repository"
	"lunchradar/internal/domain/service"
	"lunchradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// likeService implements the LikeUsecase interface
type likeService struct {
	likeRepo      repository.LikeRepository
	selectionRepo repository.SelectionRepository
	catalog       usecase.CatalogUsecase
	publisher     service.EventPublisher
	logger        *slog.Logger
	now           func() time.Time

	// outstanding fire-and-forget writes
	writes sync.WaitGroup
	// writes to the same like or selection apply in call order
	queue *keyedQueue
}

// NewLikeService creates a new like service instance
func NewLikeService(
	likeRepo repository.LikeRepository,
	selectionRepo repository.SelectionRepository,
	catalog usecase.CatalogUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.LikeUsecase {
	return &likeService{
		likeRepo:      likeRepo,
		selectionRepo: selectionRepo,
		catalog:       catalog,
		publisher:     publisher,
		logger:        logger,
		now:           time.Now,
		queue:         newKeyedQueue(),
	}
}

// RecordLike stores the like in the background
func (s *likeService) RecordLike(ctx context.Context, userID, restaurantID string) error {
	if err := validateLikeInput(userID, restaurantID); err != nil {
		return err
	}

	like := &entity.Like{
		UserID:       userID,
		RestaurantID: restaurantID,
		CreatedAt:    s.now().UTC(),
	}

	s.write(ctx, "like:"+like.Key(), "record like", func(ctx context.Context) error {
		return s.likeRepo.SaveLike(ctx, like)
	}, &service.RestaurantEvent{
		Type:         service.EventLikeRecorded,
		UserID:       userID,
		RestaurantID: restaurantID,
	})

	return nil
}

// RemoveLike deletes the like in the background
func (s *likeService) RemoveLike(ctx context.Context, userID, restaurantID string) error {
	if err := validateLikeInput(userID, restaurantID); err != nil {
		return err
	}

	s.write(ctx, "like:"+entity.LikeKey(userID, restaurantID), "remove like", func(ctx context.Context) error {
		return s.likeRepo.DeleteLike(ctx, userID, restaurantID)
	}, &service.RestaurantEvent{
		Type:         service.EventLikeRemoved,
		UserID:       userID,
		RestaurantID: restaurantID,
	})

	return nil
}

// IsLiked reads the like asynchronously
func (s *likeService) IsLiked(ctx context.Context, userID, restaurantID string) <-chan usecase.Result[bool] {
	if err := validateLikeInput(userID, restaurantID); err != nil {
		return usecase.Failed[bool](err)
	}

	out := make(chan usecase.Result[bool], 1)
	go func() {
		defer close(out)

		liked, err := s.likeRepo.ExistsLike(ctx, userID, restaurantID)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to read like",
				slog.String("user_id", userID),
				slog.String("restaurant_id", restaurantID),
				slog.Any("error", err),
			)
			out <- usecase.Result[bool]{Err: errors.Wrap(err, "failed to read like")}

			return
		}
		out <- usecase.Result[bool]{Value: liked}
	}()

	return out
}

// RecordSelection stores today's pick in the background. Name and address are copied
// from the catalog when the restaurant is cached.
func (s *likeService) RecordSelection(ctx context.Context, userID, restaurantID string) error {
	if err := validateLikeInput(userID, restaurantID); err != nil {
		return err
	}

	now := s.now().UTC()
	selection := &entity.Selection{
		UserID:       userID,
		Day:          entity.SelectionDay(now),
		RestaurantID: restaurantID,
		UpdatedAt:    now,
	}
	if restaurant, ok := s.catalog.Lookup(restaurantID); ok {
		selection.RestaurantName = restaurant.Name
		selection.RestaurantAddress = restaurant.Address
	}

	s.write(ctx, "selection:"+selection.Key(), "record selection", func(ctx context.Context) error {
		return s.selectionRepo.SaveSelection(ctx, selection)
	}, &service.RestaurantEvent{
		Type:           service.EventSelectionRecorded,
		UserID:         userID,
		RestaurantID:   restaurantID,
		RestaurantName: selection.RestaurantName,
		Address:        selection.RestaurantAddress,
	})

	return nil
}

// Selection reads today's pick asynchronously
func (s *likeService) Selection(ctx context.Context, userID string) <-chan usecase.Result[*entity.Selection] {
	if strings.TrimSpace(userID) == "" {
		return usecase.Failed[*entity.Selection](domainerrors.ErrValidationFailed.WrapMessage("user id is required"))
	}

	day := entity.SelectionDay(s.now().UTC())
	out := make(chan usecase.Result[*entity.Selection], 1)
	go func() {
		defer close(out)

		selection, err := s.selectionRepo.FindSelection(ctx, userID, day)
		switch {
		case errors.Is(err, repository.ErrSelectionNotFound):
			out <- usecase.Result[*entity.Selection]{Err: domainerrors.ErrSelectionNotFound.WrapMessage(day)}
		case err != nil:
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to read selection",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
			out <- usecase.Result[*entity.Selection]{Err: errors.Wrap(err, "failed to read selection")}
		default:
			out <- usecase.Result[*entity.Selection]{Value: selection}
		}
	}()

	return out
}

// Drain waits for every outstanding write
func (s *likeService) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.writes.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "outstanding writes not drained")
	}
}

// write queues op behind earlier writes for key and runs it detached from the caller's
// cancellation. Failures are logged; event is published on success.
func (s *likeService) write(ctx context.Context, key, action string, op func(context.Context) error, event *service.RestaurantEvent) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	detached := context.WithoutCancel(ctx)

	event.EventID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = s.now().UTC()

	s.writes.Add(1)
	s.queue.enqueue(key, func() {
		defer s.writes.Done()

		if err := op(detached); err != nil {
			logger.Error("Failed to "+action,
				slog.String("user_id", event.UserID),
				slog.String("restaurant_id", event.RestaurantID),
				slog.Any("error", err),
			)

			return
		}

		if s.publisher == nil {
			return
		}
		if err := s.publisher.PublishRestaurantEvent(detached, event); err != nil {
			logger.Warn("Failed to publish restaurant event",
				slog.String("type", event.Type),
				slog.String("event_id", event.EventID),
				slog.Any("error", err),
			)
		}
	})
}

func validateLikeInput(userID, restaurantID string) error {
	if strings.TrimSpace(userID) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("user id is required")
	}
	if strings.TrimSpace(restaurantID) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("restaurant id is required")
	}

	return nil
}
