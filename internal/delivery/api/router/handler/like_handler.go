package handler

import (
	"log/slog"
	"net/http"

	"lunchradar/internal/delivery/api/response"
	domainerrors "lunchradar/internal/domain/errors"
	"lunchradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LikeHandlerParams holds dependencies for LikeHandler, injected by Fx.
type LikeHandlerParams struct {
	fx.In

	LikeUC usecase.LikeUsecase
	Logger *slog.Logger
}

// LikeHandler serves per-user likes and daily selections
type LikeHandler struct {
	likeUC usecase.LikeUsecase
	logger *slog.Logger
}

// NewLikeHandler is the constructor for LikeHandler
func NewLikeHandler(params LikeHandlerParams) *LikeHandler {
	return &LikeHandler{
		likeUC: params.LikeUC,
		logger: params.Logger,
	}
}

// LikeTarget identifies a like by path parameters
type LikeTarget struct {
	UserID       string `param:"userId" validate:"required"`
	RestaurantID string `param:"restaurantId" validate:"required"`
}

// SelectionRequest represents the request body for recording today's pick
type SelectionRequest struct {
	UserID       string `param:"userId" validate:"required"`
	RestaurantID string `json:"restaurant_id" validate:"required"`
}

// LikeStatus is returned by GetLike
type LikeStatus struct {
	UserID       string `json:"user_id"`
	RestaurantID string `json:"restaurant_id"`
	Liked        bool   `json:"liked"`
}

func (h *LikeHandler) bindTarget(c echo.Context) (*LikeTarget, error) {
	var target LikeTarget
	if err := c.Bind(&target); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid path parameters")
	}
	if err := c.Validate(&target); err != nil {
		return nil, err
	}

	return &target, nil
}

// PutLike records a like; the write completes in the background
func (h *LikeHandler) PutLike(c echo.Context) error {
	target, err := h.bindTarget(c)
	if err != nil {
		return err
	}

	if err := h.likeUC.RecordLike(c.Request().Context(), target.UserID, target.RestaurantID); err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, LikeStatus{UserID: target.UserID, RestaurantID: target.RestaurantID, Liked: true})
}

// DeleteLike removes a like; the write completes in the background
func (h *LikeHandler) DeleteLike(c echo.Context) error {
	target, err := h.bindTarget(c)
	if err != nil {
		return err
	}

	if err := h.likeUC.RemoveLike(c.Request().Context(), target.UserID, target.RestaurantID); err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, LikeStatus{UserID: target.UserID, RestaurantID: target.RestaurantID})
}

// GetLike reports whether the user likes the restaurant
func (h *LikeHandler) GetLike(c echo.Context) error {
	target, err := h.bindTarget(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	liked, err := await(ctx, h.likeUC.IsLiked(ctx, target.UserID, target.RestaurantID))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, LikeStatus{UserID: target.UserID, RestaurantID: target.RestaurantID, Liked: liked})
}

// PutSelection records today's lunch pick; the write completes in the background
func (h *LikeHandler) PutSelection(c echo.Context) error {
	var req SelectionRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid selection input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.likeUC.RecordSelection(c.Request().Context(), req.UserID, req.RestaurantID); err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"user_id":       req.UserID,
		"restaurant_id": req.RestaurantID,
	})
}

// GetSelection returns today's lunch pick
func (h *LikeHandler) GetSelection(c echo.Context) error {
	ctx := c.Request().Context()
	selection, err := await(ctx, h.likeUC.Selection(ctx, c.Param("userId")))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, selection)
}
