// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lunchradar/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RestaurantHandler *handler.RestaurantHandler
	LikeHandler       *handler.LikeHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	restaurantHandler *handler.RestaurantHandler
	likeHandler       *handler.LikeHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		restaurantHandler: params.RestaurantHandler,
		likeHandler:       params.LikeHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes
	restaurantsGroup := e.Group("/restaurants")
	{
		restaurantsGroup.GET("", r.restaurantHandler.ListNearby)
		restaurantsGroup.GET("/:id", r.restaurantHandler.Get)
		restaurantsGroup.GET("/:id/qrcode", r.restaurantHandler.QRCode)
	}

	// Per-user likes and daily selection
	usersGroup := e.Group("/users/:userId")
	{
		usersGroup.PUT("/likes/:restaurantId", r.likeHandler.PutLike)
		usersGroup.DELETE("/likes/:restaurantId", r.likeHandler.DeleteLike)
		usersGroup.GET("/likes/:restaurantId", r.likeHandler.GetLike)
		usersGroup.PUT("/selection", r.likeHandler.PutSelection)
		usersGroup.GET("/selection", r.likeHandler.GetSelection)
	}
}
