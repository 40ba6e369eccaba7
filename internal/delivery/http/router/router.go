// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	FavoriteHandler *handler.FavoriteHandler
	NoteHandler     *handler.NoteHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	favoriteHandler *handler.FavoriteHandler
	noteHandler     *handler.NoteHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		favoriteHandler: params.FavoriteHandler,
		noteHandler:     params.NoteHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Signup/signin/signout are open; every other route requires a bearer token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	userGroup := api.Group("/users")
	{
		userGroup.POST("/signup", r.userHandler.SignUp)
		userGroup.POST("/signin", r.userHandler.SignIn)
		userGroup.POST("/signOut", r.userHandler.SignOut)
		userGroup.GET("/getAllUsers", r.userHandler.GetAllUsers, r.authMiddleware.Authenticate)
	}

	favoriteGroup := api.Group("/favorites")
	favoriteGroup.Use(r.authMiddleware.Authenticate)
	{
		favoriteGroup.POST("/addToFavorites", r.favoriteHandler.AddToFavorites)
		favoriteGroup.GET("/getFavorites", r.favoriteHandler.GetFavorites)
	}

	noteGroup := api.Group("/notes")
	noteGroup.Use(r.authMiddleware.Authenticate)
	{
		noteGroup.POST("/addNote", r.noteHandler.AddNote)
		noteGroup.GET("/getUserNotes", r.noteHandler.GetUserNotes)
		noteGroup.PUT("/updateNote", r.noteHandler.UpdateNote)
		noteGroup.DELETE("/deleteNote", r.noteHandler.DeleteNote)
	}
}
