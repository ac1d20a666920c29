// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tutortrack/internal/delivery/http/middleware"
	"tutortrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	TutorHandler   *handler.TutorHandler
	BookingHandler *handler.BookingHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	tutorHandler   *handler.TutorHandler
	bookingHandler *handler.BookingHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		tutorHandler:   params.TutorHandler,
		bookingHandler: params.BookingHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. The
// path layout mirrors the public API contract; gated routes take the
// auth middleware per-route because public and gated endpoints share
// path prefixes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	gate := r.authMiddleware.Authenticate

	// Liveness endpoint
	e.GET("/", handler.HealthCheck)

	// Credential issuance and logout
	e.POST("/jwt", r.authHandler.IssueToken)
	e.POST("/logout", r.authHandler.Logout)

	// Tutor listings
	e.GET("/allTutors", r.tutorHandler.ListTutors)
	e.GET("/allTutors/:id", r.tutorHandler.GetTutor)
	e.GET("/allTutors/lang/:lang", r.tutorHandler.ListTutorsByLanguage)
	e.POST("/allTutors", r.tutorHandler.CreateTutor, gate)
	e.GET("/my-tutorials/:email", r.tutorHandler.ListMyTutorials, gate)
	e.GET("/my-added-tutorial/:id", r.tutorHandler.GetMyTutorial, gate)
	e.PUT("/update-tutorials/:id", r.tutorHandler.UpdateTutor, gate)
	e.PATCH("/increase-reviews/:id", r.tutorHandler.IncreaseReviews)
	e.DELETE("/my-tutorials/:id", r.tutorHandler.DeleteTutor, gate)

	// Booked tutors
	e.GET("/booked-tutors", r.bookingHandler.ListBookings, gate)
	e.GET("/booked-tutors/:email", r.bookingHandler.ListMyBookings, gate)
	e.POST("/booked-tutors", r.bookingHandler.CreateBooking)
	e.PATCH("/booked-tutors/:id", r.bookingHandler.SetReview)

	// Registered users
	e.GET("/register-user/:email", r.userHandler.GetUser)
	e.GET("/register-user", r.userHandler.GetMyProfile, gate)
	e.POST("/registerUsers", r.userHandler.RegisterUser)
}
