package routes

import (
	"Gin_postgres_redis_share_it/app"
	"Gin_postgres_redis_share_it/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	userCtl := controllers.NewUserController(s)
	itemCtl := controllers.NewItemController(s)
	bookingCtl := controllers.NewBookingController(s)
	requestCtl := controllers.NewRequestController(s)

	identityMW := app.RequireUserID()

	// ------------------------------
	// Users (no identity header — this IS the identity registry)
	// ------------------------------
	users := r.Group("/users")
	{
		users.GET("", userCtl.List)
		users.POST("", userCtl.Create)
		users.GET("/:userId", userCtl.GetByID)
		users.PATCH("/:userId", userCtl.Update)
		users.DELETE("/:userId", userCtl.Delete)
	}

	// ------------------------------
	// Items
	// ------------------------------
	items := r.Group("/items", identityMW)
	{
		items.POST("", itemCtl.Create)
		items.PATCH("/:itemId", itemCtl.Update)
		items.GET("/search", itemCtl.Search) // ?text=&from=&size=
		items.GET("/:itemId", itemCtl.GetByID)
		items.GET("", itemCtl.ListForOwner)
		items.POST("/:itemId/comment", itemCtl.AddComment)
	}

	// ------------------------------
	// Bookings
	// ------------------------------
	bookings := r.Group("/bookings", identityMW)
	{
		bookings.POST("", bookingCtl.Create)
		bookings.PATCH("/:bookingId", bookingCtl.Approve) // ?approved=true|false
		bookings.GET("/owner", bookingCtl.GetForOwner)    // ?state=&from=&size=
		bookings.GET("/:bookingId", bookingCtl.GetByID)
		bookings.GET("", bookingCtl.GetForBooker)
	}

	// ------------------------------
	// Item requests
	// ------------------------------
	requests := r.Group("/requests", identityMW)
	{
		requests.POST("", requestCtl.Create)
		requests.GET("", requestCtl.ListOwn)
		requests.GET("/all", requestCtl.ListOthers) // ?from=&size=
		requests.GET("/:requestId", requestCtl.GetByID)
	}
}
