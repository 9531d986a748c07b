package controllers

import (
	"net/http"
	"strconv"

	"Gin_postgres_redis_share_it/app"
	"Gin_postgres_redis_share_it/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct{ *Srv }

func NewBookingController(s *Srv) *BookingController { return &BookingController{Srv: s} }

func (bc *BookingController) Create(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	var in services.BookingCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	view, err := bc.Bookings.Create(c.Request.Context(), uid, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (bc *BookingController) Approve(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "approved query parameter is required"})
		return
	}
	view, err := bc.Bookings.Approve(c.Request.Context(), uid, bookingID, approved)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (bc *BookingController) GetByID(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	view, err := bc.Bookings.GetByID(c.Request.Context(), uid, bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetForBooker lists the caller's own bookings. ?state= defaults to ALL.
func (bc *BookingController) GetForBooker(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	from, size, ok := pagingParams(c)
	if !ok {
		return
	}
	views, err := bc.Bookings.GetByBookerID(c.Request.Context(), uid, c.DefaultQuery("state", "ALL"), from, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetForOwner lists bookings on any item the caller owns.
func (bc *BookingController) GetForOwner(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	from, size, ok := pagingParams(c)
	if !ok {
		return
	}
	views, err := bc.Bookings.GetByOwnerID(c.Request.Context(), uid, c.DefaultQuery("state", "ALL"), from, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
