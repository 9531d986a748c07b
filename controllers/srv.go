// controllers/srv.go
package controllers

import (
	"log"
	"net/http"
	"strconv"

	"Gin_postgres_redis_share_it/app"
	"Gin_postgres_redis_share_it/apperr"
	"Gin_postgres_redis_share_it/db"
	"Gin_postgres_redis_share_it/services"

	"github.com/gin-gonic/gin"
)

type Srv struct {
	Users    *services.UserService
	Items    *services.ItemService
	Bookings *services.BookingService
	Requests *services.RequestService
}

func GetSrv(a *app.App) *Srv {
	repo := db.NewRepo(a.DB)
	return &Srv{
		Users:    services.NewUserService(repo),
		Items:    services.NewItemService(repo, repo, repo, repo, repo),
		Bookings: services.NewBookingService(repo, repo, repo),
		Requests: services.NewRequestService(repo, repo, repo),
	}
}

// --- helpers ---

// respondError maps service error kinds to transport statuses. Forbidden
// rides on 404 so the wire does not reveal whether the entity exists.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindNotFound, apperr.KindForbidden:
		status = http.StatusNotFound
	case apperr.KindValidation, apperr.KindInvalidArgument:
		status = http.StatusBadRequest
	}
	log.Printf("request rejected: %v", err)
	c.JSON(status, app.H{"error": err.Error()})
}

func callerID(c *gin.Context) (int64, bool) {
	id, ok := app.CallerID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing caller identity"})
	}
	return id, ok
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// pagingParams reads ?from=&size= with the conventional defaults. Range
// checks live in the services; only non-numeric input fails here.
func pagingParams(c *gin.Context) (from, size int, ok bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid from"})
		return 0, 0, false
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid size"})
		return 0, 0, false
	}
	return from, size, true
}
