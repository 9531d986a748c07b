package controllers

import (
	"net/http"

	"Gin_postgres_redis_share_it/app"
	"Gin_postgres_redis_share_it/services"

	"github.com/gin-gonic/gin"
)

type RequestController struct{ *Srv }

func NewRequestController(s *Srv) *RequestController { return &RequestController{Srv: s} }

func (rc *RequestController) Create(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	var in services.RequestCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	view, err := rc.Requests.Create(c.Request.Context(), uid, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (rc *RequestController) ListOwn(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	views, err := rc.Requests.GetByRequester(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (rc *RequestController) ListOthers(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	from, size, ok := pagingParams(c)
	if !ok {
		return
	}
	views, err := rc.Requests.GetAll(c.Request.Context(), uid, from, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (rc *RequestController) GetByID(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}
	view, err := rc.Requests.GetByID(c.Request.Context(), uid, requestID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
