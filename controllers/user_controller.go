package controllers

import (
	"net/http"

	"Gin_postgres_redis_share_it/app"
	"Gin_postgres_redis_share_it/services"

	"github.com/gin-gonic/gin"
)

type UserController struct{ *Srv }

func NewUserController(s *Srv) *UserController { return &UserController{Srv: s} }

func (uc *UserController) Create(c *gin.Context) {
	var in services.UserCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	view, err := uc.Users.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (uc *UserController) Update(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var patch services.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	view, err := uc.Users.Update(c.Request.Context(), userID, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (uc *UserController) GetByID(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	view, err := uc.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (uc *UserController) List(c *gin.Context) {
	views, err := uc.Users.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (uc *UserController) Delete(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := uc.Users.Delete(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
