package controllers

import (
	"net/http"

	"Gin_postgres_redis_share_it/app"
	"Gin_postgres_redis_share_it/services"

	"github.com/gin-gonic/gin"
)

type ItemController struct{ *Srv }

func NewItemController(s *Srv) *ItemController { return &ItemController{Srv: s} }

func (ic *ItemController) Create(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	var in services.ItemCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	view, err := ic.Items.Register(c.Request.Context(), uid, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (ic *ItemController) Update(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var patch services.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	view, err := ic.Items.Update(c.Request.Context(), uid, itemID, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (ic *ItemController) GetByID(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	view, err := ic.Items.GetByID(c.Request.Context(), uid, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (ic *ItemController) ListForOwner(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	from, size, ok := pagingParams(c)
	if !ok {
		return
	}
	views, err := ic.Items.ListForOwner(c.Request.Context(), uid, from, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (ic *ItemController) Search(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	from, size, ok := pagingParams(c)
	if !ok {
		return
	}
	views, err := ic.Items.Search(c.Request.Context(), uid, c.Query("text"), from, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (ic *ItemController) AddComment(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var in services.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	view, err := ic.Items.AddComment(c.Request.Context(), uid, itemID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}
