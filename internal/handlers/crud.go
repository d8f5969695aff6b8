package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"person_registry/internal/models"
	"person_registry/internal/service"
)

// registerCrudRoutes mounts the five entity operations under path:
//
//	GET    path?filter=&page=   paged listing
//	GET    path/:id             fetch one
//	POST   path                 create
//	PUT    path/:id             whole-record replace
//	DELETE path/:id             remove, returns the removed record
func registerCrudRoutes[T any, P models.KeyedRef[T]](api *gin.RouterGroup, path string, h *Handler, svc service.Entity[T]) {
	g := api.Group(path)
	{
		g.GET("", func(c *gin.Context) { getPage(h, c, svc) })
		g.GET("/:id", func(c *gin.Context) { getByID(h, c, svc) })
		g.POST("", func(c *gin.Context) { create(h, c, svc) })
		g.PUT("/:id", func(c *gin.Context) { update[T, P](h, c, svc) })
		g.DELETE("/:id", func(c *gin.Context) { remove(h, c, svc) })
	}
}

// pathID parses the :id path parameter; on failure it writes a 400 and
// reports false.
func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.writeError(c, fmt.Errorf("%w: id must be an integer", models.ErrInvalidArgument), "bad_id_param")
		return 0, false
	}
	return id, true
}

func getPage[T any](h *Handler, c *gin.Context, svc service.Entity[T]) {
	page := 1
	if s := c.Query("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			h.writeError(c, fmt.Errorf("%w: page must be an integer", models.ErrInvalidArgument), "bad_page_param")
			return
		}
		page = v
	}

	result, err := svc.GetPage(c.Request.Context(), c.Query("filter"), page)
	if err != nil {
		h.writeError(c, err, "list_failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

func getByID[T any](h *Handler, c *gin.Context, svc service.Entity[T]) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	e, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "get_failed")
		return
	}
	c.JSON(http.StatusOK, e)
}

func create[T any](h *Handler, c *gin.Context, svc service.Entity[T]) {
	var e T
	if !h.bindJSONOrBadRequest(c, &e) {
		return
	}
	created, err := svc.Create(c.Request.Context(), &e)
	if err != nil {
		h.writeError(c, err, "create_failed")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func update[T any, P models.KeyedRef[T]](h *Handler, c *gin.Context, svc service.Entity[T]) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var e T
	if !h.bindJSONOrBadRequest(c, &e) {
		return
	}
	// The path identifies the record; the body cannot move it.
	P(&e).SetID(id)

	updated, err := svc.Update(c.Request.Context(), &e)
	if err != nil {
		h.writeError(c, err, "update_failed")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func remove[T any](h *Handler, c *gin.Context, svc service.Entity[T]) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	removed, err := svc.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "delete_failed")
		return
	}
	c.JSON(http.StatusOK, removed)
}
