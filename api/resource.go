package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tinnkaaa/booking-system/internal/admin"
	"github.com/tinnkaaa/booking-system/internal/domain"
)

// Record is a stored entity as shown in admin lists.
type Record interface {
	fmt.Stringer
	PrimaryKey() int64
}

// Resource is the service behind one admin entity. I is the input
// accepted on create and on full-replacement update.
type Resource[T Record, I any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, in I) (*T, error)
	Update(ctx context.Context, id int64, in I) (*T, error)
	Delete(ctx context.Context, id int64) (domain.DeleteSummary, error)
}

type listItem struct {
	ID      int64  `json:"id"`
	Display string `json:"display"`
	Record  any    `json:"record"`
}

type deleteResponse struct {
	Deleted domain.DeleteSummary `json:"deleted"`
	Total   int64                `json:"total"`
}

type ResourceHandler[T Record, I any] struct {
	entity  admin.Entity
	service Resource[T, I]
	display func(context.Context, T) string
}

func NewResourceHandler[T Record, I any](entity admin.Entity, service Resource[T, I]) *ResourceHandler[T, I] {
	return &ResourceHandler[T, I]{entity: entity, service: service}
}

// WithDisplay replaces the record's String as its list label.
func (h *ResourceHandler[T, I]) WithDisplay(display func(context.Context, T) string) *ResourceHandler[T, I] {
	h.display = display
	return h
}

func (h *ResourceHandler[T, I]) Entity() admin.Entity {
	return h.entity
}

func (h *ResourceHandler[T, I]) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/schema", h.schema)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *ResourceHandler[T, I]) list(c *gin.Context) {
	ctx := c.Request.Context()
	records, err := h.service.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]listItem, 0, len(records))
	for _, r := range records {
		label := r.String()
		if h.display != nil {
			label = h.display(ctx, r)
		}
		items = append(items, listItem{ID: r.PrimaryKey(), Display: label, Record: r})
	}
	c.JSON(http.StatusOK, items)
}

func (h *ResourceHandler[T, I]) schema(c *gin.Context) {
	c.JSON(http.StatusOK, h.entity)
}

func (h *ResourceHandler[T, I]) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	record, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ResourceHandler[T, I]) create(c *gin.Context) {
	var in I
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	record, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *ResourceHandler[T, I]) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in I
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	record, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ResourceHandler[T, I]) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	summary, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deleteResponse{Deleted: summary, Total: summary.Total()})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
