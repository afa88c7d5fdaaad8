package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tinnkaaa/booking-system/internal/admin"
	"go.uber.org/zap"
)

const (
	AdminPrefix = "/admin"
	OpenAPIPath = "/swagger/admin.json"
)

// Registrar is an entity handler that can be mounted on the admin.
type Registrar interface {
	Entity() admin.Entity
	Register(router *gin.RouterGroup)
}

type indexEntry struct {
	Name      string `json:"name"`
	Singular  string `json:"singular"`
	Plural    string `json:"plural"`
	URL       string `json:"url"`
	SchemaURL string `json:"schema_url"`
}

// NewRouter exposes exactly the given resources under /admin. Entities
// not passed here are not reachable.
func NewRouter(log *zap.Logger, resources ...Registrar) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), RequestLogger(log), gin.Recovery())

	group := router.Group(AdminPrefix)
	entities := make([]admin.Entity, 0, len(resources))
	index := make([]indexEntry, 0, len(resources))
	for _, r := range resources {
		e := r.Entity()
		r.Register(group.Group("/" + e.Name))
		entities = append(entities, e)
		index = append(index, indexEntry{
			Name:      e.Name,
			Singular:  e.Singular,
			Plural:    e.Plural,
			URL:       AdminPrefix + "/" + e.Name + "/",
			SchemaURL: AdminPrefix + "/" + e.Name + "/schema",
		})
	}

	group.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"entities": index})
	})

	doc := admin.OpenAPI(AdminPrefix, entities)
	router.GET(OpenAPIPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, doc)
	})

	return router
}
