package routes

import (
	"stitchworks/internal/events"

	"github.com/gin-gonic/gin"
)

const (
	PathEvents = "/events"
)

// addEventRoutes exposes the change feed over a websocket. Clients pick
// topics with repeated ?topics= query parameters.
func addEventRoutes(rg *gin.RouterGroup, hub *events.Hub) {
	rg.GET(PathEvents, hub.Serve)
}
