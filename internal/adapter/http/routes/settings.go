package routes

import (
	"stitchworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSettings = "/settings"
	PathReports  = "/reports"
)

func addSettingsRoutes(rg *gin.RouterGroup, settingsHandler *handlers.SettingsHandler, reportHandler *handlers.ReportHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("", settingsHandler.PutSettings)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/summary", reportHandler.GetSummary)
	}
}
