package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Index(c *ginext.Context)
	ListLands(c *ginext.Context)
	CreateLand(c *ginext.Context)
	UpdateLandStatus(c *ginext.Context)
	ListForms(c *ginext.Context)
	SubmitForm(c *ginext.Context)
}

func InitRouter(mode, templates string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Lands
		api.GET("/lands", h.ListLands)
		api.POST("/lands", h.CreateLand)
		api.PATCH("/lands/:id/status", h.UpdateLandStatus)

		// Booking forms
		api.GET("/forms", h.ListForms)
		api.POST("/forms", h.SubmitForm)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	router.LoadHTMLGlob(templates)
	router.GET("/", h.Index)

	return router
}
