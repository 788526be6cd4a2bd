package controllers

import (
	"net/http"

	"github.com/aisyahz/tepico88/services"
	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Catalog *services.CatalogService
}

func NewMenuController(catalog *services.CatalogService) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GET /menu
// A failed read serves an empty list; the storefront degrades silently.
func (ctl *MenuController) List(c *gin.Context) {
	snap := ctl.Catalog.Load()
	c.JSON(http.StatusOK, gin.H{"items": snap.Items})
}

// GET /menu/grouped
func (ctl *MenuController) Grouped(c *gin.Context) {
	snap := ctl.Catalog.Load()
	c.JSON(http.StatusOK, gin.H{"groups": services.GroupByCategory(snap.Items)})
}
