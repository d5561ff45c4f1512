package controller

import (
	"studytrack_backend/internal/catalog"
	"studytrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the fixed curriculum reference data.
type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// ListModules godoc
// @Summary List every course module
// @Tags catalog
// @Produce  json
// @Success 200 {object} util.Response{data=[]catalog.Module}
// @Router /api/catalog/modules [get]
func (c *CatalogController) ListModules(ctx *gin.Context) {
	util.Success(ctx, catalog.Modules)
}

// ListCategories godoc
// @Summary List course categories with their module ranges
// @Tags catalog
// @Produce  json
// @Success 200 {object} util.Response{data=[]catalog.Category}
// @Router /api/catalog/categories [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	util.Success(ctx, catalog.Categories)
}

// ListAchievements godoc
// @Summary List every achievement definition
// @Tags catalog
// @Produce  json
// @Success 200 {object} util.Response{data=[]catalog.AchievementDef}
// @Router /api/catalog/achievements [get]
func (c *CatalogController) ListAchievements(ctx *gin.Context) {
	util.Success(ctx, catalog.Achievements)
}
