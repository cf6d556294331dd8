package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/winecraft-backend/internal/app/service"
	"github.com/ikkim/winecraft-backend/internal/errors"
	"github.com/ikkim/winecraft-backend/internal/middleware"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetIngredients returns the configurator menu
// GET /api/v1/catalog/ingredients
func (ctrl *CatalogController) GetIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.catalogService.Ingredients(c.Request.Context()))
}

// GetOptions returns bottles, necklace accessories and fixed ranges
// GET /api/v1/catalog/options
func (ctrl *CatalogController) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.catalogService.Options())
}

// GET /api/v1/catalog/wines
func (ctrl *CatalogController) GetWines(c *gin.Context) {
	wines := ctrl.catalogService.Wines(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"wines": wines,
		"count": len(wines),
	})
}

// GET /api/v1/catalog/wines/:id
func (ctrl *CatalogController) GetWine(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		log.Warn("Invalid wine ID", map[string]interface{}{
			"wine_id": c.Param("id"),
		})
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid wine ID")
		return
	}

	wine, err := ctrl.catalogService.FindWine(c.Request.Context(), id)
	if err != nil {
		errors.ParseAndRespond(c, err, "find wine")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wine": wine,
	})
}
