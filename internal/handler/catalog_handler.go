package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/bank"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/response"
)

// CatalogHandler serves the static branch and bank catalogs.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Banks godoc
// GET /api/v1/catalog/banks
// Lists the built-in question banks.
func (h *CatalogHandler) Banks(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"banks": bank.Catalog()})
}

// Branches godoc
// GET /api/v1/catalog/branches
// Lists the engineering branches.
func (h *CatalogHandler) Branches(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"branches": bank.Branches()})
}

// Subjects godoc
// GET /api/v1/catalog/branches/:branch/subjects
// Returns the year-to-subjects map for a branch.
func (h *CatalogHandler) Subjects(c *gin.Context) {
	subjects, ok := bank.Subjects(c.Param("branch"))
	if !ok {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"years":    bank.YearKeys,
		"subjects": subjects,
	})
}
