package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pembukuan/internal/models"
)

// ReferenceHandler serves the fixed value lists forms are built from.
type ReferenceHandler struct {
	ownerScoping bool
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(ownerScoping bool) *ReferenceHandler {
	return &ReferenceHandler{ownerScoping: ownerScoping}
}

// ReferenceResponse lists the accepted kinds, categories and owners.
type ReferenceResponse struct {
	Kinds        []models.Kind     `json:"kinds"`
	Categories   []models.Category `json:"categories"`
	Owners       []models.Owner    `json:"owners"`
	AllOwners    string            `json:"all_owners"`
	OwnerScoping bool              `json:"owner_scoping"`
}

// GetReference handles the reference data request
// @Summary     Reference data
// @Description Kinds, categories and owners in display order, and whether owner scoping is enabled
// @Tags        reference
// @Produce     json
// @Success     200 {object} ReferenceResponse "Reference data"
// @Router      /reference [get]
func (h *ReferenceHandler) GetReference(c *gin.Context) {
	resp := ReferenceResponse{
		Kinds:        models.Kinds,
		Categories:   models.Categories,
		Owners:       []models.Owner{},
		AllOwners:    models.AllOwnersLabel,
		OwnerScoping: h.ownerScoping,
	}
	if h.ownerScoping {
		resp.Owners = models.Owners
	}
	c.JSON(http.StatusOK, resp)
}
