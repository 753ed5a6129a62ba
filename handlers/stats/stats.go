package stats

import (
	"net/http"

	"github.com/Arjunnair2005/dasG/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// Get computes the dashboard aggregates. Each figure comes from its own
// query, so under concurrent writes the four numbers may not reconcile.
func (h *Handler) Get(c *gin.Context) {
	var totalStudents int64
	if err := h.DB.Model(&models.Student{}).Count(&totalStudents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	var totalCollected float64
	if err := h.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalCollected).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	var defaulters int64
	if err := h.DB.Model(&models.Student{}).
		Where("total_dues > 0").
		Count(&defaulters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	var totalInvoices int64
	if err := h.DB.Model(&models.FeeStructure{}).Count(&totalInvoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_students":  totalStudents,
		"total_collected": totalCollected,
		"defaulters":      defaulters,
		"total_invoices":  totalInvoices,
	})
}
