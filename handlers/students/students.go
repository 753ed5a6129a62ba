package students

import (
	"net/http"
	"time"

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

// List returns every student with their current dues balance.
func (h *Handler) List(c *gin.Context) {
	var students []models.Student
	if err := h.DB.Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch students"})
		return
	}

	out := make([]gin.H, 0, len(students))
	for _, s := range students {
		out = append(out, gin.H{
			"id":         s.ID,
			"roll_no":    s.RollNo,
			"name":       s.Name,
			"course":     s.Course,
			"total_dues": s.TotalDues,
		})
	}

	c.JSON(http.StatusOK, out)
}

// Detail returns one student's profile along with their payment history,
// looked up by roll number.
func (h *Handler) Detail(c *gin.Context) {
	rollNo := c.Param("roll_no")

	var student models.Student
	if err := h.DB.Where("roll_no = ?", rollNo).First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var payments []models.Payment
	if err := h.DB.Where("student_id = ?", student.ID).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	history := make([]gin.H, 0, len(payments))
	for _, p := range payments {
		history = append(history, gin.H{
			"amount": p.Amount,
			"date":   p.PaymentDate.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"roll_no":    student.RollNo,
		"name":       student.Name,
		"course":     student.Course,
		"total_dues": student.TotalDues,
		"payments":   history,
	})
}
