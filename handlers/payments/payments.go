package payments

import (
	"net/http"
	"time"

	"github.com/Arjunnair2005/dasG/models"
	"github.com/Arjunnair2005/dasG/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

type recordPaymentRequest struct {
	RollNo string  `json:"roll_no"`
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

// Record creates a payment against a student's balance. The payment insert
// and the dues decrement are committed in one transaction. The amount is
// taken as submitted; a negative amount increases the balance.
func (h *Handler) Record(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var student models.Student
	if err := h.DB.Where("roll_no = ?", req.RollNo).First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	payment := models.Payment{
		StudentID:   student.ID,
		Amount:      req.Amount,
		PaymentDate: time.Now(),
		Method:      req.Method,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		receiptNo, err := generateReceiptNo(tx)
		if err != nil {
			return err
		}
		payment.ReceiptNo = receiptNo

		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		student.TotalDues -= req.Amount
		return tx.Model(&models.Student{}).
			Where("id = ?", student.ID).
			Update("total_dues", student.TotalDues).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	go utils.SendReceiptEmail(student.Email, payment.ReceiptNo, payment.Amount, student.TotalDues)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"receipt_no":  payment.ReceiptNo,
		"new_balance": student.TotalDues,
	})
}

// generateReceiptNo builds a second-resolution receipt number. If another
// payment already claimed the same second, a short random suffix keeps the
// number unique.
func generateReceiptNo(tx *gorm.DB) (string, error) {
	receiptNo := "REC-" + time.Now().Format("20060102150405")

	var count int64
	if err := tx.Model(&models.Payment{}).Where("receipt_no = ?", receiptNo).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		receiptNo = receiptNo + "-" + uuid.NewString()[:8]
	}

	return receiptNo, nil
}

// Recent returns the 10 most recent payments, newest first, with the owning
// student's roll number and name joined in.
func (h *Handler) Recent(c *gin.Context) {
	var rows []struct {
		RollNo      string
		Name        string
		Amount      float64
		PaymentDate time.Time
	}

	err := h.DB.Table("payments").
		Select("students.roll_no, students.name, payments.amount, payments.payment_date").
		Joins("JOIN students ON students.id = payments.student_id").
		Order("payments.payment_date DESC, payments.id DESC").
		Limit(10).
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent payments"})
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"student_roll": row.RollNo,
			"student_name": row.Name,
			"amount":       row.Amount,
			"date":         row.PaymentDate.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, out)
}
