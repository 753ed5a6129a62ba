package utils

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/gomail.v2"
)

// SendReceiptEmail mails a payment receipt to the student. Best effort:
// skipped when the student has no email or SMTP is not configured, and
// failures are only logged.
func SendReceiptEmail(email, receiptNo string, amount, newBalance float64) {
	if email == "" || os.Getenv("SMTP_HOST") == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_SENDER"))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Payment Receipt "+receiptNo)
	m.SetBody("text/plain", fmt.Sprintf(
		"We have received your payment of %.2f.\nReceipt number: %s\nOutstanding dues: %.2f\n",
		amount, receiptNo, newBalance))

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		465,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASS"),
	)

	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send receipt email to %s: %v", email, err)
		return
	}

	log.Printf("Receipt email for %s sent to %s", receiptNo, email)
}
