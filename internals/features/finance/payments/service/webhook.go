package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"vtop_backend/internals/features/finance/payments/model"
)

// HandlePaymentStatusWebhook is called on every Midtrans notification.
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Incomplete webhook payload:", body)
		return fmt.Errorf("invalid payload")
	}

	var payment model.PaymentModel
	if err := db.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		log.Println("[ERROR] Payment not found:", err)
		return fmt.Errorf("payment with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		payment.PaymentStatus = model.PaymentStatusPaid
		payment.PaymentPaidAt = &now
	case "expire":
		payment.PaymentStatus = model.PaymentStatusExpired
	case "cancel", "deny":
		payment.PaymentStatus = model.PaymentStatusCanceled
	default:
		log.Println("[INFO] Unhandled transaction status:", status)
		return nil
	}

	if raw, err := json.Marshal(body); err == nil {
		payment.PaymentGatewayPayload = datatypes.JSON(raw)
	}

	if err := db.Save(&payment).Error; err != nil {
		log.Println("[ERROR] Failed to persist payment status:", err)
		return err
	}

	log.Printf("[INFO] Payment %s -> %s", orderID, payment.PaymentStatus)
	return nil
}

// HasPendingPayments reports whether a student still owes anything. The
// eligibility check composes this with the attendance average.
func HasPendingPayments(db *gorm.DB, studentID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&model.PaymentModel{}).
		Where("payment_student_id = ? AND payment_status = ?", studentID, model.PaymentStatusPending).
		Count(&count).Error
	return count > 0, err
}
