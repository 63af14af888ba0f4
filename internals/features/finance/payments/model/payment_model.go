package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusExpired  PaymentStatus = "EXPIRED"
	PaymentStatusCanceled PaymentStatus = "CANCELED"
)

// PaymentModel is one fee invoice raised against a student. Hall-ticket
// eligibility blocks on the existence of PENDING rows.
type PaymentModel struct {
	// PK
	PaymentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:payment_id" json:"payment_id"`

	// FK
	PaymentStudentID uuid.UUID `gorm:"type:uuid;not null;column:payment_student_id;index:idx_payment_student" json:"payment_student_id"`

	// Invoice
	PaymentPurpose string `gorm:"type:varchar(80);not null;column:payment_purpose" json:"payment_purpose"`
	PaymentAmount  int64  `gorm:"not null;column:payment_amount" json:"payment_amount"`
	PaymentOrderID string `gorm:"type:varchar(64);not null;uniqueIndex;column:payment_order_id" json:"payment_order_id"`

	// Lifecycle
	PaymentStatus PaymentStatus `gorm:"type:varchar(16);not null;default:'PENDING';column:payment_status;index:idx_payment_status" json:"payment_status"`
	PaymentPaidAt *time.Time    `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	// Raw gateway notification, kept for audit
	PaymentGatewayPayload datatypes.JSON `gorm:"type:jsonb;column:payment_gateway_payload" json:"payment_gateway_payload,omitempty"`

	// Timestamps
	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
