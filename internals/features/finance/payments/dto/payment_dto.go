package dto

import (
	"time"

	"github.com/google/uuid"

	"vtop_backend/internals/features/finance/payments/model"
)

type CreateInvoiceRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Purpose   string    `json:"purpose" validate:"required,max=80"`
	Amount    int64     `json:"amount" validate:"required,min=1"`
}

type PaymentResponse struct {
	PaymentID uuid.UUID           `json:"payment_id"`
	StudentID uuid.UUID           `json:"student_id"`
	Purpose   string              `json:"purpose"`
	Amount    int64               `json:"amount"`
	OrderID   string              `json:"order_id"`
	Status    model.PaymentStatus `json:"status"`
	PaidAt    *time.Time          `json:"paid_at,omitempty"`
	SnapToken string              `json:"snap_token,omitempty"`
}

func ToPaymentResponse(m *model.PaymentModel, snapToken string) PaymentResponse {
	return PaymentResponse{
		PaymentID: m.PaymentID,
		StudentID: m.PaymentStudentID,
		Purpose:   m.PaymentPurpose,
		Amount:    m.PaymentAmount,
		OrderID:   m.PaymentOrderID,
		Status:    m.PaymentStatus,
		PaidAt:    m.PaymentPaidAt,
		SnapToken: snapToken,
	}
}
