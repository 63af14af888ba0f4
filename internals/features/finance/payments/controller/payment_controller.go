package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "vtop_backend/internals/features/users/auth/model"
	paymentDTO "vtop_backend/internals/features/finance/payments/dto"
	paymentModel "vtop_backend/internals/features/finance/payments/model"
	paymentService "vtop_backend/internals/features/finance/payments/service"
	helper "vtop_backend/internals/helpers"
)

type PaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ===============================
// POST /api/a/payments/invoices
// Raises a fee invoice and returns a Snap token for it.
// ===============================
func (ctl *PaymentController) CreateInvoice(c *fiber.Ctx) error {
	var req paymentDTO.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student authModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&student, "id = ?", req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	payment := paymentModel.PaymentModel{
		PaymentStudentID: req.StudentID,
		PaymentPurpose:   strings.TrimSpace(req.Purpose),
		PaymentAmount:    req.Amount,
		PaymentOrderID:   fmt.Sprintf("VTOP-%d-%s", time.Now().Unix(), uuid.NewString()[:8]),
		PaymentStatus:    paymentModel.PaymentStatusPending,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	snapToken, err := paymentService.GenerateSnapToken(payment, student.UserName, student.Email)
	if err != nil {
		// invoice stays PENDING; the token can be regenerated later
		log.Println("[ERROR] GenerateSnapToken:", err)
		snapToken = ""
	}

	return helper.JsonCreated(c, "Invoice created", paymentDTO.ToPaymentResponse(&payment, snapToken))
}

// ===============================
// POST /api/payments/notification
// Midtrans webhook (public path, skipped by auth middleware).
// ===============================
func (ctl *PaymentController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification payload")
	}

	if err := paymentService.HandlePaymentStatusWebhook(ctl.DB.WithContext(c.Context()), body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonOK(c, "Notification processed", nil)
}

// ===============================
// GET /api/u/payments?student_id=
// ===============================
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Query("student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id is not a valid UUID")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&paymentModel.PaymentModel{}).
		Where("payment_student_id = ?", studentID)

	if st := strings.TrimSpace(c.Query("status")); st != "" {
		switch paymentModel.PaymentStatus(strings.ToUpper(st)) {
		case paymentModel.PaymentStatusPending, paymentModel.PaymentStatusPaid,
			paymentModel.PaymentStatusExpired, paymentModel.PaymentStatusCanceled:
			tx = tx.Where("payment_status = ?", strings.ToUpper(st))
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment status (PENDING/PAID/EXPIRED/CANCELED)")
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []paymentModel.PaymentModel
	if err := tx.Order("payment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]paymentDTO.PaymentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, paymentDTO.ToPaymentResponse(&rows[i], ""))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"payments":   out,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}
