// file: internals/features/school/payments/dto/payment_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	m "bimbelku_backend/internals/features/school/payments/model"
	"bimbelku_backend/internals/helpers/dbtime"
)

type CreatePaymentRequest struct {
	PaymentsStudentID    uuid.UUID `json:"payments_student_id"    validate:"required,uuid4"`
	PaymentsGroupID      uuid.UUID `json:"payments_group_id"      validate:"required,uuid4"`
	PaymentsAmount       float64   `json:"payments_amount"        validate:"required,gt=0"`
	PaymentsMonthCovered string    `json:"payments_month_covered" validate:"required"` // YYYY-MM-DD (dinormalisasi ke tgl 1)
	PaymentsMethod       *string   `json:"payments_method,omitempty" validate:"omitempty,oneof=CASH TRANSFER QRIS"`
	PaymentsNotes        *string   `json:"payments_notes,omitempty"`
}

func (r *CreatePaymentRequest) ToModel(now time.Time) (m.PaymentModel, error) {
	month, err := dbtime.ParseDate(r.PaymentsMonthCovered)
	if err != nil {
		return m.PaymentModel{}, errors.New("payments_month_covered harus berformat YYYY-MM-DD")
	}

	out := m.PaymentModel{
		PaymentsStudentID:    r.PaymentsStudentID,
		PaymentsGroupID:      r.PaymentsGroupID,
		PaymentsAmount:       r.PaymentsAmount,
		PaymentsMonthCovered: dbtime.MonthStart(month),
		PaymentsMethod:       "CASH",
		PaymentsPaidAt:       now,
	}
	if r.PaymentsMethod != nil {
		out.PaymentsMethod = strings.ToUpper(strings.TrimSpace(*r.PaymentsMethod))
	}
	if r.PaymentsNotes != nil {
		out.PaymentsNotes = strings.TrimSpace(*r.PaymentsNotes)
	}
	return out, nil
}

type PaymentResponse struct {
	PaymentID            uuid.UUID `json:"payment_id"`
	PaymentsStudentID    uuid.UUID `json:"payments_student_id"`
	PaymentsGroupID      uuid.UUID `json:"payments_group_id"`
	PaymentsAmount       float64   `json:"payments_amount"`
	PaymentsMonthCovered string    `json:"payments_month_covered"`
	PaymentsReceiptNo    string    `json:"payments_receipt_no"`
	PaymentsMethod       string    `json:"payments_method"`
	PaymentsPaidAt       time.Time `json:"payments_paid_at"`
	PaymentsNotes        string    `json:"payments_notes"`
	PaymentsCreatedAt    time.Time `json:"payments_created_at"`
}

func ToPaymentResponse(src m.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:            src.PaymentID,
		PaymentsStudentID:    src.PaymentsStudentID,
		PaymentsGroupID:      src.PaymentsGroupID,
		PaymentsAmount:       src.PaymentsAmount,
		PaymentsMonthCovered: src.PaymentsMonthCovered.Format(dbtime.LayoutDate),
		PaymentsReceiptNo:    src.PaymentsReceiptNo,
		PaymentsMethod:       src.PaymentsMethod,
		PaymentsPaidAt:       src.PaymentsPaidAt,
		PaymentsNotes:        src.PaymentsNotes,
		PaymentsCreatedAt:    src.PaymentsCreatedAt,
	}
}

/* =======================================================
   Status bulanan — OK / PARTIAL / UNPAID per siswa di grup
   ======================================================= */

type MonthlyStatusEntry struct {
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`
	TotalPaid    float64   `json:"total_paid"`
	MonthlyPrice float64   `json:"monthly_price"`
	Status       string    `json:"status"` // OK | PARTIAL | UNPAID
}

type MonthlyStatusResponse struct {
	GroupID uuid.UUID            `json:"group_id"`
	Month   string               `json:"month"`
	Entries []MonthlyStatusEntry `json:"entries"`
}
