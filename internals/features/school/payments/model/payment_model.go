// file: internals/features/school/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "bimbelku_backend/internals/features/school/course_groups/model"
	studentModel "bimbelku_backend/internals/features/school/students/model"
)

/* =======================================================
   PaymentModel — pembayaran SPP bulanan per (siswa, grup).
   month_covered dinormalisasi ke tanggal 1; boleh lebih dari
   satu pembayaran per bulan (cicilan), status dihitung dari
   total vs harga bulanan grup.
   ======================================================= */

type PaymentModel struct {
	// PK
	PaymentID uuid.UUID `json:"payment_id" gorm:"type:uuid;primaryKey;column:payment_id"`

	PaymentsStudentID uuid.UUID `json:"payments_student_id" gorm:"type:uuid;not null;index;column:payments_student_id"`
	PaymentsGroupID   uuid.UUID `json:"payments_group_id"   gorm:"type:uuid;not null;index;column:payments_group_id"`

	PaymentsAmount       float64   `json:"payments_amount"        gorm:"type:numeric(10,2);not null;column:payments_amount"`
	PaymentsMonthCovered time.Time `json:"payments_month_covered" gorm:"type:date;not null;index;column:payments_month_covered"`

	// Nomor kuitansi REC{tahun}{urut 4 digit}, unik global
	PaymentsReceiptNo string `json:"payments_receipt_no" gorm:"type:varchar(20);not null;uniqueIndex:uq_payments_receipt_no;column:payments_receipt_no"`

	PaymentsMethod string    `json:"payments_method"  gorm:"type:varchar(20);not null;default:'CASH';column:payments_method"`
	PaymentsPaidAt time.Time `json:"payments_paid_at" gorm:"not null;column:payments_paid_at"`
	PaymentsNotes  string    `json:"payments_notes"   gorm:"type:text;not null;default:'';column:payments_notes"`

	PaymentsCreatedAt time.Time `json:"payments_created_at" gorm:"column:payments_created_at;not null;autoCreateTime"`

	// Relasi opsional (preload)
	Student studentModel.StudentModel   `json:"-" gorm:"foreignKey:PaymentsStudentID;references:StudentID"`
	Group   groupModel.CourseGroupModel `json:"-" gorm:"foreignKey:PaymentsGroupID;references:CourseGroupID"`
}

func (PaymentModel) TableName() string { return "payments" }

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	return nil
}
