// file: internals/features/school/payments/service/receipt_test.go
package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bimbelku_backend/internals/features/school/payments/model"
	"bimbelku_backend/internals/helpers/dbtime"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.PaymentModel{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedPayment(t *testing.T, db *gorm.DB, receiptNo string, paidAt time.Time) {
	t.Helper()
	p := model.PaymentModel{
		PaymentID:            uuid.New(),
		PaymentsStudentID:    uuid.New(),
		PaymentsGroupID:      uuid.New(),
		PaymentsAmount:       300000,
		PaymentsMonthCovered: dbtime.MonthStart(paidAt),
		PaymentsReceiptNo:    receiptNo,
		PaymentsMethod:       "CASH",
		PaymentsPaidAt:       paidAt,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed payment %s: %v", receiptNo, err)
	}
}

func TestNextReceiptNoStartsAtOne(t *testing.T) {
	db := openTestDB(t)

	got, err := NextReceiptNo(db, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("next receipt: %v", err)
	}
	if got != "REC20260001" {
		t.Errorf("receipt = %s, mau REC20260001", got)
	}
}

func TestNextReceiptNoIncrementsWithinYear(t *testing.T) {
	db := openTestDB(t)
	paidAt := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= 3; i++ {
		seedPayment(t, db, fmt.Sprintf("REC2026%04d", i), paidAt)
	}

	got, err := NextReceiptNo(db, paidAt)
	if err != nil {
		t.Fatalf("next receipt: %v", err)
	}
	if got != "REC20260004" {
		t.Errorf("receipt = %s, mau REC20260004", got)
	}
}

func TestNextReceiptNoResetsPerYear(t *testing.T) {
	db := openTestDB(t)
	seedPayment(t, db, "REC20250007", time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC))

	got, err := NextReceiptNo(db, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("next receipt: %v", err)
	}
	if got != "REC20260001" {
		t.Errorf("urutan harus reset di tahun baru, dapat %s", got)
	}
}
