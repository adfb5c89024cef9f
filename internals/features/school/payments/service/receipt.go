// file: internals/features/school/payments/service/receipt.go
package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"bimbelku_backend/internals/features/school/payments/model"
)

// NextReceiptNo — REC{tahun}{urut 4 digit}, urutan reset tiap tahun.
// Harus dipanggil di dalam transaksi yang sama dengan insert payment;
// unique index di receipt_no jadi jaring pengaman kalau balapan.
func NextReceiptNo(tx *gorm.DB, paidAt time.Time) (string, error) {
	year := paidAt.UTC().Year()
	prefix := fmt.Sprintf("REC%d", year)

	var count int64
	if err := tx.Model(&model.PaymentModel{}).
		Where("payments_receipt_no LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}
