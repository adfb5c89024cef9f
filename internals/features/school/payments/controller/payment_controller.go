// file: internals/features/school/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "bimbelku_backend/internals/features/school/course_groups/model"
	"bimbelku_backend/internals/features/school/payments/dto"
	"bimbelku_backend/internals/features/school/payments/model"
	"bimbelku_backend/internals/features/school/payments/service"
	studentModel "bimbelku_backend/internals/features/school/students/model"
	helper "bimbelku_backend/internals/helpers"
	"bimbelku_backend/internals/helpers/dbtime"
)

type PaymentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB, v *validator.Validate) *PaymentController {
	return &PaymentController{DB: db, Validate: v}
}

func (ctl *PaymentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.PaymentModel{})

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		sid, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		db = db.Where("payments_student_id = ?", sid)
	}
	if v := strings.TrimSpace(c.Query("group_id")); v != "" {
		gid, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
		}
		db = db.Where("payments_group_id = ?", gid)
	}
	if v := strings.TrimSpace(c.Query("month")); v != "" {
		d, err := dbtime.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "month harus berformat YYYY-MM-DD")
		}
		db = db.Where("payments_month_covered = ?", dbtime.MonthStart(d))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.PaymentModel
	if err := db.Order("payments_paid_at DESC, payment_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.PaymentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToPaymentResponse(m))
	}

	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.PaymentModel
	if err := ctl.DB.Where("payment_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", dto.ToPaymentResponse(m))
}

// Create — nomor kuitansi digenerate dalam transaksi yang sama
// dengan insert supaya urutan per tahun tidak bolong.
func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	m, err := req.ToModel(time.Now().UTC())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var n int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", m.PaymentsStudentID).Count(&n).Error; err != nil || n == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Siswa tidak ditemukan")
	}
	if err := ctl.DB.Model(&groupModel.CourseGroupModel{}).
		Where("course_group_id = ?", m.PaymentsGroupID).Count(&n).Error; err != nil || n == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course group tidak ditemukan")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		receiptNo, err := service.NextReceiptNo(tx, m.PaymentsPaidAt)
		if err != nil {
			return err
		}
		m.PaymentsReceiptNo = receiptNo
		return tx.Create(&m).Error
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pembayaran")
	}

	return helper.JsonCreated(c, "Pembayaran dicatat", dto.ToPaymentResponse(m))
}

func (ctl *PaymentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctl.DB.Where("payment_id = ?", id).Delete(&model.PaymentModel{})
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Pembayaran dihapus", fiber.Map{"deleted": true})
}

// MonthlyStatus — rekap SPP satu grup untuk satu bulan:
// OK (lunas), PARTIAL (kurang), UNPAID (belum bayar sama sekali).
func (ctl *PaymentController) MonthlyStatus(c *fiber.Ctx) error {
	gid, err := uuid.Parse(strings.TrimSpace(c.Query("group_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
	}
	monthRaw := strings.TrimSpace(c.Query("month"))
	if monthRaw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "month wajib diisi (YYYY-MM-DD)")
	}
	monthDate, err := dbtime.ParseDate(monthRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "month harus berformat YYYY-MM-DD")
	}
	month := dbtime.MonthStart(monthDate)

	var g groupModel.CourseGroupModel
	if err := ctl.DB.Where("course_group_id = ?", gid).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course group tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var enrollments []studentModel.EnrollmentModel
	if err := ctl.DB.Preload("Student").
		Where("enrollments_group_id = ? AND enrollments_is_active = ?", gid, true).
		Order("enrollment_id ASC").
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := dto.MonthlyStatusResponse{
		GroupID: gid,
		Month:   month.Format(dbtime.LayoutDate),
		Entries: []dto.MonthlyStatusEntry{},
	}

	for _, e := range enrollments {
		var paid float64
		row := ctl.DB.Model(&model.PaymentModel{}).
			Where("payments_student_id = ? AND payments_group_id = ? AND payments_month_covered = ?",
				e.EnrollmentsStudentID, gid, month).
			Select("COALESCE(SUM(payments_amount), 0)").
			Row()
		if err := row.Scan(&paid); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pembayaran")
		}

		status := "UNPAID"
		if paid >= g.CourseGroupsMonthlyPrice {
			status = "OK"
		} else if paid > 0 {
			status = "PARTIAL"
		}

		out.Entries = append(out.Entries, dto.MonthlyStatusEntry{
			StudentID:    e.EnrollmentsStudentID,
			StudentName:  e.Student.StudentsName,
			TotalPaid:    paid,
			MonthlyPrice: g.CourseGroupsMonthlyPrice,
			Status:       status,
		})
	}

	return helper.JsonOK(c, "ok", out)
}
