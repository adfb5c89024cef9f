// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/school/attendance/dto"
	"bimbelku_backend/internals/features/school/attendance/model"
	sessionModel "bimbelku_backend/internals/features/school/sessions/model"
	studentModel "bimbelku_backend/internals/features/school/students/model"
	helper "bimbelku_backend/internals/helpers"
	"bimbelku_backend/internals/helpers/dbtime"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{DB: db, Validate: v}
}

func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.Model(&model.AttendanceModel{})

	if v := strings.TrimSpace(c.Query("group_id")); v != "" {
		gid, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
		}
		db = db.Where("attendances_group_id = ?", gid)
	}
	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		sid, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		db = db.Where("attendances_student_id = ?", sid)
	}
	if v := strings.TrimSpace(c.Query("date")); v != "" {
		d, err := dbtime.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date harus berformat YYYY-MM-DD")
		}
		db = db.Where("attendances_date = ?", d)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.AttendanceModel
	if err := db.Order("attendances_date ASC, attendance_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.AttendanceResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToAttendanceResponse(m))
	}

	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// Create — siswa harus terdaftar di grup; sesi (grup, tanggal) yang
// masih PLANNED ikut ditandai DONE (presensi berarti kelas jalan).
func (ctl *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var enrolled int64
	if err := ctl.DB.Model(&studentModel.EnrollmentModel{}).
		Where("enrollments_student_id = ? AND enrollments_group_id = ?",
			m.AttendancesStudentID, m.AttendancesGroupID).
		Count(&enrolled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if enrolled == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Siswa tidak terdaftar di grup ini")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return tx.Model(&sessionModel.ClassSessionModel{}).
			Where("class_sessions_group_id = ? AND class_sessions_date = ? AND class_sessions_status = ?",
				m.AttendancesGroupID, m.AttendancesDate, sessionModel.SessionPlanned).
			Updates(map[string]interface{}{
				"class_sessions_status":     sessionModel.SessionDone,
				"class_sessions_updated_at": time.Now(),
			}).Error
	})
	if txErr != nil {
		if isUniqueViolation(txErr) {
			return helper.JsonError(c, fiber.StatusConflict, "Presensi siswa untuk tanggal ini sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan presensi")
	}

	return helper.JsonCreated(c, "Presensi dicatat", dto.ToAttendanceResponse(m))
}

func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctl.DB.Where("attendance_id = ?", id).Delete(&model.AttendanceModel{})
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Presensi tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Presensi dihapus", fiber.Map{"deleted": true})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "unique failed")
}
