// file: internals/features/school/teachers/controller/teacher_controller.go
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
	sessionModel "bimbelku_backend/internals/features/school/sessions/model"
	"bimbelku_backend/internals/features/school/teachers/dto"
	"bimbelku_backend/internals/features/school/teachers/model"
	helper "bimbelku_backend/internals/helpers"
	"bimbelku_backend/internals/helpers/dbtime"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	return &TeacherController{DB: db, Validate: v}
}

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.TeacherModel{})

	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		db = db.Where("(LOWER(teachers_name) LIKE ? OR LOWER(teachers_phone) LIKE ?)", like, like)
	}
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		db = db.Where("teachers_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.TeacherModel
	if err := db.Order("teachers_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.TeacherResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToTeacherResponse(m))
	}

	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.TeacherModel
	if err := ctl.DB.Where("teacher_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", dto.ToTeacherResponse(m))
}

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}

	return helper.JsonCreated(c, "Teacher dibuat", dto.ToTeacherResponse(m))
}

func (ctl *TeacherController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.PatchTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	var m model.TeacherModel
	if err := ctl.DB.Where("teacher_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field untuk diupdate")
	}
	updates["teachers_updated_at"] = time.Now()

	if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah data")
	}

	return helper.JsonUpdated(c, "Teacher diubah", dto.ToTeacherResponse(m))
}

func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctl.DB.Where("teacher_id = ?", id).Delete(&model.TeacherModel{})
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan / sudah terhapus")
	}
	return helper.JsonDeleted(c, "Teacher dihapus", fiber.Map{"deleted": true})
}

// Hours — rekap payroll per periode (?from&to, default: bulan berjalan).
// scheduled = semua sesi bertanggal di periode, taught = yang DONE saja.
// Konsumen read-only: tidak menulis apa pun ke tabel sesi.
func (ctl *TeacherController) Hours(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var teacher model.TeacherModel
	if err := ctl.DB.Where("teacher_id = ?", id).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	now := time.Now().UTC()
	from := dbtime.MonthStart(now)
	to := from.AddDate(0, 1, -1)
	if v := strings.TrimSpace(c.Query("from")); v != "" {
		d, err := dbtime.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from harus berformat YYYY-MM-DD")
		}
		from = d
	}
	if v := strings.TrimSpace(c.Query("to")); v != "" {
		d, err := dbtime.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to harus berformat YYYY-MM-DD")
		}
		to = d
	}
	if to.Before(from) {
		return helper.JsonError(c, fiber.StatusBadRequest, "to tidak boleh sebelum from")
	}

	var groups []groupModel.CourseGroupModel
	if err := ctl.DB.Where("course_groups_teacher_id = ?", id).Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := dto.TeacherHoursResponse{
		TeacherID:  teacher.TeacherID,
		PeriodFrom: from.Format(dbtime.LayoutDate),
		PeriodTo:   to.Format(dbtime.LayoutDate),
		HourlyRate: teacher.TeachersHourlyRate,
		Courses:    len(groups),
	}

	if len(groups) > 0 {
		groupIDs := make([]uuid.UUID, 0, len(groups))
		for _, g := range groups {
			groupIDs = append(groupIDs, g.CourseGroupID)
		}

		var sessions []sessionModel.ClassSessionModel
		if err := ctl.DB.
			Where("class_sessions_group_id IN ?", groupIDs).
			Where("class_sessions_date >= ? AND class_sessions_date <= ?", from, to).
			Find(&sessions).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sesi")
		}

		for _, s := range sessions {
			h := s.DurationHours()
			out.ScheduledHours += h
			if s.ClassSessionsStatus == sessionModel.SessionDone {
				out.TaughtHours += h
			}
		}
	}

	out.SalaryScheduled = out.ScheduledHours * teacher.TeachersHourlyRate
	out.SalaryTaught = out.TaughtHours * teacher.TeachersHourlyRate

	return helper.JsonOK(c, "ok", out)
}
