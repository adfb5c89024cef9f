// file: internals/features/school/sessions/controller/session_exception_controller.go
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
	"bimbelku_backend/internals/features/school/sessions/dto"
	"bimbelku_backend/internals/features/school/sessions/model"
	"bimbelku_backend/internals/features/school/sessions/service"
	helper "bimbelku_backend/internals/helpers"
	"bimbelku_backend/internals/helpers/dbtime"
)

/* =======================================================
   Exception controller — setiap mutasi diikuti re-materialisasi
   tanggal ± 1 hari (force) supaya class_sessions langsung
   mencerminkan exception terbaru.
   ======================================================= */

type ClassSessionExceptionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassSessionExceptionController(db *gorm.DB, v *validator.Validate) *ClassSessionExceptionController {
	return &ClassSessionExceptionController{DB: db, Validate: v}
}

func (ctl *ClassSessionExceptionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.Model(&model.ClassSessionExceptionModel{})

	if v := strings.TrimSpace(c.Query("group_id")); v != "" {
		gid, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
		}
		db = db.Where("class_session_exceptions_group_id = ?", gid)
	}
	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		d, err := dbtime.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from harus berformat YYYY-MM-DD")
		}
		db = db.Where("class_session_exceptions_date >= ?", d)
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		d, err := dbtime.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to harus berformat YYYY-MM-DD")
		}
		db = db.Where("class_session_exceptions_date <= ?", d)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.ClassSessionExceptionModel
	if err := db.Order("class_session_exceptions_date ASC, class_session_exception_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.ClassSessionExceptionResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToClassSessionExceptionResponse(m))
	}

	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *ClassSessionExceptionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.ClassSessionExceptionModel
	if err := ctl.DB.Where("class_session_exception_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exception tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", dto.ToClassSessionExceptionResponse(m))
}

func (ctl *ClassSessionExceptionController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassSessionExceptionRequest
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
	if err := validateOverrideWindow(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var exists int64
	if err := ctl.DB.Model(&groupModel.CourseGroupModel{}).
		Where("course_group_id = ?", m.ClassSessionExceptionsGroupID).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course group tidak ditemukan")
	}

	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Grup sudah punya exception di tanggal ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}

	summary := ctl.regenerate(c, m.ClassSessionExceptionsDate)
	return helper.JsonCreated(c, "Exception dibuat", fiber.Map{
		"exception":  dto.ToClassSessionExceptionResponse(m),
		"regenerate": summary,
	})
}

func (ctl *ClassSessionExceptionController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.PatchClassSessionExceptionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	var m model.ClassSessionExceptionModel
	if err := ctl.DB.Where("class_session_exception_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exception tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := req.ApplyPatch(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validateOverrideWindow(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Model(&model.ClassSessionExceptionModel{}).
		Where("class_session_exception_id = ?", m.ClassSessionExceptionID).
		Updates(map[string]interface{}{
			"class_session_exceptions_cancelled":           m.ClassSessionExceptionsCancelled,
			"class_session_exceptions_override_room_id":    m.ClassSessionExceptionsOverrideRoomID,
			"class_session_exceptions_override_start_time": m.ClassSessionExceptionsOverrideStartTime,
			"class_session_exceptions_override_end_time":   m.ClassSessionExceptionsOverrideEndTime,
			"class_session_exceptions_notes":               m.ClassSessionExceptionsNotes,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah data")
	}

	summary := ctl.regenerate(c, m.ClassSessionExceptionsDate)
	return helper.JsonUpdated(c, "Exception diubah", fiber.Map{
		"exception":  dto.ToClassSessionExceptionResponse(m),
		"regenerate": summary,
	})
}

// Delete — exception hilang, tanggal kembali ke default grup
// (regenerate force akan membuat ulang / menormalkan sesinya).
func (ctl *ClassSessionExceptionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.ClassSessionExceptionModel
	if err := ctl.DB.Where("class_session_exception_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exception tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}

	summary := ctl.regenerate(c, m.ClassSessionExceptionsDate)
	return helper.JsonDeleted(c, "Exception dihapus", fiber.Map{
		"deleted":    true,
		"regenerate": summary,
	})
}

// regenerate: best effort — kegagalan regenerate tidak membatalkan
// mutasi exception yang sudah commit, cukup dilaporkan di response.
func (ctl *ClassSessionExceptionController) regenerate(c *fiber.Ctx, date time.Time) service.GenerateSummary {
	summary, err := service.RegenerateAroundDate(c.UserContext(), ctl.DB, date)
	if err != nil {
		summary.Errors = append(summary.Errors, err.Error())
	}
	return summary
}

// Override start/end kalau dua-duanya diisi harus urut. Kombinasi
// satu sisi saja divalidasi terhadap default grup saat materialisasi.
func validateOverrideWindow(m *model.ClassSessionExceptionModel) error {
	start := m.ClassSessionExceptionsOverrideStartTime
	end := m.ClassSessionExceptionsOverrideEndTime
	if start != nil && end != nil && !end.After(*start) {
		return errors.New("class_session_exceptions_override_end_time harus lebih besar dari override_start_time")
	}
	return nil
}
