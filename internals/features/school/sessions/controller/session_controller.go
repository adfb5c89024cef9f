// file: internals/features/school/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"strconv"
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

type ClassSessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassSessionController(db *gorm.DB, v *validator.Validate) *ClassSessionController {
	return &ClassSessionController{DB: db, Validate: v}
}

func (ctl *ClassSessionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.Model(&model.ClassSessionModel{})

	if v := strings.TrimSpace(c.Query("group_id")); v != "" {
		gid, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
		}
		db = db.Where("class_sessions_group_id = ?", gid)
	}
	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		d, err := dbtime.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from harus berformat YYYY-MM-DD")
		}
		db = db.Where("class_sessions_date >= ?", d)
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		d, err := dbtime.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to harus berformat YYYY-MM-DD")
		}
		db = db.Where("class_sessions_date <= ?", d)
	}
	if v := strings.ToUpper(strings.TrimSpace(c.Query("status"))); v != "" {
		if !model.SessionStatus(v).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status harus PLANNED, DONE, atau CANCELLED")
		}
		db = db.Where("class_sessions_status = ?", v)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.ClassSessionModel
	if err := db.Preload("Group").
		Order("class_sessions_date ASC, class_sessions_start_time ASC, class_session_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.ClassSessionResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToClassSessionResponse(m))
	}

	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *ClassSessionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.ClassSessionModel
	if err := ctl.DB.Preload("Group").
		Where("class_session_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", dto.ToClassSessionResponse(m))
}

// Create — sesi manual (di luar pola mingguan). Validasi urutan jam,
// tolak tanggal yang exception-nya cancelled, lalu cek bentrok ruangan
// dalam satu transaksi dengan insert.
func (ctl *ClassSessionController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassSessionRequest
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

	var g groupModel.CourseGroupModel
	if err := ctl.DB.Where("course_group_id = ?", m.ClassSessionsGroupID).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Course group tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var conflict *service.ConflictError
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Tanggal yang dibatalkan lewat exception tidak boleh diisi manual
		var cancelled int64
		if err := tx.Model(&model.ClassSessionExceptionModel{}).
			Where("class_session_exceptions_group_id = ? AND class_session_exceptions_date = ? AND class_session_exceptions_cancelled = ?",
				m.ClassSessionsGroupID, m.ClassSessionsDate, true).
			Count(&cancelled).Error; err != nil {
			return err
		}
		if cancelled > 0 {
			return errors.New("tanggal ini dibatalkan lewat exception")
		}

		cf, err := service.CheckSessionConflict(tx, m.ClassSessionsDate,
			m.EffectiveRoomID(g.CourseGroupsRoomID),
			m.ClassSessionsStartTime, m.ClassSessionsEndTime, uuid.Nil)
		if err != nil {
			return err
		}
		if cf != nil {
			conflict = cf
			return cf
		}
		return tx.Create(&m).Error
	})
	if txErr != nil {
		if conflict != nil {
			return helper.JsonError(c, fiber.StatusConflict, conflict.Error())
		}
		if isUniqueViolation(txErr) {
			return helper.JsonError(c, fiber.StatusConflict, "Grup sudah punya sesi di tanggal ini")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, txErr.Error())
	}

	m.Group = g
	return helper.JsonCreated(c, "Sesi dibuat", dto.ToClassSessionResponse(m))
}

func (ctl *ClassSessionController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.PatchClassSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	var m model.ClassSessionModel
	if err := ctl.DB.Preload("Group").
		Where("class_session_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := req.ApplyPatch(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var conflict *service.ConflictError
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		cf, err := service.CheckSessionConflict(tx, m.ClassSessionsDate,
			m.EffectiveRoomID(m.Group.CourseGroupsRoomID),
			m.ClassSessionsStartTime, m.ClassSessionsEndTime, m.ClassSessionID)
		if err != nil {
			return err
		}
		if cf != nil {
			conflict = cf
			return cf
		}
		return tx.Model(&model.ClassSessionModel{}).
			Where("class_session_id = ?", m.ClassSessionID).
			Updates(map[string]interface{}{
				"class_sessions_date":       m.ClassSessionsDate,
				"class_sessions_start_time": m.ClassSessionsStartTime,
				"class_sessions_end_time":   m.ClassSessionsEndTime,
				"class_sessions_room_id":    m.ClassSessionsRoomID,
				"class_sessions_notes":      m.ClassSessionsNotes,
				"class_sessions_updated_at": time.Now(),
			}).Error
	})
	if txErr != nil {
		if conflict != nil {
			return helper.JsonError(c, fiber.StatusConflict, conflict.Error())
		}
		if isUniqueViolation(txErr) {
			return helper.JsonError(c, fiber.StatusConflict, "Grup sudah punya sesi di tanggal ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah data")
	}

	return helper.JsonUpdated(c, "Sesi diubah", dto.ToClassSessionResponse(m))
}

// PatchStatus — transisi bebas antar PLANNED/DONE/CANCELLED
// (koreksi admin diperbolehkan dua arah).
func (ctl *ClassSessionController) PatchStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.PatchSessionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}
	status, err := req.Status()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := ctl.DB.Model(&model.ClassSessionModel{}).
		Where("class_session_id = ?", id).
		Updates(map[string]interface{}{
			"class_sessions_status":     status,
			"class_sessions_updated_at": time.Now(),
		})
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}

	var m model.ClassSessionModel
	if err := ctl.DB.Preload("Group").Where("class_session_id = ?", id).First(&m).Error; err != nil {
		return helper.JsonUpdated(c, "Status sesi diubah", fiber.Map{"class_sessions_status": status})
	}
	return helper.JsonUpdated(c, "Status sesi diubah", dto.ToClassSessionResponse(m))
}

func (ctl *ClassSessionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctl.DB.Where("class_session_id = ?", id).Delete(&model.ClassSessionModel{})
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Sesi dihapus", fiber.Map{"deleted": true})
}

// Generate — materialisasi manual. Rentang dari body JSON atau query
// (?start&end | ?weeks&force); default 4 minggu dari hari ini.
func (ctl *ClassSessionController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateSessionsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
	}
	if v := strings.TrimSpace(c.Query("start")); v != "" {
		req.Start = &v
	}
	if v := strings.TrimSpace(c.Query("end")); v != "" {
		req.End = &v
	}
	if v := strings.TrimSpace(c.Query("weeks")); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "weeks harus angka")
		}
		req.Weeks = &w
	}
	if v := strings.TrimSpace(c.Query("force")); v != "" {
		req.Force = v == "true" || v == "1"
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	start, end, err := req.Resolve(dbtime.TodaySchool())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	summary, err := service.GenerateSessions(c.UserContext(), ctl.DB, start, end,
		service.GenerateOptions{Force: req.Force})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate sesi: "+err.Error())
	}

	return helper.JsonOK(c, "Generate sesi selesai", summary)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "unique failed")
}
