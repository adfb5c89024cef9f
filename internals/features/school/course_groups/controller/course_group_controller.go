// file: internals/features/school/course_groups/controller/course_group_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/school/course_groups/dto"
	"bimbelku_backend/internals/features/school/course_groups/model"
	roomModel "bimbelku_backend/internals/features/school/rooms/model"
	sessionService "bimbelku_backend/internals/features/school/sessions/service"
	teacherModel "bimbelku_backend/internals/features/school/teachers/model"
	helper "bimbelku_backend/internals/helpers"
)

type CourseGroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseGroupController(db *gorm.DB, v *validator.Validate) *CourseGroupController {
	return &CourseGroupController{DB: db, Validate: v}
}

func (ctl *CourseGroupController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.CourseGroupModel{})

	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		db = db.Where("(LOWER(course_groups_name) LIKE ? OR LOWER(course_groups_subject) LIKE ?)", like, like)
	}
	if v := strings.TrimSpace(c.Query("teacher_id")); v != "" {
		tid, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		db = db.Where("course_groups_teacher_id = ?", tid)
	}
	if v := strings.TrimSpace(c.Query("room_id")); v != "" {
		rid, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "room_id tidak valid")
		}
		db = db.Where("course_groups_room_id = ?", rid)
	}
	if v := strings.TrimSpace(c.Query("day_of_week")); v != "" {
		db = db.Where("course_groups_day_of_week = ?", v)
	}
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		db = db.Where("course_groups_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.CourseGroupModel
	if err := db.Order("course_groups_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.CourseGroupResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToCourseGroupResponse(m))
	}

	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *CourseGroupController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.CourseGroupModel
	if err := ctl.DB.Where("course_group_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course group tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", dto.ToCourseGroupResponse(m))
}

// Create — referensi teacher/room harus ada, lalu cek bentrok template
// (ruangan + hari + jam overlap dengan grup aktif lain) sebelum simpan.
func (ctl *CourseGroupController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	var m model.CourseGroupModel
	if err := req.ApplyToModel(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.ensureRefsExist(m.CourseGroupsTeacherID, m.CourseGroupsRoomID); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var conflict *sessionService.ConflictError
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		cf, err := sessionService.CheckGroupConflict(tx, m.CourseGroupsRoomID,
			m.CourseGroupsDayOfWeek, m.CourseGroupsStartTime, m.CourseGroupsEndTime, uuid.Nil)
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
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}

	return helper.JsonCreated(c, "Course group dibuat", dto.ToCourseGroupResponse(m))
}

func (ctl *CourseGroupController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.PatchCourseGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	var m model.CourseGroupModel
	if err := ctl.DB.Where("course_group_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course group tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := req.ApplyPatch(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.ensureRefsExist(m.CourseGroupsTeacherID, m.CourseGroupsRoomID); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var conflict *sessionService.ConflictError
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		cf, err := sessionService.CheckGroupConflict(tx, m.CourseGroupsRoomID,
			m.CourseGroupsDayOfWeek, m.CourseGroupsStartTime, m.CourseGroupsEndTime, m.CourseGroupID)
		if err != nil {
			return err
		}
		if cf != nil {
			conflict = cf
			return cf
		}
		return tx.Model(&model.CourseGroupModel{}).
			Where("course_group_id = ?", m.CourseGroupID).
			Updates(map[string]interface{}{
				"course_groups_name":          m.CourseGroupsName,
				"course_groups_subject":       m.CourseGroupsSubject,
				"course_groups_level":         m.CourseGroupsLevel,
				"course_groups_monthly_price": m.CourseGroupsMonthlyPrice,
				"course_groups_teacher_id":    m.CourseGroupsTeacherID,
				"course_groups_room_id":       m.CourseGroupsRoomID,
				"course_groups_day_of_week":   m.CourseGroupsDayOfWeek,
				"course_groups_start_time":    m.CourseGroupsStartTime,
				"course_groups_end_time":      m.CourseGroupsEndTime,
				"course_groups_is_active":     m.CourseGroupsIsActive,
				"course_groups_updated_at":    time.Now(),
			}).Error
	})
	if txErr != nil {
		if conflict != nil {
			return helper.JsonError(c, fiber.StatusConflict, conflict.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah data")
	}

	// Perubahan template tidak menimpa sesi yang sudah digenerate —
	// panggil /class-sessions/generate?force=true untuk menyesuaikan.
	return helper.JsonUpdated(c, "Course group diubah", dto.ToCourseGroupResponse(m))
}

func (ctl *CourseGroupController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctl.DB.Where("course_group_id = ?", id).Delete(&model.CourseGroupModel{})
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course group tidak ditemukan / sudah terhapus")
	}
	return helper.JsonDeleted(c, "Course group dihapus", fiber.Map{"deleted": true})
}

func (ctl *CourseGroupController) ensureRefsExist(teacherID, roomID uuid.UUID) error {
	var n int64
	if err := ctl.DB.Model(&teacherModel.TeacherModel{}).
		Where("teacher_id = ?", teacherID).Count(&n).Error; err != nil {
		return errors.New("gagal cek teacher")
	}
	if n == 0 {
		return errors.New("teacher tidak ditemukan")
	}
	if err := ctl.DB.Model(&roomModel.ClassRoomModel{}).
		Where("class_room_id = ?", roomID).Count(&n).Error; err != nil {
		return errors.New("gagal cek ruangan")
	}
	if n == 0 {
		return errors.New("ruangan tidak ditemukan")
	}
	return nil
}
