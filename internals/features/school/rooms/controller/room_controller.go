// file: internals/features/school/rooms/controller/room_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bimbelku_backend/internals/features/school/rooms/dto"
	"bimbelku_backend/internals/features/school/rooms/model"
	helper "bimbelku_backend/internals/helpers"
)

type ClassRoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassRoomController(db *gorm.DB, v *validator.Validate) *ClassRoomController {
	return &ClassRoomController{DB: db, Validate: v}
}

func (ctl *ClassRoomController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.ClassRoomModel{})

	// search → ILIKE ke name + location
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		db = db.Where("(LOWER(class_rooms_name) LIKE ? OR LOWER(COALESCE(class_rooms_location,'')) LIKE ?)", like, like)
	}
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		db = db.Where("class_rooms_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.ClassRoomModel
	if err := db.Order("class_rooms_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.ClassRoomResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToClassRoomResponse(m))
	}

	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *ClassRoomController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.ClassRoomModel
	if err := ctl.DB.Where("class_room_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ruangan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", dto.ToClassRoomResponse(m))
}

func (ctl *ClassRoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama ruangan sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}

	return helper.JsonCreated(c, "Ruangan dibuat", dto.ToClassRoomResponse(m))
}

func (ctl *ClassRoomController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.PatchClassRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	var m model.ClassRoomModel
	if err := ctl.DB.Where("class_room_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ruangan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field untuk diupdate")
	}
	updates["class_rooms_updated_at"] = time.Now()

	if err := ctl.DB.Model(&m).Clauses(clause.Returning{}).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama ruangan sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah data")
	}

	return helper.JsonUpdated(c, "Ruangan diubah", dto.ToClassRoomResponse(m))
}

func (ctl *ClassRoomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctl.DB.Where("class_room_id = ?", id).Delete(&model.ClassRoomModel{})
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Ruangan tidak ditemukan / sudah terhapus")
	}
	return helper.JsonDeleted(c, "Ruangan dihapus", fiber.Map{"deleted": true})
}

func (ctl *ClassRoomController) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctl.DB.Unscoped().Model(&model.ClassRoomModel{}).
		Where("class_room_id = ? AND class_rooms_deleted_at IS NOT NULL", id).
		Updates(map[string]interface{}{
			"class_rooms_deleted_at": nil,
			"class_rooms_updated_at": time.Now(),
		})
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "Gagal restore: nama sudah dipakai entri lain")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal restore data")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Ruangan tidak ditemukan / tidak dalam keadaan terhapus")
	}

	var m model.ClassRoomModel
	if err := ctl.DB.Where("class_room_id = ?", id).First(&m).Error; err != nil {
		return helper.JsonOK(c, "Ruangan direstore", fiber.Map{"restored": true})
	}
	return helper.JsonOK(c, "Ruangan direstore", dto.ToClassRoomResponse(m))
}

// Deteksi unique violation Postgres (kode "23505") tanpa import driver
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "unique failed")
}
