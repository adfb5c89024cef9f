// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/users/auth/dto"
	"bimbelku_backend/internals/features/users/auth/model"
	"bimbelku_backend/internals/features/users/auth/service"
	helper "bimbelku_backend/internals/helpers"
	authmw "bimbelku_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	hashed, err := service.HashPassword(req.UsersPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	m := model.UserModel{
		UsersName:     req.UsersName,
		UsersEmail:    req.UsersEmail,
		UsersPassword: hashed,
		UsersRole:     "staff",
		UsersIsActive: true,
	}
	if req.UsersRole != nil {
		m.UsersRole = *req.UsersRole
	}

	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}

	return helper.JsonCreated(c, "User terdaftar", dto.ToUserResponse(m))
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.UsersEmail = strings.ToLower(strings.TrimSpace(req.UsersEmail))
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	var user model.UserModel
	if err := ctl.DB.Where("users_email = ?", req.UsersEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if !user.UsersIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if !service.CheckPassword(user.UsersPassword, req.UsersPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, expiresAt, err := service.IssueAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	// Cookie untuk klien browser; header Bearer tetap jalan
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        dto.ToUserResponse(user),
	})
}

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := authmw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	var user model.UserModel
	if err := ctl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "ok", dto.ToUserResponse(user))
}

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logout berhasil", fiber.Map{"logged_out": true})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "unique failed")
}
