// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gerejaku_backend/internals/features/users/auth/model"
	"gerejaku_backend/internals/features/users/auth/service"
	helper "gerejaku_backend/internals/helpers"
	middleware "gerejaku_backend/internals/middlewares/auth"

	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validateAuth = validator.New()

const refreshCookieName = "refresh_token"

type registerRequest struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
}

type loginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type authResponse struct {
	AccessToken string          `json:"access_token"`
	User        model.UserModel `json:"user"`
}

func (ctrl *AuthController) setRefreshCookie(c *fiber.Ctx, raw string) {
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    raw,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/api/auth",
		MaxAge:   int(service.RefreshTokenTTL.Seconds()),
	})
}

func (ctrl *AuthController) issuePair(c *fiber.Ctx, user model.UserModel) error {
	access, err := service.IssueAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}
	refresh, err := service.IssueRefreshToken(ctrl.DB, user.UserID, c.Get(fiber.HeaderUserAgent), c.IP())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan refresh token")
	}
	ctrl.setRefreshCookie(c, refresh)
	return helper.Success(c, "Login berhasil", authResponse{AccessToken: access, User: user})
}

// ✅ POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing int64
	ctrl.DB.Model(&model.UserModel{}).
		Where("LOWER(user_email) = LOWER(?)", req.UserEmail).
		Count(&existing)
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := service.HashPassword(req.UserPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserPassword: hashed,
		UserRole:     "member",
		UserIsActive: true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", user)
}

// ✅ POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.LoginWithPassword(ctrl.DB, req.UserEmail, req.UserPassword)
	if err == service.ErrUserInactive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	return ctrl.issuePair(c, user)
}

// ✅ POST /api/auth/google
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req googleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.LoginWithGoogle(ctrl.DB, req.IDToken)
	if err == service.ErrUserInactive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	return ctrl.issuePair(c, user)
}

// ✅ POST /api/auth/refresh — rotasi refresh token dari cookie
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies(refreshCookieName))
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ditemukan")
	}

	user, newRaw, err := service.RotateRefreshToken(ctrl.DB, raw, c.Get(fiber.HeaderUserAgent), c.IP())
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid, silakan login ulang")
	}

	access, err := service.IssueAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}
	ctrl.setRefreshCookie(c, newRaw)
	return helper.Success(c, "Token diperbarui", authResponse{AccessToken: access, User: user})
}

// ✅ POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	// blacklist access token yang sedang dipakai
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		_ = service.BlacklistAccessToken(ctrl.DB, strings.TrimSpace(authz[7:]))
	}
	if raw := strings.TrimSpace(c.Cookies(refreshCookieName)); raw != "" {
		_ = service.RevokeRefreshToken(ctrl.DB, raw)
	}
	c.ClearCookie(refreshCookieName)
	return helper.Success(c, "Logout berhasil", nil)
}

// ✅ GET /api/u/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak dikenal")
	}
	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.Success(c, "Profil berhasil diambil", user)
}

// ✅ PUT /api/u/me/password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak dikenal")
	}

	var req struct {
		OldPassword string `json:"old_password" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if user.UserPassword != "" && !service.CheckPassword(user.UserPassword, req.OldPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	hashed, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	user.UserPassword = hashed
	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan password baru")
	}
	return helper.Success(c, "Password berhasil diganti", nil)
}
