// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gerejaku_backend/internals/configs"
	"gerejaku_backend/internals/features/users/auth/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 30 * 24 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("email atau password salah")
	ErrUserInactive       = errors.New("akun dinonaktifkan")
	ErrRefreshInvalid     = errors.New("refresh token tidak valid")
)

/* =========================================================
   PASSWORD
   ========================================================= */

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

/* =========================================================
   ACCESS TOKEN (JWT HS256)
   ========================================================= */

func IssueAccessToken(u model.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":        u.UserID.String(),
		"user_name": u.UserName,
		"roles":     []string{u.UserRole},
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

/* =========================================================
   REFRESH TOKEN (opaque, disimpan sebagai hash SHA-256)
   ========================================================= */

func hashRefreshToken(raw string) []byte {
	sum := sha256.Sum256([]byte(raw))
	return sum[:]
}

func IssueRefreshToken(db *gorm.DB, userID uuid.UUID, userAgent, ip string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	raw := hex.EncodeToString(buf)

	row := model.RefreshToken{
		UserID:    userID,
		TokenHash: hashRefreshToken(raw),
		ExpiresAt: time.Now().Add(RefreshTokenTTL),
	}
	if ua := strings.TrimSpace(userAgent); ua != "" {
		row.UserAgent = &ua
	}
	if ip = strings.TrimSpace(ip); ip != "" {
		row.IP = &ip
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return raw, nil
}

// RotateRefreshToken memvalidasi token lama, merevokenya, dan menerbitkan yang baru.
func RotateRefreshToken(db *gorm.DB, raw, userAgent, ip string) (model.UserModel, string, error) {
	var rt model.RefreshToken
	err := db.
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > now()", hashRefreshToken(raw)).
		First(&rt).Error
	if err != nil {
		return model.UserModel{}, "", ErrRefreshInvalid
	}

	var user model.UserModel
	if err := db.First(&user, "user_id = ?", rt.UserID).Error; err != nil {
		return model.UserModel{}, "", ErrRefreshInvalid
	}
	if !user.UserIsActive {
		return model.UserModel{}, "", ErrUserInactive
	}

	now := time.Now()
	rt.RevokedAt = &now
	if err := db.Save(&rt).Error; err != nil {
		return model.UserModel{}, "", err
	}

	newRaw, err := IssueRefreshToken(db, user.UserID, userAgent, ip)
	if err != nil {
		return model.UserModel{}, "", err
	}
	return user, newRaw, nil
}

func RevokeRefreshToken(db *gorm.DB, raw string) error {
	now := time.Now()
	return db.Model(&model.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL", hashRefreshToken(raw)).
		Update("revoked_at", &now).Error
}

/* =========================================================
   BLACKLIST ACCESS TOKEN (logout sebelum exp)
   ========================================================= */

func BlacklistAccessToken(db *gorm.DB, raw string) error {
	expiredAt := time.Now().Add(AccessTokenTTL)
	// pakai exp asli bila token masih bisa diparse
	if tok, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
	}
	return db.Create(&model.TokenBlacklist{
		Token:     raw,
		ExpiredAt: expiredAt,
	}).Error
}

func IsTokenBlacklisted(db *gorm.DB) func(rawToken string) (bool, error) {
	return func(rawToken string) (bool, error) {
		var n int64
		err := db.Model(&model.TokenBlacklist{}).
			Where("token = ?", rawToken).
			Count(&n).Error
		return n > 0, err
	}
}

/* =========================================================
   LOGIN
   ========================================================= */

func LoginWithPassword(db *gorm.DB, email, password string) (model.UserModel, error) {
	var user model.UserModel
	err := db.Where("LOWER(user_email) = LOWER(?)", strings.TrimSpace(email)).First(&user).Error
	if err != nil {
		return model.UserModel{}, ErrInvalidCredentials
	}
	if user.UserPassword == "" || !CheckPassword(user.UserPassword, password) {
		return model.UserModel{}, ErrInvalidCredentials
	}
	if !user.UserIsActive {
		return model.UserModel{}, ErrUserInactive
	}
	return user, nil
}

// LoginWithGoogle memverifikasi ID token Google, lalu mencari atau membuat user.
func LoginWithGoogle(db *gorm.DB, idToken string) (model.UserModel, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return model.UserModel{}, errors.New("token Google tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return model.UserModel{}, errors.New("gagal membaca klaim token Google")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	// Cari by google_id dulu
	var user model.UserModel
	if err := db.Where("user_google_id = ?", googleID).First(&user).Error; err == nil {
		if !user.UserIsActive {
			return model.UserModel{}, ErrUserInactive
		}
		return user, nil
	}

	// Tautkan ke akun email yang sudah ada, atau buat baru
	if err := db.Where("LOWER(user_email) = LOWER(?)", email).First(&user).Error; err == nil {
		user.UserGoogleID = &googleID
		if err := db.Save(&user).Error; err != nil {
			return model.UserModel{}, err
		}
		return user, nil
	}

	user = model.UserModel{
		UserName:     name,
		UserEmail:    email,
		UserGoogleID: &googleID,
		UserRole:     "member",
		UserIsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return model.UserModel{}, err
	}
	return user, nil
}
