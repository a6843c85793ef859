package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Kunci Locals yang dihidrasi middleware ini
const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
	LocRoles    = "roles"
)

type AuthJWTOpts struct {
	Secret              string
	BlacklistChecker    func(rawToken string) (bool, error) // return true if blacklisted
	AllowCookieFallback bool                                // pakai cookie access_token jika tidak ada Bearer
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Cek blacklist (opsional)
		if o.BlacklistChecker != nil {
			if black, err := o.BlacklistChecker(raw); err == nil && black {
				return fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
			}
		}

		// 3) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// Simpan raw claims (opsional)
		c.Locals("jwt_claims", claims)

		// user_id: ambil id/sub/user_id dalam urutan preferensi
		switch {
		case strClaim(claims, "id") != "":
			c.Locals(LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals(LocUserID, strClaim(claims, "user_id"))
		}

		if s := strClaim(claims, "user_name"); s != "" {
			c.Locals(LocUserName, s)
		}

		// roles -> []string
		c.Locals(LocRoles, readStringSlice(claims["roles"]))

		// Validasi cepat bahwa user_id berbentuk UUID, biar fail-fast
		if v := c.Locals(LocUserID); v != nil {
			if s, ok := v.(string); ok {
				if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
					return fiber.NewError(fiber.StatusUnauthorized, "Invalid token subject")
				}
			}
		}

		return c.Next()
	}
}

// RequireRoles menolak request bila user tidak punya salah satu role
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		have, _ := c.Locals(LocRoles).([]string)
		for _, need := range roles {
			for _, r := range have {
				if strings.EqualFold(r, need) {
					return c.Next()
				}
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Akses ditolak: role tidak memadai")
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if s, ok := claims[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func readStringSlice(v any) []string {
	out := make([]string, 0, 2)
	switch arr := v.(type) {
	case []string:
		out = append(out, arr...)
	case []any:
		for _, it := range arr {
			if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	}
	return out
}

// GetUserID membaca user id hasil hidrasi AuthJWT
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User tidak dikenal")
	}
	return id, nil
}
