package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	unlockTokenTTL     = 30 * 24 * time.Hour
	unlockTokenPurpose = "notes_unlock"
)

type unlockClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func (handler *Handler) buildUnlockToken(ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = unlockTokenTTL
	}
	now := handler.now()

	claims := unlockClaims{
		Purpose: unlockTokenPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "notes",
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) validUnlockCookie(c *fiber.Ctx) error {
	rawToken := strings.TrimSpace(c.Cookies(unlockCookieName))
	if rawToken == "" {
		return errors.New("missing unlock cookie")
	}

	claims := &unlockClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	}, jwt.WithTimeFunc(handler.now))
	if err != nil || !token.Valid {
		return errors.New("invalid token")
	}
	if claims.Purpose != unlockTokenPurpose {
		return errors.New("invalid token purpose")
	}
	return nil
}

func (handler *Handler) setUnlockCookie(c *fiber.Ctx) error {
	token, err := handler.buildUnlockToken(unlockTokenTTL)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     unlockCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  handler.now().Add(unlockTokenTTL),
	})
	return nil
}

func (handler *Handler) clearUnlockCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     unlockCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
