package main

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

func RequestCounterMiddleware(c *fiber.Ctx) error {
	metrics.IncCounter(requestPerSecond, c.Method(), c.Path())
	return c.Next()
}

func ResponseStatusCodeMiddleware(c *fiber.Ctx) error {
	err := c.Next()
	statusCode := c.Response().StatusCode()
	if statusCode >= 200 && statusCode < 300 {
		metrics.IncGauge(TwoXXStatusCode, c.Method(), c.Path(), strconv.Itoa(statusCode))
	}
	if statusCode >= 400 && statusCode < 500 {
		logger.Info("ResponseStatusCodeMiddleware", zap.Int("code", statusCode), zap.String("path", c.Path()))
		metrics.IncGauge(FourXXStatusCode, c.Method(), c.Path(), strconv.Itoa(statusCode))
	}
	if statusCode >= 500 {
		metrics.IncGauge(FiveXXStatusCode, c.Method(), c.Path(), strconv.Itoa(statusCode))
	}
	return err
}

// AuthMiddleware validates the JWT from the Authorization header and puts
// the authenticated user id into the request locals.
func AuthMiddleware(c *fiber.Ctx) error {
	raw := c.Get("Authorization")
	if raw == "" {
		return c.Status(401).JSON(fiber.Map{"error": "This action is not allowed"})
	}
	raw = strings.TrimPrefix(raw, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		logger.Warn("JWTVerificationFailed", zap.Error(err))
		return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
	}
	userID, ok := claims["userId"].(float64)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	c.Locals("userID", uint(userID))
	return c.Next()
}

func authedUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}
