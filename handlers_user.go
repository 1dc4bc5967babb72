package main

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/777sanket/LinkManager-Backend/dto"
	"github.com/777sanket/LinkManager-Backend/model"
	"github.com/777sanket/LinkManager-Backend/repo"
)

func registerHandler(c *fiber.Ctx) error {
	var req dto.RegisterRequestDto
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot parse body"})
	}

	if req.Name == "" || req.Email == "" || req.Mobile == "" || req.Password == "" || req.ConfirmPassword == "" {
		return c.Status(400).JSON(fiber.Map{"error": "All fields are required"})
	}
	if req.Password != req.ConfirmPassword {
		return c.Status(406).JSON(fiber.Map{"error": "Passwords do not match"})
	}

	if _, err := users.FindByEmail(c.Context(), req.Email); err == nil {
		return c.Status(409).JSON(fiber.Map{"error": "User already exists"})
	} else if !errors.Is(err, repo.ErrNotFound) {
		logger.Error("RegisterLookupFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	user := model.User{Name: req.Name, Email: req.Email, Mobile: req.Mobile, Password: string(hashed)}
	if err := users.Create(c.Context(), &user); err != nil {
		logger.Error("RegisterCreateFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	logger.Info("UserRegistered", zap.Uint("userId", user.ID))
	return c.Status(201).JSON(fiber.Map{"message": "User registered successfully"})
}

func loginHandler(c *fiber.Ctx) error {
	var req dto.LoginRequestDto
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot parse body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email and password are required"})
	}

	// same response for unknown email and wrong password
	user, err := users.FindByEmail(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(400).JSON(fiber.Map{"error": "Wrong Username or Password"})
		}
		logger.Error("LoginLookupFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Wrong Username or Password"})
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": user.ID,
		"email":  user.Email,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		logger.Error("LoginSignFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	logger.Info("UserLoggedIn", zap.Uint("userId", user.ID))
	return c.Status(200).JSON(fiber.Map{"message": "Login successful", "token": signed})
}

func logoutHandler(c *fiber.Ctx) error {
	// stateless tokens; the client just drops the token
	return c.Status(200).JSON(fiber.Map{"message": "Logged out successfully"})
}

func getUserHandler(c *fiber.Ctx) error {
	user, err := users.FindByID(c.Context(), authedUserID(c))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		logger.Error("GetUserFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	return c.Status(200).JSON(fiber.Map{"user": user})
}

func editUserHandler(c *fiber.Ctx) error {
	var req dto.EditUserRequestDto
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot parse body"})
	}
	if req.Name == "" && req.Email == "" && req.Mobile == "" {
		return c.Status(400).JSON(fiber.Map{"error": "At least one field is required to update"})
	}

	user, err := users.FindByID(c.Context(), authedUserID(c))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		logger.Error("EditUserLookupFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Mobile != "" {
		user.Mobile = req.Mobile
	}

	if err := users.Save(c.Context(), user); err != nil {
		logger.Error("EditUserSaveFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	return c.Status(200).JSON(fiber.Map{"message": "User updated successfully", "user": user})
}

func deleteUserHandler(c *fiber.Ctx) error {
	userID := authedUserID(c)
	if err := users.DeleteCascade(c.Context(), userID); err != nil {
		logger.Error("DeleteUserFailed", zap.Uint("userId", userID), zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	logger.Info("UserDeleted", zap.Uint("userId", userID))
	return c.Status(200).JSON(fiber.Map{"message": "User and related data deleted successfully"})
}
