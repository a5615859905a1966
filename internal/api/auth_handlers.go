package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lunora-app/lunora/internal/services"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type recoverRequest struct {
	RecoveryCode string `json:"recovery_code"`
	NewPassword  string `json:"new_password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	user, recoveryCode, err := handler.auth.RegisterUser(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		case errors.Is(err, services.ErrInvalidEmail), errors.Is(err, services.ErrPasswordTooShort):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		default:
			return err
		}
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"email": user.Email,
		// Shown exactly once; only its hash is kept.
		"recovery_code": recoveryCode,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	user, err := handler.auth.Authenticate(req.Email, req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"email": user.Email})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) RecoverPassword(c *fiber.Ctx) error {
	var req recoverRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	user, err := handler.auth.FindUserByRecoveryCode(req.RecoveryCode)
	if err != nil {
		if errors.Is(err, services.ErrRecoveryCodeNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "recovery code not recognized")
		}
		return err
	}

	freshCode, err := handler.auth.ResetPassword(user, req.NewPassword)
	if err != nil {
		if errors.Is(err, services.ErrPasswordTooShort) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.JSON(fiber.Map{"recovery_code": freshCode})
}
