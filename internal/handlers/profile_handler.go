package handlers

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/c00p75/fitness-league-sub000/internal/middleware"
	"github.com/c00p75/fitness-league-sub000/internal/models"
	"github.com/c00p75/fitness-league-sub000/internal/services"
)

const maxAvatarSizeBytes = 5 * 1024 * 1024

type avatarUploader interface {
	UploadAvatar(ctx context.Context, userID string, file io.Reader, ext string) (*models.UserProfile, error)
}

// ProfileHandler serves the multipart avatar upload, which does not fit the
// JSON procedure transport.
type ProfileHandler struct {
	profiles avatarUploader
	notify   func(userID, path string)
}

// NewProfileHandler takes an optional notify hook that is called after the
// profile changed.
func NewProfileHandler(profiles avatarUploader, notify func(userID, path string)) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, notify: notify}
}

func (h *ProfileHandler) UploadAvatar(c *fiber.Ctx) error {
	user, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar file is required"})
	}
	if fileHeader.Size <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar file is empty"})
	}
	if fileHeader.Size > maxAvatarSizeBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar file exceeds 5MB limit"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar must be a jpg, jpeg, png, or webp file"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open avatar file"})
	}
	defer file.Close()

	profile, err := h.profiles.UploadAvatar(c.UserContext(), user.UID, file, ext)
	switch {
	case errors.Is(err, services.ErrStorageUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage service is not configured"})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload avatar"})
	}

	if h.notify != nil {
		h.notify(user.UID, "auth.getUserProfile")
	}
	return c.JSON(fiber.Map{
		"avatarUrl": profile.AvatarURL,
		"profile":   profile,
	})
}
