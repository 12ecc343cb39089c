package handlers

import (
	"context"
	"log"
	"strings"
	"time"

	"marketplace-service/internal/middleware"
	"marketplace-service/internal/models"
	"marketplace-service/internal/service"

	"github.com/gofiber/fiber/v3"
)

type BrandHandler struct {
	brandService *service.BrandService
}

func NewBrandHandler(brandService *service.BrandService) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
	}
}

func (h *BrandHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/brands", middleware.RequireAuth())

	group.Post("/", h.CreateProfile, middleware.RequireRole("brand"))
	group.Get("/me", h.GetMe)
	group.Put("/me", h.UpdateMe, middleware.RequireRole("brand"))
	group.Delete("/me", h.DeactivateMe, middleware.RequireRole("brand"))

	group.Put("/me/preferences", h.UpsertPreference, middleware.RequireRole("brand"))
	group.Get("/me/preferences", h.GetPreference, middleware.RequireRole("brand"))
}

func (h *BrandHandler) CreateProfile(c fiber.Ctx) error {
	var req models.CreateBrandProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	brand, err := h.brandService.CreateProfile(ctx, middleware.UserID(c), &req)
	if err != nil {
		log.Printf("Failed to create brand profile: %v", err)

		if strings.Contains(err.Error(), "already exists") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if strings.Contains(err.Error(), "validation failed") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create brand profile",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"brand": brand,
		},
	})
}

func (h *BrandHandler) GetMe(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	brand, err := h.brandService.GetProfile(ctx, middleware.UserID(c))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Brand profile not found",
			})
		}
		log.Printf("Failed to get brand profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve brand profile",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"brand": brand,
		},
	})
}

func (h *BrandHandler) UpdateMe(c fiber.Ctx) error {
	var req models.UpdateBrandProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	brand, err := h.brandService.UpdateProfile(ctx, middleware.UserID(c), &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Brand profile not found",
			})
		}
		log.Printf("Failed to update brand profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update brand profile",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"brand": brand,
		},
	})
}

func (h *BrandHandler) DeactivateMe(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.brandService.DeactivateProfile(ctx, middleware.UserID(c)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Brand profile not found",
			})
		}
		log.Printf("Failed to deactivate brand profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to deactivate brand profile",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Brand profile deactivated",
	})
}

func (h *BrandHandler) UpsertPreference(c fiber.Ctx) error {
	var req models.UpsertPreferenceRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pref, err := h.brandService.UpsertPreference(ctx, middleware.UserID(c), &req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Failed to save preference: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save preference",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"preference": pref,
		},
	})
}

func (h *BrandHandler) GetPreference(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pref, err := h.brandService.GetPreference(ctx, middleware.UserID(c))
	if err != nil {
		log.Printf("Failed to get preference: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve preference",
		})
	}
	if pref == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No preference saved",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"preference": pref,
		},
	})
}
