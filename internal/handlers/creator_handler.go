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

type CreatorHandler struct {
	creatorService *service.CreatorService
}

func NewCreatorHandler(creatorService *service.CreatorService) *CreatorHandler {
	return &CreatorHandler{
		creatorService: creatorService,
	}
}

func (h *CreatorHandler) RegisterRoutes(app *fiber.App) {
	// Self-service onboarding routes. Registered before the public :id
	// route so "me" is never captured as a profile ID.
	me := app.Group("/api/creators/me", middleware.RequireAuth(), middleware.RequireRole("creator"))
	me.Get("/", h.GetMe)
	me.Put("/steps/:step", h.SaveOnboardingStep)
	me.Post("/publish", h.Publish)

	// Public discovery routes.
	public := app.Group("/api/creators")
	public.Get("/", h.ListPublished)
	public.Get("/:id", h.GetPublicProfile)
}

func (h *CreatorHandler) ListPublished(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	creators, err := h.creatorService.ListPublished(ctx)
	if err != nil {
		log.Printf("Failed to list creators: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list creators",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"creators": creators,
		},
	})
}

func (h *CreatorHandler) GetPublicProfile(c fiber.Ctx) error {
	id := c.Params("id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	creator, err := h.creatorService.GetPublicProfile(ctx, id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Creator profile not found",
			})
		}
		if strings.Contains(err.Error(), "invalid") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid creator ID",
			})
		}
		log.Printf("Failed to get creator %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve creator profile",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"creator": creator,
		},
	})
}

func (h *CreatorHandler) GetMe(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	creator, err := h.creatorService.GetProfile(ctx, middleware.UserID(c))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Creator profile not found",
			})
		}
		log.Printf("Failed to get creator profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve creator profile",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"creator": creator,
		},
	})
}

func (h *CreatorHandler) SaveOnboardingStep(c fiber.Ctx) error {
	step := models.OnboardingStep(c.Params("step"))

	var req models.OnboardingStepRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	creator, err := h.creatorService.SaveOnboardingStep(ctx, middleware.UserID(c), step, &req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") ||
			strings.Contains(err.Error(), "unknown onboarding step") ||
			strings.Contains(err.Error(), "not yet reachable") ||
			strings.Contains(err.Error(), "must start with") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Failed to save onboarding step %s: %v", step, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save onboarding step",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"creator": creator,
		},
	})
}

func (h *CreatorHandler) Publish(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	creator, err := h.creatorService.Publish(ctx, middleware.UserID(c))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Creator profile not found",
			})
		}
		if strings.Contains(err.Error(), "not complete") || strings.Contains(err.Error(), "suspended") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Failed to publish creator profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to publish creator profile",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"creator": creator,
		},
	})
}
