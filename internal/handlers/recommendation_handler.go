package handlers

import (
	"context"
	"log"
	"time"

	"marketplace-service/internal/middleware"
	"marketplace-service/internal/models"
	"marketplace-service/internal/service"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	recoService *service.RecommendationService
}

func NewRecommendationHandler(recoService *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recoService: recoService,
	}
}

func (h *RecommendationHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/brand-recommendations", middleware.RequireAuth(), middleware.RequireRole("brand"))

	group.Get("/auto", h.GetAuto)
	group.Post("/refresh", h.Refresh)
	group.Get("/smart", h.GetSmart)
}

func (h *RecommendationHandler) GetAuto(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	brandUserID := middleware.UserID(c)
	creators, err := h.recoService.GetAuto(ctx, brandUserID)
	if err != nil {
		log.Printf("Failed to get recommendations for brand %s: %v", brandUserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve recommendations",
		})
	}

	return c.Status(fiber.StatusOK).JSON(h.listResponse(ctx, brandUserID, creators))
}

func (h *RecommendationHandler) Refresh(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	brandUserID := middleware.UserID(c)
	creators, err := h.recoService.Refresh(ctx, brandUserID)
	if err != nil {
		log.Printf("Failed to refresh recommendations for brand %s: %v", brandUserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to refresh recommendations",
		})
	}

	return c.Status(fiber.StatusOK).JSON(h.listResponse(ctx, brandUserID, creators))
}

func (h *RecommendationHandler) GetSmart(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	brandUserID := middleware.UserID(c)
	creators, err := h.recoService.GetSmart(ctx, brandUserID)
	if err != nil {
		log.Printf("Failed to get smart recommendations for brand %s: %v", brandUserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve recommendations",
		})
	}

	return c.Status(fiber.StatusOK).JSON(h.listResponse(ctx, brandUserID, creators))
}

func (h *RecommendationHandler) listResponse(ctx context.Context, brandUserID string, creators []*models.CreatorProfile) fiber.Map {
	data := fiber.Map{
		"creators": creators,
		"count":    len(creators),
	}
	if generatedAt := h.recoService.GeneratedAt(ctx, brandUserID); !generatedAt.IsZero() {
		data["generatedAt"] = generatedAt.Unix()
	}
	return fiber.Map{"data": data}
}
