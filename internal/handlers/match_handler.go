package handlers

import (
	"context"
	"log"
	"strings"
	"time"

	"marketplace-service/internal/middleware"
	"marketplace-service/internal/service"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	matchService *service.MatchService
}

func NewMatchHandler(matchService *service.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

func (h *MatchHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/match", middleware.RequireAuth())
	group.Get("/brand/:brandId", h.MatchCreators, middleware.RequireRole("brand"))
}

// MatchCreators scores all published creators against the brand's stored
// preference. An optional campaignId query adds campaign-aware predicates.
func (h *MatchHandler) MatchCreators(c fiber.Ctx) error {
	brandID := c.Params("brandId")
	if brandID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Brand ID is required",
		})
	}

	// Brands may only request their own matches.
	if brandID != middleware.UserID(c) && !strings.EqualFold(middleware.UserRole(c), "admin") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Cannot request matches for another brand",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	resp, err := h.matchService.MatchCreators(ctx, brandID, c.Query("campaignId"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if strings.Contains(err.Error(), "invalid") || strings.Contains(err.Error(), "does not belong") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Failed to match creators for brand %s: %v", brandID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to match creators",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"matches": resp.Matches,
			"count":   len(resp.Matches),
		},
	})
}
