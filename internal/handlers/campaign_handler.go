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

type CampaignHandler struct {
	campaignService *service.CampaignService
}

func NewCampaignHandler(campaignService *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

func (h *CampaignHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/campaigns", middleware.RequireAuth(), middleware.RequireRole("brand"))

	group.Post("/", h.CreateCampaign)
	group.Get("/", h.ListCampaigns)
}

func (h *CampaignHandler) CreateCampaign(c fiber.Ctx) error {
	var campaign models.Campaign
	if err := c.Bind().Body(&campaign); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := h.campaignService.CreateCampaign(ctx, middleware.UserID(c), &campaign)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if strings.Contains(err.Error(), "validation failed") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Failed to create campaign: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create campaign",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"campaign": created,
		},
	})
}

func (h *CampaignHandler) ListCampaigns(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	campaigns, err := h.campaignService.ListCampaigns(ctx, middleware.UserID(c))
	if err != nil {
		log.Printf("Failed to list campaigns: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list campaigns",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"campaigns": campaigns,
		},
	})
}
