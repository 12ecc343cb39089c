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

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

func (h *LikeHandler) RegisterRoutes(app *fiber.App) {
	creators := app.Group("/api/creators", middleware.RequireAuth())
	creators.Post("/:creatorId/like", h.Like)
	creators.Delete("/:creatorId/like", h.Unlike)

	app.Get("/api/likes", h.ListLiked, middleware.RequireAuth())
}

func (h *LikeHandler) Like(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.likeService.Like(ctx, middleware.UserID(c), c.Params("creatorId")); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Creator not found",
			})
		}
		if strings.Contains(err.Error(), "invalid") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid creator ID",
			})
		}
		log.Printf("Failed to like creator %s: %v", c.Params("creatorId"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to like creator",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Creator liked",
	})
}

func (h *LikeHandler) Unlike(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.likeService.Unlike(ctx, middleware.UserID(c), c.Params("creatorId")); err != nil {
		if strings.Contains(err.Error(), "invalid") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid creator ID",
			})
		}
		log.Printf("Failed to unlike creator %s: %v", c.Params("creatorId"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to unlike creator",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Creator unliked",
	})
}

func (h *LikeHandler) ListLiked(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	creators, err := h.likeService.ListLiked(ctx, middleware.UserID(c))
	if err != nil {
		log.Printf("Failed to list liked creators: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list liked creators",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"creators": creators,
		},
	})
}
