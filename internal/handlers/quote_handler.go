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

type QuoteHandler struct {
	quoteService *service.QuoteService
}

func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

func (h *QuoteHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/quotes", middleware.RequireAuth())

	group.Post("/", h.CreateQuote, middleware.RequireRole("brand"))
	group.Get("/", h.ListQuotes)
	group.Put("/:id/respond", h.Respond, middleware.RequireRole("creator"))
	group.Put("/:id/complete", h.Complete, middleware.RequireRole("brand"))
}

func (h *QuoteHandler) CreateQuote(c fiber.Ctx) error {
	var req models.CreateQuoteRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	quote, err := h.quoteService.CreateQuote(ctx, middleware.UserID(c), &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if strings.Contains(err.Error(), "validation failed") || strings.Contains(err.Error(), "not accepting") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Failed to create quote request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create quote request",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"quote": quote,
		},
	})
}

// ListQuotes returns the caller's quote requests from whichever side they
// are on.
func (h *QuoteHandler) ListQuotes(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID := middleware.UserID(c)
	var quotes []*models.CustomQuoteRequest
	var err error
	if strings.EqualFold(middleware.UserRole(c), "creator") {
		quotes, err = h.quoteService.ListForCreator(ctx, userID)
	} else {
		quotes, err = h.quoteService.ListForBrand(ctx, userID)
	}
	if err != nil {
		log.Printf("Failed to list quote requests for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list quote requests",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"quotes": quotes,
		},
	})
}

func (h *QuoteHandler) Respond(c fiber.Ctx) error {
	var req models.RespondQuoteRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	quote, err := h.quoteService.Respond(ctx, c.Params("id"), middleware.UserID(c), &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Quote request not found",
			})
		}
		if strings.Contains(err.Error(), "must be") ||
			strings.Contains(err.Error(), "already") ||
			strings.Contains(err.Error(), "invalid") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Failed to respond to quote %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to respond to quote request",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"quote": quote,
		},
	})
}

func (h *QuoteHandler) Complete(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	quote, err := h.quoteService.Complete(ctx, c.Params("id"), middleware.UserID(c))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Quote request not found",
			})
		}
		if strings.Contains(err.Error(), "only accepted") || strings.Contains(err.Error(), "invalid") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Failed to complete quote %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to complete quote request",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"quote": quote,
		},
	})
}
