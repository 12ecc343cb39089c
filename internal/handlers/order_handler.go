package handlers

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"marketplace-service/internal/middleware"
	"marketplace-service/internal/models"
	"marketplace-service/internal/service"

	"github.com/gofiber/fiber/v3"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/orders", middleware.RequireAuth())

	group.Post("/", h.CreateOrder, middleware.RequireRole("brand"))
	group.Get("/", h.ListOrders)
	group.Get("/:id", h.GetOrder)
	group.Put("/:id/status", h.UpdateStatus)
}

func (h *OrderHandler) CreateOrder(c fiber.Ctx) error {
	var req models.CreateOrderRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	order, err := h.orderService.CreateOrder(ctx, middleware.UserID(c), &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if strings.Contains(err.Error(), "validation failed") ||
			strings.Contains(err.Error(), "does not offer") ||
			strings.Contains(err.Error(), "not accepting") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Failed to create order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"order": order,
		},
	})
}

// ListOrders returns the caller's orders from whichever side of the
// marketplace they are on.
func (h *OrderHandler) ListOrders(c fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID := middleware.UserID(c)
	var orders []*models.Order
	var err error
	if strings.EqualFold(middleware.UserRole(c), "creator") {
		orders, err = h.orderService.ListCreatorOrders(ctx, userID, page, limit)
	} else {
		orders, err = h.orderService.ListBrandOrders(ctx, userID, page, limit)
	}
	if err != nil {
		log.Printf("Failed to list orders for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list orders",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"orders": orders,
			"page":   page,
		},
	})
}

func (h *OrderHandler) GetOrder(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	order, err := h.orderService.GetOrder(ctx, c.Params("id"), middleware.UserID(c))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		if strings.Contains(err.Error(), "invalid") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid order ID",
			})
		}
		log.Printf("Failed to get order %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve order",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"order": order,
		},
	})
}

func (h *OrderHandler) UpdateStatus(c fiber.Ctx) error {
	var req models.UpdateOrderStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	order, err := h.orderService.UpdateStatus(ctx, c.Params("id"), middleware.UserID(c), &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		if strings.Contains(err.Error(), "cannot transition") ||
			strings.Contains(err.Error(), "only the") ||
			strings.Contains(err.Error(), "invalid") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Failed to update order %s status: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update order status",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"order": order,
		},
	})
}
