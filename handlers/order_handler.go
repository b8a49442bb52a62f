package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/kevotieno/craft_agency/database"
	"github.com/kevotieno/craft_agency/middleware"
	"github.com/kevotieno/craft_agency/models"
	"github.com/kevotieno/craft_agency/notifications"
)

type PlaceOrderRequest struct {
	ServiceType   string `json:"service_type" validate:"required"`
	ServiceDetail string `json:"service_detail" validate:"required"`
}

// PlaceOrder records a service request and notifies the operator mailbox.
// The email is best-effort and never fails the order.
func PlaceOrder(c *fiber.Ctx) error {
	user := c.Locals("authUser").(*middleware.AuthUser)

	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	order := models.Order{
		UserID:        user.ID,
		ServiceType:   req.ServiceType,
		ServiceDetail: req.ServiceDetail,
	}
	if err := database.DB.Create(&order).Error; err != nil {
		log.Printf("🔥 orders: insert failed for user %d: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to place order"})
	}

	go notifications.NotifyOperator(
		"New Order Placed",
		fmt.Sprintf("<p>New order: <strong>%s</strong> — %s<br>by %s %s (%s)</p>",
			order.ServiceType, order.ServiceDetail, user.FirstName, user.LastName, user.Email),
	)

	return c.Status(fiber.StatusCreated).JSON(order)
}

func GetOrders(c *fiber.Ctx) error {
	var orders []models.Order
	if err := database.DB.Preload("User").Order("created_at DESC").Find(&orders).Error; err != nil {
		log.Printf("🔥 orders: listing failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load orders"})
	}
	return c.JSON(orders)
}
