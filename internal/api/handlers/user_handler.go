package handlers

import (
	"lifetube/internal/user/app"
	errprocess "lifetube/pkg/err"
	"lifetube/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// UserHandler definition user/subscription endpoints
type UserHandler struct {
	Usecase app.UserUseCase
}

// GetProfile public profile with subscriber count and owned videos
// @Summary User profile
// @Tags Users
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/users/{id} [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.Usecase.GetProfile(c.Params("id"))
	if err != nil {
		return errprocess.Reply(c, err)
	}
	return c.JSON(fiber.Map{"user": profile})
}

// Subscribe toggle a subscription to a channel
// @Summary Toggle subscription
// @Tags Users
// @Param body body object true "{\"channelId\":\"...\"}"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/users/subscribe [post]
func (h *UserHandler) Subscribe(c *fiber.Ctx) error {
	var body struct {
		ChannelID string `json:"channelId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return errprocess.Reply(c, errprocess.New(errprocess.Validation, "Channel ID is required"))
	}

	res, err := h.Usecase.ToggleSubscription(middlewares.CallerID(c), body.ChannelID)
	if err != nil {
		return errprocess.Reply(c, err)
	}
	return c.JSON(res)
}

// ListSubscriptions channels the caller subscribes to
// @Summary List subscriptions
// @Tags Users
// @Success 200 {object} map[string]interface{}
// @Router /api/users/subscriptions/list [get]
func (h *UserHandler) ListSubscriptions(c *fiber.Ctx) error {
	subs, err := h.Usecase.ListSubscriptions(middlewares.CallerID(c))
	if err != nil {
		return errprocess.Reply(c, err)
	}
	return c.JSON(fiber.Map{"subscriptions": subs})
}

// SubscriptionFeed recent videos from subscribed channels
// @Summary Subscription feed
// @Tags Users
// @Success 200 {object} map[string]interface{}
// @Router /api/users/subscriptions/feed [get]
func (h *UserHandler) SubscriptionFeed(c *fiber.Ctx) error {
	videos, err := h.Usecase.SubscriptionFeed(middlewares.CallerID(c))
	if err != nil {
		return errprocess.Reply(c, err)
	}
	return c.JSON(fiber.Map{"videos": videos})
}

// CheckSubscription boolean subscription check
// @Summary Check subscription
// @Tags Users
// @Param channelId path string true "Channel ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/users/subscriptions/check/{channelId} [get]
func (h *UserHandler) CheckSubscription(c *fiber.Ctx) error {
	subscribed, err := h.Usecase.CheckSubscription(middlewares.CallerID(c), c.Params("channelId"))
	if err != nil {
		// a failed lookup reads as "not subscribed"
		return c.JSON(fiber.Map{"subscribed": false})
	}
	return c.JSON(fiber.Map{"subscribed": subscribed})
}
