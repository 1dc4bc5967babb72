package main

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/777sanket/LinkManager-Backend/dto"
)

// eventDateLayout renders click timestamps for the event list, already
// shifted into the configured reporting zone.
const eventDateLayout = "Jan 02, 2006, 15:04"

func allClickEventsHandler(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	sortBy := c.Query("sortBy", "dateClicked")
	order := c.Query("order", "desc")

	userID := authedUserID(c)
	events, err := analysis.FindPageByOwner(c.Context(), userID, sortBy, order, page, limit)
	if err != nil {
		logger.Error("ListClickEventsFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	total, err := analysis.CountByOwner(c.Context(), userID)
	if err != nil {
		logger.Error("CountClickEventsFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	response := make([]dto.ClickEventDto, 0, len(events))
	for _, ev := range events {
		response = append(response, dto.ClickEventDto{
			ID:           ev.ID,
			Date:         ev.DateClicked.In(cfg.AnalyticsZone).Format(eventDateLayout),
			OriginalLink: ev.OriginalLink,
			ShortLink:    ev.ShortenedLink,
			IPAddress:    ev.IPAddress,
			UserDevice:   ev.UserDevice,
		})
	}

	return c.Status(200).JSON(fiber.Map{
		"message":  "Analysis records retrieved successfully",
		"analyses": response,
		"pagination": dto.PaginationDto{
			CurrentPage:  page,
			TotalPages:   (total + int64(limit) - 1) / int64(limit),
			TotalRecords: total,
		},
	})
}

func totalClicksHandler(c *fiber.Ctx) error {
	total, err := aggregator.TotalClicks(c.Context(), authedUserID(c))
	if err != nil {
		logger.Error("TotalClicksFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	return c.Status(200).JSON(dto.TotalClicksResponseDto{
		Message:     "Total clicks retrieved successfully",
		TotalClicks: total,
	})
}

func dateWiseClicksHandler(c *fiber.Ctx) error {
	series, err := aggregator.ClicksByDate(c.Context(), authedUserID(c))
	if err != nil {
		logger.Error("DateWiseClicksFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	return c.Status(200).JSON(dto.DateWiseClicksResponseDto{
		Message:      "Date-wise clicks retrieved successfully",
		ClicksByDate: series,
	})
}

func deviceWiseClicksHandler(c *fiber.Ctx) error {
	buckets, err := aggregator.ClicksByDevice(c.Context(), authedUserID(c))
	if err != nil {
		logger.Error("DeviceWiseClicksFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	return c.Status(200).JSON(dto.DeviceWiseClicksResponseDto{
		Message:        "Device-wise clicks retrieved successfully",
		ClicksByDevice: buckets,
	})
}
