package main

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/777sanket/LinkManager-Backend/dto"
	"github.com/777sanket/LinkManager-Backend/model"
	"github.com/777sanket/LinkManager-Backend/repo"
	"github.com/777sanket/LinkManager-Backend/tracker"
	"github.com/777sanket/LinkManager-Backend/util"
)

func linkToDto(link *model.Link, now time.Time) dto.LinkDto {
	out := dto.LinkDto{
		ID:            link.ID,
		OriginalLink:  link.OriginalLink,
		ShortenedLink: link.ShortenedLink,
		Remark:        link.Remark,
		DateCreated:   link.DateCreated.Format(time.RFC3339),
		Clicks:        link.Clicks,
		Status:        util.LinkStatus(link, now),
	}
	if link.ExpirationTime != nil {
		out.ExpirationTime = link.ExpirationTime.Format(time.RFC3339)
	}
	return out
}

func createLinkHandler(c *fiber.Ctx) error {
	var req dto.CreateLinkRequestDto
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot parse body"})
	}
	if req.OriginalLink == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Original link is required"})
	}
	if !util.IsUrlValid(req.OriginalLink) {
		return c.Status(400).JSON(fiber.Map{"error": "Original link is not a valid URL"})
	}

	var expiration *time.Time
	if req.ExpirationTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.ExpirationTime)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid expiration time"})
		}
		expiration = &parsed
	}

	code := util.GenShortCode()
	link := model.Link{
		UserID:         authedUserID(c),
		OriginalLink:   req.OriginalLink,
		ShortCode:      code,
		ShortenedLink:  cfg.BaseURL + "/" + code,
		Remark:         req.Remark,
		ExpirationTime: expiration,
	}

	if err := links.Create(c.Context(), &link); err != nil {
		logger.Error("CreateLinkFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	logger.Info("LinkCreated", zap.Uint("linkId", link.ID), zap.String("shortCode", code))
	return c.Status(201).JSON(fiber.Map{
		"message": "Link created successfully",
		"link":    linkToDto(&link, time.Now()),
	})
}

func editLinkHandler(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid link id"})
	}

	var req dto.EditLinkRequestDto
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot parse body"})
	}

	link, err := links.FindByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Link not found"})
		}
		logger.Error("EditLinkLookupFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	if link.UserID != authedUserID(c) {
		return c.Status(403).JSON(fiber.Map{"error": "Unauthorized to edit this link"})
	}

	if req.OriginalLink != "" {
		if !util.IsUrlValid(req.OriginalLink) {
			return c.Status(400).JSON(fiber.Map{"error": "Original link is not a valid URL"})
		}
		link.OriginalLink = req.OriginalLink
	}
	if req.Remark != "" {
		link.Remark = req.Remark
	}
	if req.ExpirationTime != nil {
		if *req.ExpirationTime == "" {
			link.ExpirationTime = nil
		} else {
			parsed, err := time.Parse(time.RFC3339, *req.ExpirationTime)
			if err != nil {
				return c.Status(400).JSON(fiber.Map{"error": "Invalid expiration time"})
			}
			link.ExpirationTime = &parsed
		}
	}

	if err := links.Save(c.Context(), link); err != nil {
		logger.Error("EditLinkSaveFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	cachedLinks.Invalidate(c.Context(), link.ShortCode)

	return c.Status(200).JSON(fiber.Map{
		"message": "Link updated successfully",
		"link":    linkToDto(link, time.Now()),
	})
}

func listLinksHandler(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	sortBy := c.Query("sortBy", "dateCreated")
	order := c.Query("order", "desc")
	statusSort := c.Query("statusSort")
	search := c.Query("search")

	all, err := links.FindAllByUser(c.Context(), authedUserID(c), sortBy, order, search)
	if err != nil {
		logger.Error("ListLinksFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}

	now := time.Now()
	response := make([]dto.LinkDto, 0, len(all))
	for i := range all {
		response = append(response, linkToDto(&all[i], now))
	}

	if statusSort == "activeFirst" || statusSort == "inactiveFirst" {
		first := "active"
		if statusSort == "inactiveFirst" {
			first = "inactive"
		}
		sort.SliceStable(response, func(i, j int) bool {
			return response[i].Status == first && response[j].Status != first
		})
	}

	total := int64(len(response))
	start := (page - 1) * limit
	if start > len(response) {
		start = len(response)
	}
	end := start + limit
	if end > len(response) {
		end = len(response)
	}
	response = response[start:end]

	return c.Status(200).JSON(fiber.Map{
		"message": "Links retrieved successfully",
		"links":   response,
		"pagination": dto.PaginationDto{
			CurrentPage:  page,
			TotalPages:   (total + int64(limit) - 1) / int64(limit),
			TotalRecords: total,
		},
	})
}

func deleteLinkHandler(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid link id"})
	}

	link, err := links.FindByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Link not found"})
		}
		logger.Error("DeleteLinkLookupFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	if link.UserID != authedUserID(c) {
		return c.Status(403).JSON(fiber.Map{"error": "Unauthorized to delete this link"})
	}

	// click events go with the link, same policy as user deletion
	if err := links.DeleteCascade(c.Context(), link.ID); err != nil {
		logger.Error("DeleteLinkFailed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": "Server error"})
	}
	cachedLinks.Invalidate(c.Context(), link.ShortCode)

	logger.Info("LinkDeleted", zap.Uint("linkId", link.ID))
	return c.Status(200).JSON(fiber.Map{"message": "Link deleted successfully"})
}

func redirectHandler(c *fiber.Ctx) error {
	shortCode := c.Params("shortCode")
	started := time.Now()

	ctx, span := tracer.Start(c.Context(), "redirect")
	defer span.End()

	visit := tracker.Visit{
		UserAgent:    c.Get("User-Agent"),
		ForwardedFor: c.Get("X-Forwarded-For"),
		RemoteAddr:   c.IP(),
	}

	outcome, err := recorder.Record(ctx, shortCode, visit)
	if err != nil {
		metrics.ObserveHistogram(redirectDuration, time.Since(started).Seconds(), "error")
		switch {
		case errors.Is(err, tracker.ErrLinkNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Link not found"})
		case errors.Is(err, tracker.ErrLinkExpired):
			return c.Status(410).JSON(fiber.Map{"error": "Link is inactive (expired)"})
		default:
			logger.Error("RecordClickFailed", zap.String("shortCode", shortCode), zap.Error(err))
			return c.Status(500).JSON(fiber.Map{"error": "Server error"})
		}
	}

	publishClick(shortCode, outcome)
	metrics.ObserveHistogram(redirectDuration, time.Since(started).Seconds(), "ok")

	logger.Info("Redirect",
		zap.String("shortCode", shortCode),
		zap.Int64("clicks", outcome.Clicks),
		zap.String("deviceType", outcome.Event.DeviceType))
	return c.Redirect(outcome.OriginalLink, fiber.StatusFound)
}

// publishClick fans the recorded click out to the analytics queue. Best
// effort only: the visitor is already being redirected.
func publishClick(shortCode string, outcome *tracker.Outcome) {
	message := dto.ClickMessage{
		ID:            util.GenUUID(),
		LinkID:        outcome.Event.LinkID,
		UserID:        outcome.Event.UserID,
		ShortCode:     shortCode,
		OriginalLink:  outcome.Event.OriginalLink,
		ShortenedLink: outcome.Event.ShortenedLink,
		DeviceType:    outcome.Event.DeviceType,
	}
	go func() {
		if err := rabbitmq.Publish(context.Background(), cfg.ClickQueue, message); err != nil {
			logger.Warn("PublishClickFailed", zap.String("shortCode", shortCode), zap.Error(err))
		}
	}()
}
