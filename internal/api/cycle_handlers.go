package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lunora-app/lunora/internal/services"
)

func (handler *Handler) CycleStats(c *fiber.Ctx) error {
	stats, _, err := handler.tracker.CycleOverview(currentUserID(c), handler.asOf(c))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (handler *Handler) Prediction(c *fiber.Ctx) error {
	_, prediction, err := handler.tracker.CycleOverview(currentUserID(c), handler.asOf(c))
	if err != nil {
		return err
	}
	return c.JSON(prediction)
}

func (handler *Handler) Calendar(c *fiber.Ctx) error {
	days, err := handler.tracker.Calendar(currentUserID(c), handler.asOf(c))
	if err != nil {
		return err
	}
	return c.JSON(days)
}

func (handler *Handler) ClassifyDay(c *fiber.Ctx) error {
	strategy, known := services.ParsePhaseStrategy(c.Query("strategy"))
	if !known {
		return fiber.NewError(fiber.StatusBadRequest, "strategy must be observed or fixed")
	}

	phase, err := handler.tracker.ClassifyDay(currentUserID(c), handler.asOf(c), strategy)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"date":     handler.asOf(c).Format(requestDayLayout),
		"phase":    phase,
		"strategy": strategy,
	})
}

func (handler *Handler) Fertility(c *fiber.Ctx) error {
	day := handler.asOf(c)
	windows, isFertile, isOvulation, err := handler.tracker.FertilityStatus(currentUserID(c), day)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"windows":          windows,
		"is_fertile_today": isFertile,
		"is_ovulation_day": isOvulation,
	})
}

func (handler *Handler) Insights(c *fiber.Ctx) error {
	insights, err := handler.tracker.Insights(currentUserID(c), handler.asOf(c))
	if err != nil {
		return err
	}
	return c.JSON(insights)
}

// asOf reads the optional ?date= reference day, defaulting to now in the
// configured location.
func (handler *Handler) asOf(c *fiber.Ctx) time.Time {
	if raw := c.Query("date"); raw != "" {
		if day, err := time.ParseInLocation(requestDayLayout, raw, handler.location); err == nil {
			return day
		}
	}
	return time.Now().In(handler.location)
}
