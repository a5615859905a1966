package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lunora-app/lunora/internal/services"
)

const requestDayLayout = "2006-01-02"

type periodLogRequest struct {
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	FlowIntensity string `json:"flow_intensity"`
}

type symptomRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

type temperatureRequest struct {
	Date    string  `json:"date"`
	Celsius float64 `json:"celsius"`
}

func (handler *Handler) ListPeriodLogs(c *fiber.Ctx) error {
	logs, err := handler.tracker.ListPeriodLogs(currentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(logs)
}

func (handler *Handler) CreatePeriodLog(c *fiber.Ctx) error {
	input, err := handler.parsePeriodLogRequest(c)
	if err != nil {
		return err
	}

	log, err := handler.tracker.AddPeriodLog(currentUserID(c), input)
	if err != nil {
		return mapLogInputError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(log)
}

func (handler *Handler) ReplacePeriodLog(c *fiber.Ctx) error {
	logID, err := parseIDParam(c)
	if err != nil {
		return err
	}
	input, err := handler.parsePeriodLogRequest(c)
	if err != nil {
		return err
	}

	log, err := handler.tracker.ReplacePeriodLog(currentUserID(c), logID, input)
	if err != nil {
		return mapLogInputError(err)
	}
	return c.JSON(log)
}

func (handler *Handler) DeletePeriodLog(c *fiber.Ctx) error {
	logID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := handler.tracker.DeletePeriodLog(currentUserID(c), logID); err != nil {
		return mapLogInputError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) CreateSymptom(c *fiber.Ctx) error {
	var req symptomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	date, err := handler.parseDay(req.Date)
	if err != nil {
		return err
	}

	entry, err := handler.tracker.AddSymptom(currentUserID(c), date, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSymptomName) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) CreateTemperature(c *fiber.Ctx) error {
	var req temperatureRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	date, err := handler.parseDay(req.Date)
	if err != nil {
		return err
	}

	reading, err := handler.tracker.AddTemperature(currentUserID(c), date, req.Celsius)
	if err != nil {
		if errors.Is(err, services.ErrImplausibleTemperature) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(reading)
}

func (handler *Handler) parsePeriodLogRequest(c *fiber.Ctx) (services.PeriodLogInput, error) {
	var req periodLogRequest
	if err := c.BodyParser(&req); err != nil {
		return services.PeriodLogInput{}, fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	start, err := handler.parseDay(req.StartDate)
	if err != nil {
		return services.PeriodLogInput{}, err
	}
	end, err := handler.parseDay(req.EndDate)
	if err != nil {
		return services.PeriodLogInput{}, err
	}

	return services.PeriodLogInput{
		StartDate:     start,
		EndDate:       end,
		FlowIntensity: req.FlowIntensity,
	}, nil
}

func (handler *Handler) parseDay(value string) (time.Time, error) {
	day, err := time.ParseInLocation(requestDayLayout, value, handler.location)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "dates must use YYYY-MM-DD")
	}
	return day, nil
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || raw == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(raw), nil
}

func mapLogInputError(err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidLogRange),
		errors.Is(err, services.ErrInvalidFlowIntensity):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrPeriodLogNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return err
	}
}
