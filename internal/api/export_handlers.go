package api

import (
	"bytes"
	"encoding/csv"

	"github.com/gofiber/fiber/v2"
	"github.com/lunora-app/lunora/internal/services"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	rows, err := handler.tracker.ExportRows(currentUserID(c))
	if err != nil {
		return err
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lunora-export.csv"`)
	return c.Send(buffer.Bytes())
}
