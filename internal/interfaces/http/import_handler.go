package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/application/importer"
	"github.com/voyagetech/voyagecrm-api/pkg/logger"
)

// ImportHandler runs spreadsheet/CSV bulk imports and serves the per-kind
// sample templates. Each request gets its own import session.
type ImportHandler struct {
	creator *importer.UseCaseCreator
	log     *logger.Logger
}

// NewImportHandler builds the handler.
func NewImportHandler(creator *importer.UseCaseCreator, log *logger.Logger) *ImportHandler {
	return &ImportHandler{creator: creator, log: log}
}

// Run POST /api/imports/:kind (multipart, file field "file")
//
// Returns the full per-row report. Only a parse failure aborts the run;
// row-level failures are part of the 200 response.
func (h *ImportHandler) Run(c *fiber.Ctx) error {
	kind, err := importer.ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_KIND", Message: err.Error()})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: `multipart field "file" is required`})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: err.Error()})
	}
	defer f.Close()

	session := importer.NewSession(kind, h.creator, h.creator, h.log)
	report, err := session.Run(c.UserContext(), fileHeader.Filename, f)
	if err != nil {
		if errors.Is(err, importer.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PARSE_ERROR", Message: err.Error()})
	}
	return c.JSON(report)
}

// Sample GET /api/imports/:kind/sample
func (h *ImportHandler) Sample(c *fiber.Ctx) error {
	kind, err := importer.ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_KIND", Message: err.Error()})
	}
	data, filename, err := importer.Sample(kind)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
