package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rgsalon/salonpos-api/internal/application/service"
	"github.com/rgsalon/salonpos-api/internal/presentation/http/dto/response"
)

// ExportHandler handles order export and receipt printing requests
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func exportFilename(ext string) string {
	return fmt.Sprintf("orders-%s.%s", time.Now().Format("2006-01-02"), ext)
}

// ExportCSV streams all orders as a CSV download
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	data, err := h.exportService.ExportOrdersCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("csv")))
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportXLSX streams all orders as an Excel download
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	data, err := h.exportService.ExportOrdersXLSX(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("xlsx")))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// Receipt renders the printable bill for one order
func (h *ExportHandler) Receipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	html, err := h.exportService.ReceiptForOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// DisplayID returns an order's current human-facing sequence number
func (h *ExportHandler) DisplayID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	displayID, err := h.exportService.DisplayIDFor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Display ID derived successfully", gin.H{"display_id": displayID})
}
