package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pembukuan/internal/services"
)

// ReportHandler serves report previews and PDF exports.
type ReportHandler struct {
	reportService  services.ReportServicer
	summaryService services.SummaryServicer
}

// NewReportHandler creates a new ReportHandler. The summary service is used
// to resolve owner filters.
func NewReportHandler(reportService services.ReportServicer, summaryService services.SummaryServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService, summaryService: summaryService}
}

func (h *ReportHandler) parseRequest(c *gin.Context) (services.ExportRequest, error) {
	period, err := services.RequirePeriod(c.Query("month"), c.Query("year"))
	if err != nil {
		return services.ExportRequest{}, err
	}
	owner, err := h.summaryService.ParseOwnerFilter(c.Query("owner"))
	if err != nil {
		return services.ExportRequest{}, err
	}
	return services.ExportRequest{Period: period, Owner: owner}, nil
}

// PreviewReport handles the JSON rendition of a report
// @Summary     Report preview
// @Description The chronological period summary with the title, filename and formatted totals the PDF would carry
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       month query int    true  "Month 1-12"
// @Param       year  query int    true  "Year"
// @Param       owner query string false "Owner filter (All for every owner)"
// @Success     200 {object} services.ReportPreview "Report preview"
// @Failure     400 {object} ErrorResponse "Invalid period or owner"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports [get]
func (h *ReportHandler) PreviewReport(c *gin.Context) {
	req, err := h.parseRequest(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	preview, err := h.reportService.Preview(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

// ExportReport handles the PDF download of a report
// @Summary     Export report
// @Description Render the month's transactions as a paginated A4 PDF
// @Tags        reports
// @Produce     application/pdf
// @Param       month query int    true  "Month 1-12"
// @Param       year  query int    true  "Year"
// @Param       owner query string false "Owner filter (All for every owner)"
// @Success     200 {file}   file          "PDF document"
// @Failure     400 {object} ErrorResponse "Invalid period or owner"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/export [get]
func (h *ReportHandler) ExportReport(c *gin.Context) {
	req, err := h.parseRequest(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	doc, err := h.reportService.Export(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.MediaType, doc.Bytes)
}
