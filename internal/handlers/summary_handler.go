package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pembukuan/internal/services"
)

// SummaryHandler serves the dashboard summary.
type SummaryHandler struct {
	summaryService services.SummaryServicer
	now            func() time.Time
}

// NewSummaryHandler creates a new SummaryHandler. A missing month or year
// defaults to the month or year of now().
func NewSummaryHandler(summaryService services.SummaryServicer, now func() time.Time) *SummaryHandler {
	if now == nil {
		now = time.Now
	}
	return &SummaryHandler{summaryService: summaryService, now: now}
}

// GetSummary handles the dashboard summary of one month
// @Summary     Period summary
// @Description Transactions of a month (newest first) with income, expense and balance totals and a per-category expense breakdown. Missing month or year default to the current ones.
// @Tags        summary
// @Accept      json
// @Produce     json
// @Param       month query int    false "Month 1-12 (default current month)"
// @Param       year  query int    false "Year (default current year)"
// @Param       owner query string false "Owner filter (All for every owner)"
// @Success     200 {object} services.PeriodSummary "Period summary"
// @Failure     400 {object} ErrorResponse "Invalid period or owner"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	period, err := services.ResolvePeriod(c.Query("month"), c.Query("year"), h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	owner, err := h.summaryService.ParseOwnerFilter(c.Query("owner"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.Summarize(services.PeriodQuery{
		Period: period,
		Owner:  owner,
		Order:  services.NewestFirst,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
