package services

import (
	"errors"

	apperrors "pembukuan/internal/errors"
	"pembukuan/internal/logger"
	"pembukuan/internal/report"
)

// reportService feeds chronological period summaries into the PDF renderer.
type reportService struct {
	summaries SummaryServicer
	renderer  *report.Renderer
}

// NewReportService creates a new ReportServicer.
func NewReportService(summaries SummaryServicer, renderer *report.Renderer) ReportServicer {
	return &reportService{summaries: summaries, renderer: renderer}
}

func (s *reportService) summarize(req ExportRequest) (*PeriodSummary, report.Input, error) {
	summary, err := s.summaries.Summarize(PeriodQuery{
		Period: req.Period,
		Owner:  req.Owner,
		Order:  OldestFirst,
	})
	if err != nil {
		return nil, report.Input{}, err
	}

	input := report.Input{
		Month:        summary.Period.Month,
		Year:         summary.Period.Year,
		Owner:        summary.Owner,
		Transactions: summary.Transactions,
		TotalIncome:  summary.Totals.Income,
		TotalExpense: summary.Totals.Expense,
	}
	return summary, input, nil
}

// Preview returns the report content as data without rendering a PDF.
func (s *reportService) Preview(req ExportRequest) (*ReportPreview, error) {
	summary, input, err := s.summarize(req)
	if err != nil {
		return nil, err
	}

	money := s.renderer.Money()
	return &ReportPreview{
		Title:    s.renderer.Title(input),
		Filename: s.renderer.Filename(input),
		Summary:  summary,
		Formatted: FormattedTotals{
			Income:  money.Format(summary.Totals.Income),
			Expense: money.Format(summary.Totals.Expense),
			Balance: money.Format(summary.Totals.Balance),
		},
	}, nil
}

// Export renders the report of req as a PDF document.
func (s *reportService) Export(req ExportRequest) (*report.Document, error) {
	_, input, err := s.summarize(req)
	if err != nil {
		return nil, err
	}

	doc, err := s.renderer.Render(input)
	if err != nil {
		logger.Get().Errorw("failed to render report",
			"error", err,
			"period", req.Period.String(),
			"transactions", len(input.Transactions),
		)
		if errors.Is(err, report.ErrTotalsMismatch) {
			return nil, apperrors.Wrap(apperrors.ErrReportTotalsMismatch, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrReportRenderFailed, err)
	}
	return doc, nil
}
