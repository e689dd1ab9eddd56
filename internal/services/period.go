package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "pembukuan/internal/errors"
)

// Bounds of an acceptable report year.
const (
	MinYear = 1900
	MaxYear = 2100
)

// Period identifies one calendar month.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// NewPeriod validates month and year.
func NewPeriod(month, year int) (Period, error) {
	p := Period{Month: month, Year: year}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// CurrentPeriod returns the month containing now.
func CurrentPeriod(now time.Time) Period {
	return Period{Month: int(now.Month()), Year: now.Year()}
}

// Validate rejects months outside 1-12 and years outside MinYear-MaxYear.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return apperrors.WithMessage(apperrors.ErrInvalidPeriod, fmt.Sprintf("month must be between 1 and 12, got %d", p.Month))
	}
	if p.Year < MinYear || p.Year > MaxYear {
		return apperrors.WithMessage(apperrors.ErrInvalidPeriod, fmt.Sprintf("year must be between %d and %d, got %d", MinYear, MaxYear, p.Year))
	}
	return nil
}

// Start is midnight UTC on the first day of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End is midnight UTC on the first day of the following month. The period
// covers dates d with Start() <= d < End().
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

func (p Period) String() string {
	return fmt.Sprintf("%02d/%d", p.Month, p.Year)
}

// ResolvePeriod parses the month and year of a dashboard request. A missing
// value defaults to the month or year of now; a value that is present but
// not a valid integer in range is rejected.
func ResolvePeriod(month, year string, now time.Time) (Period, error) {
	current := CurrentPeriod(now)
	p := current

	if strings.TrimSpace(month) != "" {
		m, err := parsePeriodPart("month", month)
		if err != nil {
			return Period{}, err
		}
		p.Month = m
	}
	if strings.TrimSpace(year) != "" {
		y, err := parsePeriodPart("year", year)
		if err != nil {
			return Period{}, err
		}
		p.Year = y
	}

	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// RequirePeriod parses the month and year of an export request. Both are
// mandatory; nothing is defaulted.
func RequirePeriod(month, year string) (Period, error) {
	if strings.TrimSpace(month) == "" {
		return Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "month is required")
	}
	if strings.TrimSpace(year) == "" {
		return Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "year is required")
	}

	m, err := parsePeriodPart("month", month)
	if err != nil {
		return Period{}, err
	}
	y, err := parsePeriodPart("year", year)
	if err != nil {
		return Period{}, err
	}
	return NewPeriod(m, y)
}

func parsePeriodPart(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidPeriod, fmt.Sprintf("%s must be an integer, got %q", name, value))
	}
	return n, nil
}
