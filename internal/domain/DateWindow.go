package domain

import (
	"fmt"
	"time"

	"github.com/vfg2006/snapchat-ads-report/pkg/utils"
)

// MaxWindowSpanDays é o limite exclusivo do intervalo entre início e fim.
const MaxWindowSpanDays = 30

// DateWindow representa o período do relatório, com as duas datas inclusivas.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// ParseDateWindow interpreta as datas no formato YYYY-MM-DD.
func ParseDateWindow(start, end string) (DateWindow, error) {
	if start == "" || end == "" {
		return DateWindow{}, fmt.Errorf("%w: start and end dates are required", ErrInvalidWindow)
	}

	startDate, err := utils.ParseDate(start)
	if err != nil {
		return DateWindow{}, fmt.Errorf("%w: start date %q: %v", ErrInvalidWindow, start, err)
	}

	endDate, err := utils.ParseDate(end)
	if err != nil {
		return DateWindow{}, fmt.Errorf("%w: end date %q: %v", ErrInvalidWindow, end, err)
	}

	return DateWindow{Start: *startDate, End: *endDate}, nil
}

// Span retorna a quantidade de dias entre início e fim.
func (w DateWindow) Span() int {
	return int(w.End.Sub(w.Start).Hours() / 24)
}

func (w DateWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidWindow)
	}

	if w.End.Before(w.Start) {
		return fmt.Errorf("%w: end date %s is before start date %s", ErrInvalidWindow, w.EndDate(), w.StartDate())
	}

	if span := w.Span(); span >= MaxWindowSpanDays {
		return fmt.Errorf("%w (got %d days)", ErrWindowTooLarge, span)
	}

	return nil
}

func (w DateWindow) StartDate() string {
	return w.Start.Format(time.DateOnly)
}

func (w DateWindow) EndDate() string {
	return w.End.Format(time.DateOnly)
}

// Bounds converte as datas para meia-noite no fuso de relatório informado.
func (w DateWindow) Bounds(loc *time.Location) (time.Time, time.Time) {
	return atMidnight(w.Start, loc), atMidnight(w.End, loc)
}

func atMidnight(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
}
