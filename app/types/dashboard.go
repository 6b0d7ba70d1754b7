package types

import (
	"errors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

const defaultAnalyticsWindowDays = 30

type AnalyticsRequest struct {
	WindowDays int
}

func NewAnalyticsRequestFromContext(ctx echo.Context) (*AnalyticsRequest, error) {
	req := &AnalyticsRequest{WindowDays: defaultAnalyticsWindowDays}

	raw := strings.TrimSpace(ctx.QueryParam("days"))
	if raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.WindowDays = days
	}

	return req, nil
}

func (r *AnalyticsRequest) Validate() error {
	if r.WindowDays <= 0 || r.WindowDays > 365 {
		return errors.New("days must be between 1 and 365")
	}
	return nil
}
