package calendar

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/calendar/models"
)

var validate = validator.New()

// validateWindowRequest проверяет форму запроса и интервал [startDate, endDate)
func validateWindowRequest(req *models.WindowRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	req.Title = strings.TrimSpace(req.Title)

	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := domain.NewTimeRange(req.StartDate, req.EndDate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

func parseListRequest(req *models.ListWindowsRequest) (domain.WindowFilter, error) {
	filter := domain.WindowFilter{FieldID: req.FieldID}

	if req.Kind != nil {
		kind := domain.WindowKind(*req.Kind)
		if !kind.IsValid() {
			return filter, fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, *req.Kind)
		}
		filter.Kind = &kind
	}

	if req.Start != nil || req.End != nil {
		if req.Start == nil || req.End == nil {
			return filter, fmt.Errorf("%w: start and end must be given together", ErrInvalidInput)
		}
		tr, err := domain.NewTimeRange(*req.Start, *req.End)
		if err != nil {
			return filter, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Range = &tr
	}

	return filter, nil
}
