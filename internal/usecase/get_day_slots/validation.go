package get_day_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
)

// resolveDay строит границы дня в тайм-зоне запроса или в тайм-зоне по умолчанию
func resolveDay(req *Request, defaultLoc *time.Location) (domain.TimeRange, error) {
	if req.FieldID != nil && *req.FieldID <= 0 {
		return domain.TimeRange{}, fmt.Errorf("%w: fieldId must be positive", ErrInvalidInput)
	}

	loc := defaultLoc
	if tz := strings.TrimSpace(req.Timezone); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return domain.TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
		}
		loc = parsed
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		return domain.TimeRange{}, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	day, err := domain.ParseDay(date, loc)
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return day, nil
}
