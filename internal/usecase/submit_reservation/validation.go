package submit_reservation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
)

var validate = validator.New()

// validateRequest проверяет форму запроса; строки нормализуются на месте
func validateRequest(req *Request, maxNotes int) (domain.TimeRange, error) {
	if req == nil {
		return domain.TimeRange{}, fmt.Errorf("%w: empty request", ErrValidationFailed)
	}

	req.GuestName = strings.TrimSpace(req.GuestName)
	req.GuestEmail = strings.TrimSpace(req.GuestEmail)
	req.GuestPhone = trimOptional(req.GuestPhone)
	req.Notes = trimOptional(req.Notes)

	if err := validate.Struct(req); err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return domain.TimeRange{}, fmt.Errorf("%w: startTime and endTime are required", ErrValidationFailed)
	}

	tr, err := domain.NewTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	if req.Notes != nil && maxNotes > 0 && utf8.RuneCountInString(*req.Notes) > maxNotes {
		return domain.TimeRange{}, fmt.Errorf("%w: notes longer than %d characters", ErrValidationFailed, maxNotes)
	}

	return tr, nil
}

// validateCapacity проверяет количество игроков по вместимости поля
func validateCapacity(req *Request, field *domain.Field) error {
	if req.PlayerCount == nil {
		return nil
	}
	if !field.AllowsPlayers(*req.PlayerCount) {
		return fmt.Errorf("%w: playerCount %d exceeds field capacity", ErrValidationFailed, *req.PlayerCount)
	}
	return nil
}

// trimOptional обрезает пробелы; пустая строка становится nil
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
