package catalog

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog/models"
)

var validate = validator.New()

func validateFieldRequest(req *models.FieldRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	req.Name = strings.TrimSpace(req.Name)
	req.FieldType = strings.TrimSpace(req.FieldType)

	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
