package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"cinevault/internal/common"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeJSON decodes the request body into dst, rejecting unknown fields,
// then runs the struct's validate tags. All failures surface as
// common.ErrorValidation so the transport maps them to 400.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return nil
}
