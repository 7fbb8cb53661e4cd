package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// bindingDetails flattens validator errors into field-level messages for
// the details list of a 400 response.
func bindingDetails(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
		return details
	}
	return []string{err.Error()}
}
