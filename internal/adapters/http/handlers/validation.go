package handlers

import (
	"slices"

	"edilians-parkinfo/internal/adapters/persistence/models"

	"github.com/go-playground/validator/v10"
)

// newValidator registers the console's closed vocabularies (site
// codes, job functions) on top of the standard tags.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("site", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.Sites, fl.Field().String())
	})
	v.RegisterValidation("function", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.Functions, fl.Field().String())
	})
	return v
}
