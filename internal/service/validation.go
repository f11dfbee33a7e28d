package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yourorg/productsvc/internal/apperrors"
	"github.com/yourorg/productsvc/internal/models"
)

const (
	maxNameLength     = 255
	maxCategoryLength = 100
	maxKeywordsLength = 500
)

type fieldErrors map[string]string

func (f fieldErrors) add(field, message string) {
	if _, exists := f[field]; !exists {
		f[field] = message
	}
}

func (f fieldErrors) err() error {
	if ve := apperrors.NewFieldsValidationError(f); ve != nil {
		return ve
	}
	return nil
}

// normalizeCreate trims and rounds a create request, collecting every field
// failure before returning.
func normalizeCreate(req *models.CreateProductRequest) (models.CreateProductRequest, error) {
	out := *req
	errs := fieldErrors{}

	out.Name = requiredText(errs, "name", req.Name, maxNameLength)
	out.Category = requiredText(errs, "category", req.Category, maxCategoryLength)
	out.Description = requiredText(errs, "description", req.Description, 0)
	out.Price = price(errs, req.Price)
	out.TrendingPercentage = percentage(errs, req.TrendingPercentage)
	out.ImageURL = optionalText(req.ImageURL)
	out.Keywords = keywords(errs, req.Keywords)

	return out, errs.err()
}

// normalizeUpdate applies the create rules to every field that carries a
// value. Blank keywords or image URLs become absent so they leave the stored
// value alone.
func normalizeUpdate(req *models.UpdateProductRequest) (models.UpdateProductRequest, error) {
	out := *req
	errs := fieldErrors{}

	if v, ok := req.Name.Get(); ok {
		out.Name = models.Some(requiredText(errs, "name", v, maxNameLength))
	}
	if v, ok := req.Category.Get(); ok {
		out.Category = models.Some(requiredText(errs, "category", v, maxCategoryLength))
	}
	if v, ok := req.Description.Get(); ok {
		out.Description = models.Some(requiredText(errs, "description", v, 0))
	}
	if v, ok := req.Price.Get(); ok {
		out.Price = models.Some(price(errs, v))
	}
	if v, ok := req.TrendingPercentage.Get(); ok {
		out.TrendingPercentage = models.Some(percentage(errs, v))
	}
	if v, ok := req.ImageURL.Get(); ok {
		out.ImageURL = fromPointer(optionalText(&v))
	}
	if v, ok := req.Keywords.Get(); ok {
		out.Keywords = fromPointer(keywords(errs, &v))
	}

	return out, errs.err()
}

func requiredText(errs fieldErrors, field, value string, maxLen int) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs.add(field, "must not be empty or whitespace only")
		return trimmed
	}
	if maxLen > 0 && utf8.RuneCountInString(trimmed) > maxLen {
		errs.add(field, fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return trimmed
}

func price(errs fieldErrors, v float64) float64 {
	if v <= 0 {
		errs.add("price", "must be greater than 0")
		return v
	}
	rounded := models.Round2(v)
	if rounded <= 0 {
		errs.add("price", "must be at least 0.01")
	}
	return rounded
}

func percentage(errs fieldErrors, v float64) float64 {
	if v < 0 || v > 100 {
		errs.add("trendingPercentage", "must be between 0 and 100")
		return v
	}
	return models.Round2(v)
}

func optionalText(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func keywords(errs fieldErrors, v *string) *string {
	trimmed := optionalText(v)
	if trimmed != nil && utf8.RuneCountInString(*trimmed) > maxKeywordsLength {
		errs.add("keywords", fmt.Sprintf("must be at most %d characters", maxKeywordsLength))
	}
	return trimmed
}

func fromPointer(v *string) models.Optional[string] {
	if v == nil {
		return models.Optional[string]{}
	}
	return models.Some(*v)
}
