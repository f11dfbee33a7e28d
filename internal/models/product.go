package models

import "time"

type Product struct {
	ID                 string
	Name               string
	Category           string
	Description        string
	Price              float64
	ImageURL           *string
	IsTrend            bool
	Keywords           *string
	TrendingPercentage float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type CreateProductRequest struct {
	Name               string
	Category           string
	Description        string
	Price              float64
	ImageURL           *string
	IsTrend            bool
	Keywords           *string
	TrendingPercentage float64
}

// UpdateProductRequest is a partial update: only fields that are present
// are written. An explicit null clears ImageURL and Keywords and is ignored
// for the non-nullable fields.
type UpdateProductRequest struct {
	Name               Optional[string]
	Category           Optional[string]
	Description        Optional[string]
	Price              Optional[float64]
	ImageURL           Optional[string]
	IsTrend            Optional[bool]
	Keywords           Optional[string]
	TrendingPercentage Optional[float64]
}

// IsEmpty reports whether applying the request would leave the row unchanged.
func (r *UpdateProductRequest) IsEmpty() bool {
	return !r.Name.HasValue() &&
		!r.Category.HasValue() &&
		!r.Description.HasValue() &&
		!r.Price.HasValue() &&
		!r.IsTrend.HasValue() &&
		!r.TrendingPercentage.HasValue() &&
		!r.ImageURL.IsPresent() &&
		!r.Keywords.IsPresent()
}
