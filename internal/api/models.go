package api

import "github.com/yourorg/productsvc/internal/models"

// CreateProductRequest represents the request body for creating a product.
// @Description Request payload for creating a product
type CreateProductRequest struct {
	Name               string   `json:"name" validate:"required,max=255" example:"Widget"`
	Category           string   `json:"category" validate:"required,max=100" example:"Tools"`
	Description        string   `json:"description" validate:"required" example:"A widget"`
	Price              *float64 `json:"price" validate:"required,gt=0" example:"9.99"`
	ImageURL           *string  `json:"imageUrl"`
	IsTrend            bool     `json:"isTrend"`
	Keywords           *string  `json:"keywords" validate:"omitempty,max=500"`
	TrendingPercentage *float64 `json:"trendingPercentage" validate:"omitempty,gte=0,lte=100" example:"12.5"`
}

// UpdateProductRequest represents the request body for updating a product.
// Omitted fields keep their stored value; null clears imageUrl and keywords.
// @Description Partial update payload for a product
type UpdateProductRequest struct {
	Name               models.Optional[string]  `json:"name" validate:"omitempty,max=255" swaggertype:"string"`
	Category           models.Optional[string]  `json:"category" validate:"omitempty,max=100" swaggertype:"string"`
	Description        models.Optional[string]  `json:"description" swaggertype:"string"`
	Price              models.Optional[float64] `json:"price" validate:"omitempty,gt=0" swaggertype:"number"`
	ImageURL           models.Optional[string]  `json:"imageUrl" swaggertype:"string"`
	IsTrend            models.Optional[bool]    `json:"isTrend" swaggertype:"boolean"`
	Keywords           models.Optional[string]  `json:"keywords" validate:"omitempty,max=500" swaggertype:"string"`
	TrendingPercentage models.Optional[float64] `json:"trendingPercentage" validate:"omitempty,gte=0,lte=100" swaggertype:"number"`
}

// ProductResponse represents a product resource in API responses.
// @Description Product resource
type ProductResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	ImageURL           *string `json:"imageUrl"`
	IsTrend            bool    `json:"isTrend"`
	Keywords           *string `json:"keywords"`
	TrendingPercentage float64 `json:"trendingPercentage"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

func (r *CreateProductRequest) toModel() *models.CreateProductRequest {
	req := &models.CreateProductRequest{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		IsTrend:     r.IsTrend,
		Keywords:    r.Keywords,
	}
	if r.Price != nil {
		req.Price = *r.Price
	}
	if r.TrendingPercentage != nil {
		req.TrendingPercentage = *r.TrendingPercentage
	}
	return req
}

func (r *UpdateProductRequest) toModel() *models.UpdateProductRequest {
	return &models.UpdateProductRequest{
		Name:               r.Name,
		Category:           r.Category,
		Description:        r.Description,
		Price:              r.Price,
		ImageURL:           r.ImageURL,
		IsTrend:            r.IsTrend,
		Keywords:           r.Keywords,
		TrendingPercentage: r.TrendingPercentage,
	}
}
