package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nhalm/canonlog"
	"github.com/yourorg/productsvc/internal/apperrors"
	"github.com/yourorg/productsvc/internal/models"
)

// TimestampLayout renders UTC timestamps with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// ProductService defines only the methods the API layer needs from the product service.
type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetAllProducts(ctx context.Context) ([]*models.Product, error)
	GetProductByID(ctx context.Context, productID string) (*models.Product, error)
	UpdateProduct(ctx context.Context, productID string, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProductByID(ctx context.Context, productID string) error
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	productSvc ProductService
	health     HealthChecker
}

// NewHandler wires the HTTP layer to one service instance. health may be nil,
// in which case /health always reports OK.
func NewHandler(productSvc ProductService, health HealthChecker) *Handler {
	return &Handler{
		productSvc: productSvc,
		health:     health,
	}
}

// CreateProduct godoc
// @Summary Create a product
// @Tags Product
// @Accept json
// @Produce json
// @Param api-version header string true "API version"
// @Param product body CreateProductRequest true "Product to create"
// @Success 201 {object} ProductEnvelope
// @Failure 400 {object} ErrorEnvelope
// @Router /product [post]
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := decodeJSONBody(r, &req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := ValidateStruct(req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_name": req.Name,
	})

	product, err := h.productSvc.CreateProduct(r.Context(), req.toModel())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_id": product.ID,
	})

	Created(w, fmt.Sprintf("Product %s created successfully", product.Name), convertToProductResponse(product))
}

// GetAllProducts godoc
// @Summary List all products, newest first
// @Tags Product
// @Produce json
// @Param api-version header string true "API version"
// @Success 200 {object} ProductListEnvelope
// @Router /product [get]
func (h *Handler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.GetAllProducts(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = convertToProductResponse(p)
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_count": len(responses),
	})

	Success(w, "All products fetched successfully", responses)
}

// GetProduct godoc
// @Summary Get a product by id
// @Tags Product
// @Produce json
// @Param api-version header string true "API version"
// @Param id path string true "Product ID"
// @Success 200 {object} ProductEnvelope
// @Failure 404 {object} ErrorEnvelope
// @Router /product/{id} [get]
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_id": id,
	})

	product, err := h.productSvc.GetProductByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	if product == nil {
		handleServiceError(w, r, apperrors.NewNotFoundError("product", id))
		return
	}

	Success(w, "Product fetched successfully", convertToProductResponse(product))
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Only fields present in the body are changed.
// @Tags Product
// @Accept json
// @Produce json
// @Param api-version header string true "API version"
// @Param id path string true "Product ID"
// @Param product body UpdateProductRequest true "Fields to change"
// @Success 200 {object} ProductEnvelope
// @Failure 400 {object} ErrorEnvelope
// @Failure 404 {object} ErrorEnvelope
// @Router /product/{id} [put]
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_id": id,
	})

	var req UpdateProductRequest
	if err := decodeJSONBody(r, &req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := ValidateStruct(req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), id, req.toModel())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, fmt.Sprintf("Product %s updated successfully", product.Name), convertToProductResponse(product))
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Product
// @Param api-version header string true "API version"
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} ErrorEnvelope
// @Router /product/{id} [delete]
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_id": id,
	})

	if err := h.productSvc.DeleteProductByID(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	NoContent(w)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.health.Ping(ctx); err != nil {
			canonlog.AddRequestError(r.Context(), err)
			handleServiceError(w, r, apperrors.NewServiceUnavailableError("store unreachable"))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func Ping(w http.ResponseWriter, _ *http.Request) {
	renderJSON(w, http.StatusOK, map[string]string{"ping": "pong"})
}

// decodeJSONBody maps malformed bodies to validation errors, naming the
// offending field when the decoder reports one.
func decodeJSONBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.NewValidationError(typeErr.Field, fmt.Sprintf("must be of type %s", typeErr.Type.String()))
	}
	if errors.Is(err, io.EOF) {
		return apperrors.NewValidationError("", "request body is required")
	}
	return apperrors.NewValidationError("", "invalid request body")
}

func convertToProductResponse(product *models.Product) ProductResponse {
	return ProductResponse{
		ID:                 product.ID,
		Name:               product.Name,
		Category:           product.Category,
		Description:        product.Description,
		Price:              product.Price,
		ImageURL:           product.ImageURL,
		IsTrend:            product.IsTrend,
		Keywords:           product.Keywords,
		TrendingPercentage: product.TrendingPercentage,
		CreatedAt:          product.CreatedAt.UTC().Format(TimestampLayout),
		UpdatedAt:          product.UpdatedAt.UTC().Format(TimestampLayout),
	}
}
