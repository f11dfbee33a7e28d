package service

import (
	"context"
	"errors"

	"github.com/yourorg/productsvc/internal/apperrors"
	"github.com/yourorg/productsvc/internal/models"
	"github.com/yourorg/productsvc/internal/repository"
)

const productResource = "product"

type ProductRepository interface {
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetByID(ctx context.Context, productID string) (*models.Product, error)
	GetByName(ctx context.Context, name string) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
	Update(ctx context.Context, productID string, req *models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, productID string) error
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// CreateProduct rejects a name that is already taken. The lookup and the
// insert are separate round trips, so two concurrent creates with the same
// name can both succeed.
func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	normalized, err := normalizeCreate(req)
	if err != nil {
		return nil, err
	}

	taken, err := s.nameTaken(ctx, normalized.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewDuplicateNameError(productResource, normalized.Name)
	}

	return s.repo.Create(ctx, &normalized)
}

// GetAllProducts returns products newest first. An empty table yields an
// empty, non-nil slice.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*models.Product{}
	}
	return products, nil
}

// GetProductByID returns (nil, nil) when no product has the id.
func (s *ProductService) GetProductByID(ctx context.Context, productID string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return product, nil
}

// UpdateProduct applies only the fields present in req. When nothing would
// change, the stored product is returned as is and updated_at keeps its value.
func (s *ProductService) UpdateProduct(ctx context.Context, productID string, req *models.UpdateProductRequest) (*models.Product, error) {
	normalized, err := normalizeUpdate(req)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(productResource, productID)
		}
		return nil, err
	}

	if name, ok := normalized.Name.Get(); ok && name != current.Name {
		taken, err := s.nameTaken(ctx, name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewDuplicateNameError(productResource, name)
		}
	}

	if normalized.IsEmpty() {
		return current, nil
	}

	updated, err := s.repo.Update(ctx, productID, &normalized)
	if err != nil {
		// deleted between the existence check and the write
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(productResource, productID)
		}
		return nil, err
	}

	return updated, nil
}

func (s *ProductService) DeleteProductByID(ctx context.Context, productID string) error {
	if _, err := s.repo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFoundError(productResource, productID)
		}
		return err
	}

	return s.repo.Delete(ctx, productID)
}

func (s *ProductService) nameTaken(ctx context.Context, name string) (bool, error) {
	if _, err := s.repo.GetByName(ctx, name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
