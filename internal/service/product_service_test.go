package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/productsvc/internal/apperrors"
	"github.com/yourorg/productsvc/internal/models"
	"github.com/yourorg/productsvc/internal/repository"
	"github.com/yourorg/productsvc/internal/service"
)

// MockProductRepository is a mock implementation of service.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByName(ctx context.Context, name string) (*models.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, productID string, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, productID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

var ctx = context.Background()

func widget() *models.Product {
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.Product{
		ID:          "prod_1",
		Name:        "Widget",
		Category:    "Tools",
		Description: "A widget",
		Price:       10,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	mockRepo.On("GetByName", ctx, "Widget").Return(nil, repository.ErrNotFound).Once()
	mockRepo.On("Create", ctx, mock.MatchedBy(func(req *models.CreateProductRequest) bool {
		return req.Name == "Widget" &&
			req.Category == "Tools" &&
			req.Price == 10.00 &&
			req.TrendingPercentage == 33.33 &&
			req.Keywords == nil
	})).Return(widget(), nil).Once()

	blank := "   "
	product, err := svc.CreateProduct(ctx, &models.CreateProductRequest{
		Name:               "  Widget ",
		Category:           "Tools",
		Description:        "A widget",
		Price:              9.999,
		Keywords:           &blank,
		TrendingPercentage: 33.333,
	})

	require.NoError(t, err)
	assert.Equal(t, "prod_1", product.ID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_DuplicateName(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	mockRepo.On("GetByName", ctx, "Widget").Return(widget(), nil).Once()

	product, err := svc.CreateProduct(ctx, &models.CreateProductRequest{
		Name:        "Widget",
		Category:    "Tools",
		Description: "Another widget",
		Price:       1,
	})

	assert.Nil(t, product)
	var dupErr *apperrors.DuplicateNameError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "Widget", dupErr.Name)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_ValidationFailsBeforeStore(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	_, err := svc.CreateProduct(ctx, &models.CreateProductRequest{
		Name:               " ",
		Category:           "Tools",
		Description:        "",
		Price:              0,
		TrendingPercentage: 101,
	})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, map[string]string{
		"name":               "must not be empty or whitespace only",
		"description":        "must not be empty or whitespace only",
		"price":              "must be greater than 0",
		"trendingPercentage": "must be between 0 and 100",
	}, validationErr.Fields)
	mockRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct_StoreError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	mockRepo.On("GetByName", ctx, "Widget").Return(nil, errors.New("connection refused")).Once()

	_, err := svc.CreateProduct(ctx, &models.CreateProductRequest{
		Name: "Widget", Category: "Tools", Description: "A widget", Price: 1,
	})

	assert.EqualError(t, err, "connection refused")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	a, b := widget(), widget()
	b.ID, b.Name = "prod_2", "Gadget"
	mockRepo.On("List", ctx).Return([]*models.Product{b, a}, nil).Once()

	products, err := svc.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*models.Product{b, a}, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetAllProducts_Empty(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	mockRepo.On("List", ctx).Return(nil, nil).Once()

	products, err := svc.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	mockRepo.On("GetByID", ctx, "prod_1").Return(widget(), nil).Once()
	product, err := svc.GetProductByID(ctx, "prod_1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", product.Name)

	// missing ids are absent, not an error
	mockRepo.On("GetByID", ctx, "prod_404").Return(nil, repository.ErrNotFound).Once()
	product, err = svc.GetProductByID(ctx, "prod_404")
	assert.NoError(t, err)
	assert.Nil(t, product)

	mockRepo.On("GetByID", ctx, "prod_err").Return(nil, errors.New("boom")).Once()
	_, err = svc.GetProductByID(ctx, "prod_err")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	updated := widget()
	updated.Name = "Gizmo"
	updated.Price = 12.35
	updated.UpdatedAt = updated.UpdatedAt.Add(time.Minute)

	mockRepo.On("GetByID", ctx, "prod_1").Return(widget(), nil).Once()
	mockRepo.On("GetByName", ctx, "Gizmo").Return(nil, repository.ErrNotFound).Once()
	mockRepo.On("Update", ctx, "prod_1", mock.MatchedBy(func(req *models.UpdateProductRequest) bool {
		name, _ := req.Name.Get()
		price, _ := req.Price.Get()
		return name == "Gizmo" && price == 12.35 && !req.Category.IsPresent()
	})).Return(updated, nil).Once()

	product, err := svc.UpdateProduct(ctx, "prod_1", &models.UpdateProductRequest{
		Name:  models.Some(" Gizmo "),
		Price: models.Some(12.345),
	})

	require.NoError(t, err)
	assert.Equal(t, updated, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_EmptyIsNoop(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	current := widget()
	mockRepo.On("GetByID", ctx, "prod_1").Return(current, nil).Once()

	product, err := svc.UpdateProduct(ctx, "prod_1", &models.UpdateProductRequest{})

	require.NoError(t, err)
	assert.Equal(t, current, product)
	assert.Equal(t, current.UpdatedAt, product.UpdatedAt)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_BlankKeywordsIsNoop(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	mockRepo.On("GetByID", ctx, "prod_1").Return(widget(), nil).Once()

	_, err := svc.UpdateProduct(ctx, "prod_1", &models.UpdateProductRequest{Keywords: models.Some("  ")})

	require.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	mockRepo.On("GetByID", ctx, "prod_404").Return(nil, repository.ErrNotFound).Once()

	_, err := svc.UpdateProduct(ctx, "prod_404", &models.UpdateProductRequest{Name: models.Some("Gizmo")})

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "prod_404", notFound.ID)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_DeletedConcurrently(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	mockRepo.On("GetByID", ctx, "prod_1").Return(widget(), nil).Once()
	mockRepo.On("Update", ctx, "prod_1", mock.Anything).Return(nil, repository.ErrNotFound).Once()

	_, err := svc.UpdateProduct(ctx, "prod_1", &models.UpdateProductRequest{IsTrend: models.Some(true)})

	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestProductService_UpdateProduct_DuplicateName(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	other := widget()
	other.ID, other.Name = "prod_2", "Gadget"

	mockRepo.On("GetByID", ctx, "prod_1").Return(widget(), nil).Once()
	mockRepo.On("GetByName", ctx, "Gadget").Return(other, nil).Once()

	_, err := svc.UpdateProduct(ctx, "prod_1", &models.UpdateProductRequest{Name: models.Some("Gadget")})

	var dupErr *apperrors.DuplicateNameError
	assert.ErrorAs(t, err, &dupErr)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_SameNameSkipsLookup(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	mockRepo.On("GetByID", ctx, "prod_1").Return(widget(), nil).Once()
	mockRepo.On("Update", ctx, "prod_1", mock.Anything).Return(widget(), nil).Once()

	_, err := svc.UpdateProduct(ctx, "prod_1", &models.UpdateProductRequest{Name: models.Some("Widget")})

	require.NoError(t, err)
	mockRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_Validation(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	_, err := svc.UpdateProduct(ctx, "prod_1", &models.UpdateProductRequest{
		Price:              models.Some(-1.0),
		TrendingPercentage: models.Some(100.5),
	})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 2)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestProductService_DeleteProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	mockRepo.On("GetByID", ctx, "prod_1").Return(widget(), nil).Once()
	mockRepo.On("Delete", ctx, "prod_1").Return(nil).Once()

	require.NoError(t, svc.DeleteProductByID(ctx, "prod_1"))

	// a later read finds nothing
	mockRepo.On("GetByID", ctx, "prod_1").Return(nil, repository.ErrNotFound).Once()
	product, err := svc.GetProductByID(ctx, "prod_1")
	assert.NoError(t, err)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProductByID_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := service.NewProductService(mockRepo)

	mockRepo.On("GetByID", ctx, "prod_404").Return(nil, repository.ErrNotFound).Once()

	err := svc.DeleteProductByID(ctx, "prod_404")

	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
