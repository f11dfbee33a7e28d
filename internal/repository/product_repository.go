package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yourorg/productsvc/internal/id"
	"github.com/yourorg/productsvc/internal/models"
)

var tracer = otel.Tracer("product-repository")

// DBTX is the subset of *pgxkit.DB the repository uses. Every call checks a
// connection out of the pool and returns it when the call (or, for Query,
// the rows) completes.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	insertProductSQL = `INSERT INTO products (id, name, category, description, price, image_url, is_trend, keywords, trending_percentage)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + productColumns

	getProductByIDSQL   = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	getProductByNameSQL = `SELECT ` + productColumns + ` FROM products WHERE name = $1 LIMIT 1`
	listProductsSQL     = `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id DESC`
	deleteProductSQL    = `DELETE FROM products WHERE id = $1`
)

type ProductRepository struct {
	db    DBTX
	newID func() string
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{
		db:    db,
		newID: id.NewProductID,
	}
}

func (r *ProductRepository) Create(ctx context.Context, req *models.CreateProductRequest) (product *models.Product, err error) {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("product.name", req.Name),
			attribute.String("product.category", req.Category),
			attribute.Float64("product.price", req.Price),
		),
	)
	defer func() { endSpan(span, err) }()

	rows, err := r.db.Query(ctx, insertProductSQL,
		r.newID(),
		req.Name,
		req.Category,
		req.Description,
		floatToNumeric(req.Price),
		req.ImageURL,
		req.IsTrend,
		req.Keywords,
		floatToNumeric(req.TrendingPercentage),
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	product, err = collectProduct(rows)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	span.SetAttributes(attribute.String("product.id", product.ID))
	return product, nil
}

// GetByID returns ErrNotFound without a round trip for ids this service
// could not have issued.
func (r *ProductRepository) GetByID(ctx context.Context, productID string) (product *models.Product, err error) {
	ctx, span := tracer.Start(ctx, "repository.GetByID",
		trace.WithAttributes(attribute.String("product.id", productID)),
	)
	defer func() { endSpan(span, err) }()

	if !id.HasValidFormat(productID, id.ProductPrefix) {
		return nil, ErrNotFound
	}

	rows, err := r.db.Query(ctx, getProductByIDSQL, productID)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return collectProduct(rows)
}

// GetByName looks up a product by exact, case-sensitive name.
func (r *ProductRepository) GetByName(ctx context.Context, name string) (product *models.Product, err error) {
	ctx, span := tracer.Start(ctx, "repository.GetByName",
		trace.WithAttributes(attribute.String("product.name", name)),
	)
	defer func() { endSpan(span, err) }()

	rows, err := r.db.Query(ctx, getProductByNameSQL, name)
	if err != nil {
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return collectProduct(rows)
}

// List returns every product, newest first.
func (r *ProductRepository) List(ctx context.Context) (products []*models.Product, err error) {
	ctx, span := tracer.Start(ctx, "repository.List")
	defer func() { endSpan(span, err) }()

	rows, err := r.db.Query(ctx, listProductsSQL)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[productRow])
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products = make([]*models.Product, len(results))
	for i, result := range results {
		if products[i], err = result.toModel(); err != nil {
			return nil, err
		}
	}

	span.SetAttributes(attribute.Int("product.count", len(products)))
	return products, nil
}

// Update writes only the fields present in req and refreshes updated_at.
// A request with nothing to write returns the stored row untouched.
func (r *ProductRepository) Update(ctx context.Context, productID string, req *models.UpdateProductRequest) (product *models.Product, err error) {
	columns := updateColumns(req)
	if len(columns) == 0 || !id.HasValidFormat(productID, id.ProductPrefix) {
		return r.GetByID(ctx, productID)
	}

	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.String("product.id", productID),
			attribute.Int("product.changed_columns", len(columns)),
		),
	)
	defer func() { endSpan(span, err) }()

	query, args, err := buildUpdateQuery(productID, columns)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return collectProduct(rows)
}

// Delete removes the row if it exists. Deleting a missing id is not an error.
func (r *ProductRepository) Delete(ctx context.Context, productID string) (err error) {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.String("product.id", productID)),
	)
	defer func() { endSpan(span, err) }()

	if !id.HasValidFormat(productID, id.ProductPrefix) {
		return nil
	}

	tag, err := r.db.Exec(ctx, deleteProductSQL, productID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	span.SetAttributes(attribute.Int64("product.rows_affected", tag.RowsAffected()))
	return nil
}

// Ping runs a trivial query to confirm the pool can reach the database.
func (r *ProductRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.db.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func collectProduct(rows pgx.Rows) (*models.Product, error) {
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[productRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.toModel()
}

func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
