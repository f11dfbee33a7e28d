package repository

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/yourorg/productsvc/internal/models"
)

const productColumns = "id, name, category, description, price, image_url, is_trend, keywords, trending_percentage, created_at, updated_at"

// productRow mirrors one row of the products table. Columns are matched by
// the db tag, so the select list order does not matter.
type productRow struct {
	ID                 string         `db:"id"`
	Name               string         `db:"name"`
	Category           string         `db:"category"`
	Description        string         `db:"description"`
	Price              pgtype.Numeric `db:"price"`
	ImageURL           *string        `db:"image_url"`
	IsTrend            bool           `db:"is_trend"`
	Keywords           *string        `db:"keywords"`
	TrendingPercentage pgtype.Numeric `db:"trending_percentage"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

func (r productRow) toModel() (*models.Product, error) {
	price, err := numericToFloat(r.Price)
	if err != nil {
		return nil, fmt.Errorf("product %s price: %w", r.ID, err)
	}
	trending, err := numericToFloat(r.TrendingPercentage)
	if err != nil {
		return nil, fmt.Errorf("product %s trending_percentage: %w", r.ID, err)
	}

	return &models.Product{
		ID:                 r.ID,
		Name:               r.Name,
		Category:           r.Category,
		Description:        r.Description,
		Price:              price,
		ImageURL:           r.ImageURL,
		IsTrend:            r.IsTrend,
		Keywords:           r.Keywords,
		TrendingPercentage: trending,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}, nil
}

func numericToFloat(n pgtype.Numeric) (float64, error) {
	if !n.Valid {
		return 0, fmt.Errorf("unexpected NULL numeric")
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return 0, fmt.Errorf("non-finite numeric")
	}

	coef := n.Int
	if coef == nil {
		coef = new(big.Int)
	}
	return decimal.NewFromBigInt(coef, n.Exp).Round(models.Scale).InexactFloat64(), nil
}

func floatToNumeric(v float64) pgtype.Numeric {
	d := decimal.NewFromFloat(v).Round(models.Scale)
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// updateColumns converts a partial update into the columns it changes.
// Absent fields are left out; null clears the nullable columns only.
func updateColumns(req *models.UpdateProductRequest) map[string]any {
	cols := make(map[string]any)

	if v, ok := req.Name.Get(); ok {
		cols["name"] = v
	}
	if v, ok := req.Category.Get(); ok {
		cols["category"] = v
	}
	if v, ok := req.Description.Get(); ok {
		cols["description"] = v
	}
	if v, ok := req.Price.Get(); ok {
		cols["price"] = floatToNumeric(v)
	}
	if v, ok := req.IsTrend.Get(); ok {
		cols["is_trend"] = v
	}
	if v, ok := req.TrendingPercentage.Get(); ok {
		cols["trending_percentage"] = floatToNumeric(v)
	}
	if req.ImageURL.IsPresent() {
		cols["image_url"] = nullableString(req.ImageURL)
	}
	if req.Keywords.IsPresent() {
		cols["keywords"] = nullableString(req.Keywords)
	}

	return cols
}

func nullableString(o models.Optional[string]) *string {
	v, ok := o.Get()
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}
