package product

import (
	"context"
	"database/sql"

	"github.com/go-faster/errors"
)

const listProductsQuery = `
	SELECT product_id, title, description, image, category, price, rating_rate, rating_count
	FROM product
	ORDER BY product_id
`

// PostgresSource reads the catalogue from the `product` table. It is an
// alternative upstream to the products API, not a cache of it.
type PostgresSource struct {
	db *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// Fetch returns every row or nothing: a bad row fails the whole load.
func (s *PostgresSource) Fetch(ctx context.Context) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx, listProductsQuery)
	if err != nil {
		return nil, errors.Wrap(&NetworkError{Err: err}, "query products")
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan product")
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(&NetworkError{Err: err}, "read products")
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var (
		description sql.NullString
		image       sql.NullString
		ratingRate  sql.NullFloat64
		ratingCount sql.NullInt64
	)
	if err := scanner.Scan(
		&p.ID,
		&p.Title,
		&description,
		&image,
		&p.Category,
		&p.Price,
		&ratingRate,
		&ratingCount,
	); err != nil {
		return Product{}, err
	}
	p.Description = description.String
	p.Image = image.String
	p.Rating = Rating{Rate: ratingRate.Float64, Count: int(ratingCount.Int64)}
	return p, nil
}
