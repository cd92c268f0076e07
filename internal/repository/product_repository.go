package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"barbershop-api/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	ListFeatured(ctx context.Context) ([]*domain.Product, error)
}

type productRepository struct {
	db DBTX
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db DBTX) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, description, price, category, image_url, stock,
	in_stock, featured, promotion_price, promotion_active, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (*domain.Product, error) {
	product := &domain.Product{}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Category,
		&product.ImageURL,
		&product.Stock,
		&product.InStock,
		&product.Featured,
		&product.PromotionPrice,
		&product.PromotionActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	return product, err
}

// Create inserts a new product and fills in the generated ID.
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (name, description, price, category, image_url, stock,
			in_stock, featured, promotion_price, promotion_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.ImageURL,
		product.Stock,
		product.InStock,
		product.Featured,
		product.PromotionPrice,
		product.PromotionActive,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.ID)

	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// Update persists all mutable product fields.
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category = $5, image_url = $6,
		    stock = $7, in_stock = $8, featured = $9, promotion_price = $10,
		    promotion_active = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.ImageURL,
		product.Stock,
		product.InStock,
		product.Featured,
		product.PromotionPrice,
		product.PromotionActive,
		product.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete removes a product.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// FindByID retrieves a product by ID.
func (r *productRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// List retrieves all products, newest first.
func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY created_at DESC`, productColumns)
	return r.queryProducts(ctx, query)
}

// ListFeatured retrieves products flagged for the storefront front page.
func (r *productRepository) ListFeatured(ctx context.Context) ([]*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE featured = TRUE ORDER BY created_at DESC`, productColumns)
	return r.queryProducts(ctx, query)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
