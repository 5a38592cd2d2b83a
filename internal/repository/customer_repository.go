package repository

import (
	"context"
	"errors"
	"fmt"

	"commerce-admin/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolation is the PostgreSQL error code for unique-constraint violations.
const uniqueViolation = "23505"

// customerRepository implements the CustomerRepository interface using PostgreSQL.
type customerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCustomerRepository creates a new PostgreSQL-backed customer repository.
func NewCustomerRepository(pool *pgxpool.Pool, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

// List retrieves all customers ordered by name ascending.
func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	query := `
		SELECT id, name, surname, email, phone, address
		FROM customers
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query customers")
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		err := rows.Scan(&c.ID, &c.Name, &c.Surname, &c.Email, &c.Phone, &c.Address)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan customer row")
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating customer rows")
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// GetByID retrieves a single customer by ID.
func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	query := `
		SELECT id, name, surname, email, phone, address
		FROM customers
		WHERE id = $1
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Surname, &c.Email, &c.Phone, &c.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("customer_id", id).Msg("customer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to query customer")
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return &c, nil
}

// Create inserts a new customer and returns the stored record.
func (r *customerRepository) Create(ctx context.Context, req *model.CustomerRequest) (*model.Customer, error) {
	query := `
		INSERT INTO customers (name, surname, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, surname, email, phone, address
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, req.Name, req.Surname, req.Email, req.Phone, req.Address).
		Scan(&c.ID, &c.Name, &c.Surname, &c.Email, &c.Phone, &c.Address)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("email", req.Email).Msg("duplicate customer email")
			return nil, model.ErrDuplicateEmail
		}
		r.logger.Error().Err(err).Str("email", req.Email).Msg("failed to create customer")
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	r.logger.Debug().Int64("customer_id", c.ID).Msg("customer created successfully")

	return &c, nil
}

// Update replaces all fields of a customer.
func (r *customerRepository) Update(ctx context.Context, id int64, req *model.CustomerRequest) (*model.Customer, error) {
	query := `
		UPDATE customers
		SET name = $1, surname = $2, email = $3, phone = $4, address = $5
		WHERE id = $6
		RETURNING id, name, surname, email, phone, address
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, req.Name, req.Surname, req.Email, req.Phone, req.Address, id).
		Scan(&c.ID, &c.Name, &c.Surname, &c.Email, &c.Phone, &c.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("customer_id", id).Msg("customer not found")
			return nil, nil
		}
		if isUniqueViolation(err) {
			r.logger.Warn().Str("email", req.Email).Msg("duplicate customer email")
			return nil, model.ErrDuplicateEmail
		}
		r.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to update customer")
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return &c, nil
}

// Delete removes a customer and returns the deleted record.
func (r *customerRepository) Delete(ctx context.Context, id int64) (*model.Customer, error) {
	query := `
		DELETE FROM customers
		WHERE id = $1
		RETURNING id, name, surname, email, phone, address
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Surname, &c.Email, &c.Phone, &c.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("customer_id", id).Msg("customer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to delete customer")
		return nil, fmt.Errorf("failed to delete customer: %w", err)
	}

	return &c, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
