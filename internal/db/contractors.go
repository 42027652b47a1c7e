package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/contractor-intake/internal/types"
)

// CreateContractor inserts a contractor record and returns its ID.
func (db *DB) CreateContractor(ctx context.Context, record types.NormalizedRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO contractors
		   (full_name, email, phone, city, state, zip_code, country, street_address,
		    summary, notes, available, looking_for_work, preferred_contact)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id`,
		record.FullName, record.Email, record.Phone,
		record.City, record.State, record.ZipCode, record.Country, record.StreetAddress,
		record.Summary, record.Notes,
		record.Available, record.LookingForWork, record.PreferredContact,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create contractor: %w", err)
	}
	return id, nil
}

// GetContractor retrieves a contractor by ID. Returns nil when no row
// exists.
func (db *DB) GetContractor(ctx context.Context, id uuid.UUID) (*Contractor, error) {
	var c Contractor
	err := db.pool.QueryRow(ctx,
		`SELECT id, full_name, email, phone, city, state, zip_code, country,
		        street_address, summary, notes, available, looking_for_work,
		        preferred_contact, created_at, updated_at
		 FROM contractors WHERE id = $1`,
		id,
	).Scan(
		&c.ID,
		&c.Record.FullName, &c.Record.Email, &c.Record.Phone,
		&c.Record.City, &c.Record.State, &c.Record.ZipCode, &c.Record.Country,
		&c.Record.StreetAddress, &c.Record.Summary, &c.Record.Notes,
		&c.Record.Available, &c.Record.LookingForWork, &c.Record.PreferredContact,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contractor: %w", err)
	}
	return &c, nil
}

// ListContractors retrieves recent contractor records.
func (db *DB) ListContractors(ctx context.Context, limit int) ([]Contractor, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, full_name, email, phone, city, state, zip_code, country,
		        street_address, summary, notes, available, looking_for_work,
		        preferred_contact, created_at, updated_at
		 FROM contractors ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contractors: %w", err)
	}
	defer rows.Close()

	var contractors []Contractor
	for rows.Next() {
		var c Contractor
		if err := rows.Scan(
			&c.ID,
			&c.Record.FullName, &c.Record.Email, &c.Record.Phone,
			&c.Record.City, &c.Record.State, &c.Record.ZipCode, &c.Record.Country,
			&c.Record.StreetAddress, &c.Record.Summary, &c.Record.Notes,
			&c.Record.Available, &c.Record.LookingForWork, &c.Record.PreferredContact,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contractor: %w", err)
		}
		contractors = append(contractors, c)
	}
	return contractors, nil
}
