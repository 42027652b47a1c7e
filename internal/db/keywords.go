package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/contractor-intake/internal/types"
)

// GetOrCreateKeyword implements the create-or-get contract for keyword
// tags: the row matching (name, category) case-insensitively is returned,
// creating it first if needed. Concurrent callers proposing the same new
// tag race on the unique index; the loser's insert affects no rows and
// the follow-up select finds the winner's row.
func (db *DB) GetOrCreateKeyword(ctx context.Context, name string, category types.KeywordCategory) (*KeywordRow, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown keyword category: %s", category)
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO keywords (name, category)
		 VALUES ($1, $2)
		 ON CONFLICT (lower(name), category) DO NOTHING`,
		name, category,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert keyword %q: %w", name, err)
	}

	var row KeywordRow
	err = db.pool.QueryRow(ctx,
		`SELECT id, name, category, created_at
		 FROM keywords
		 WHERE lower(name) = lower($1) AND category = $2`,
		name, category,
	).Scan(&row.ID, &row.Name, &row.Category, &row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch keyword %q: %w", name, err)
	}
	return &row, nil
}

// LinkContractorKeyword associates a keyword with a contractor. Linking
// the same pair twice is a no-op.
func (db *DB) LinkContractorKeyword(ctx context.Context, contractorID, keywordID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO contractor_keywords (contractor_id, keyword_id)
		 VALUES ($1, $2)
		 ON CONFLICT (contractor_id, keyword_id) DO NOTHING`,
		contractorID, keywordID,
	)
	if err != nil {
		return fmt.Errorf("failed to link keyword: %w", err)
	}
	return nil
}

// ListContractorKeywords retrieves the keywords linked to a contractor.
func (db *DB) ListContractorKeywords(ctx context.Context, contractorID uuid.UUID) ([]KeywordRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT k.id, k.name, k.category, k.created_at
		 FROM keywords k
		 JOIN contractor_keywords ck ON ck.keyword_id = k.id
		 WHERE ck.contractor_id = $1
		 ORDER BY k.category, k.name`,
		contractorID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contractor keywords: %w", err)
	}
	defer rows.Close()

	var keywords []KeywordRow
	for rows.Next() {
		var k KeywordRow
		if err := rows.Scan(&k.ID, &k.Name, &k.Category, &k.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan keyword: %w", err)
		}
		keywords = append(keywords, k)
	}
	return keywords, nil
}

// GetKeywordByName looks up a keyword by case-insensitive name and
// category. Returns nil when no row exists.
func (db *DB) GetKeywordByName(ctx context.Context, name string, category types.KeywordCategory) (*KeywordRow, error) {
	var row KeywordRow
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, category, created_at
		 FROM keywords
		 WHERE lower(name) = lower($1) AND category = $2`,
		name, category,
	).Scan(&row.ID, &row.Name, &row.Category, &row.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get keyword: %w", err)
	}
	return &row, nil
}

// SaveContractorKeywords runs create-or-get for every proposed keyword
// and links the results to the contractor.
func (db *DB) SaveContractorKeywords(ctx context.Context, contractorID uuid.UUID, keywords types.CategorizedKeywords) error {
	for _, category := range types.AllCategories() {
		for _, kw := range keywords.ForCategory(category) {
			row, err := db.GetOrCreateKeyword(ctx, kw.Name, category)
			if err != nil {
				return err
			}
			if err := db.LinkContractorKeyword(ctx, contractorID, row.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
