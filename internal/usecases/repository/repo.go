package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/aishwaryaDel/tesa-ai-template/internal/usecases/domain"
)

// useCaseColumns is the canonical column order for scanning full records.
const useCaseColumns = `id, title, short_description, full_description, department, status,
owner_name, owner_email, business_impact, technology_stack, tags, internal_links,
related_use_case_ids, application_url, created_at, updated_at`

// UseCaseRepository provides Postgres persistence for use-case records.
// Structured fields (technology_stack, tags, internal_links,
// related_use_case_ids) are stored as JSON text columns.
type UseCaseRepository struct {
	db *sql.DB
}

// NewUseCaseRepository creates a new use-case repository.
func NewUseCaseRepository(db *sql.DB) *UseCaseRepository {
	return &UseCaseRepository{db: db}
}

// FindAll returns every use case, newest first.
func (r *UseCaseRepository) FindAll(ctx context.Context) ([]domain.UseCase, error) {
	q := fmt.Sprintf(`SELECT %s FROM use_cases ORDER BY created_at DESC`, useCaseColumns)

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, &domain.StorageError{Op: "list use cases", Err: err}
	}
	defer rows.Close()

	out := make([]domain.UseCase, 0, 16)
	for rows.Next() {
		uc, err := scanUseCase(rows)
		if err != nil {
			return nil, &domain.StorageError{Op: "scan use case", Err: err}
		}
		out = append(out, *uc)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "list use cases", Err: err}
	}
	return out, nil
}

// FindByID returns a single use case or domain.ErrNotFound.
func (r *UseCaseRepository) FindByID(ctx context.Context, id string) (*domain.UseCase, error) {
	q := fmt.Sprintf(`SELECT %s FROM use_cases WHERE id = $1`, useCaseColumns)

	uc, err := scanUseCase(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.StorageError{Op: "find use case", Err: err}
	}
	return uc, nil
}

// Create inserts a new record, assigning id and timestamps. A nil
// related_use_case_ids defaults to an empty list here, the single source of
// truth for that rule.
func (r *UseCaseRepository) Create(ctx context.Context, req domain.CreateUseCaseRequest) (*domain.UseCase, error) {
	related := req.RelatedUseCaseIDs
	if related == nil {
		related = []string{}
	}

	stack, err := json.Marshal(req.TechnologyStack)
	if err != nil {
		return nil, &domain.StorageError{Op: "encode technology_stack", Err: err}
	}
	tags, err := json.Marshal(req.Tags)
	if err != nil {
		return nil, &domain.StorageError{Op: "encode tags", Err: err}
	}
	links, err := json.Marshal(req.InternalLinks)
	if err != nil {
		return nil, &domain.StorageError{Op: "encode internal_links", Err: err}
	}
	relatedJSON, err := json.Marshal(related)
	if err != nil {
		return nil, &domain.StorageError{Op: "encode related_use_case_ids", Err: err}
	}

	q := fmt.Sprintf(`
INSERT INTO use_cases (
	id, title, short_description, full_description, department, status,
	owner_name, owner_email, business_impact, technology_stack, tags,
	internal_links, related_use_case_ids, application_url, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
RETURNING %s`, useCaseColumns)

	uc, err := scanUseCase(r.db.QueryRowContext(ctx, q,
		uuid.NewString(),
		req.Title,
		req.ShortDescription,
		req.FullDescription,
		req.Department,
		req.Status,
		req.OwnerName,
		req.OwnerEmail,
		nullableString(req.BusinessImpact),
		stack,
		tags,
		links,
		relatedJSON,
		nullableString(req.ApplicationURL),
	))
	if err != nil {
		return nil, &domain.StorageError{Op: "create use case", Err: err}
	}
	return uc, nil
}

// Update applies a partial update with an explicit per-field presence check;
// absent fields never touch the stored value. updated_at is refreshed on every
// successful update.
func (r *UseCaseRepository) Update(ctx context.Context, id string, req domain.UpdateUseCaseRequest) (*domain.UseCase, error) {
	set := make([]string, 0, 14)
	args := make([]any, 0, 15)
	bind := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		bind("title", *req.Title)
	}
	if req.ShortDescription != nil {
		bind("short_description", *req.ShortDescription)
	}
	if req.FullDescription != nil {
		bind("full_description", *req.FullDescription)
	}
	if req.Department != nil {
		bind("department", *req.Department)
	}
	if req.Status != nil {
		bind("status", *req.Status)
	}
	if req.OwnerName != nil {
		bind("owner_name", *req.OwnerName)
	}
	if req.OwnerEmail != nil {
		bind("owner_email", *req.OwnerEmail)
	}
	if req.BusinessImpact != nil {
		bind("business_impact", *req.BusinessImpact)
	}
	if req.TechnologyStack != nil {
		data, err := json.Marshal(req.TechnologyStack)
		if err != nil {
			return nil, &domain.StorageError{Op: "encode technology_stack", Err: err}
		}
		bind("technology_stack", data)
	}
	if req.Tags != nil {
		data, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, &domain.StorageError{Op: "encode tags", Err: err}
		}
		bind("tags", data)
	}
	if req.InternalLinks != nil {
		data, err := json.Marshal(req.InternalLinks)
		if err != nil {
			return nil, &domain.StorageError{Op: "encode internal_links", Err: err}
		}
		bind("internal_links", data)
	}
	if req.RelatedUseCaseIDs != nil {
		data, err := json.Marshal(req.RelatedUseCaseIDs)
		if err != nil {
			return nil, &domain.StorageError{Op: "encode related_use_case_ids", Err: err}
		}
		bind("related_use_case_ids", data)
	}
	if req.ApplicationURL != nil {
		bind("application_url", *req.ApplicationURL)
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	q := fmt.Sprintf(`UPDATE use_cases SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), useCaseColumns)

	uc, err := scanUseCase(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.StorageError{Op: "update use case", Err: err}
	}
	return uc, nil
}

// Delete removes a record. It reports whether a record existed.
func (r *UseCaseRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted string
	err := r.db.QueryRowContext(ctx, `DELETE FROM use_cases WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, &domain.StorageError{Op: "delete use case", Err: err}
	}
	return true, nil
}

// Exists reports whether a record with the given id is persisted.
func (r *UseCaseRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM use_cases WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, &domain.StorageError{Op: "check use case exists", Err: err}
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUseCase(row rowScanner) (*domain.UseCase, error) {
	var (
		uc             domain.UseCase
		businessImpact sql.NullString
		applicationURL sql.NullString
		stack          []byte
		tags           []byte
		links          []byte
		related        []byte
	)

	err := row.Scan(
		&uc.ID,
		&uc.Title,
		&uc.ShortDescription,
		&uc.FullDescription,
		&uc.Department,
		&uc.Status,
		&uc.OwnerName,
		&uc.OwnerEmail,
		&businessImpact,
		&stack,
		&tags,
		&links,
		&related,
		&applicationURL,
		&uc.CreatedAt,
		&uc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if businessImpact.Valid {
		uc.BusinessImpact = &businessImpact.String
	}
	if applicationURL.Valid {
		uc.ApplicationURL = &applicationURL.String
	}
	if err := json.Unmarshal(stack, &uc.TechnologyStack); err != nil {
		return nil, fmt.Errorf("decode technology_stack: %w", err)
	}
	if err := json.Unmarshal(tags, &uc.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if err := json.Unmarshal(links, &uc.InternalLinks); err != nil {
		return nil, fmt.Errorf("decode internal_links: %w", err)
	}
	if err := json.Unmarshal(related, &uc.RelatedUseCaseIDs); err != nil {
		return nil, fmt.Errorf("decode related_use_case_ids: %w", err)
	}

	return &uc, nil
}

func nullableString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
