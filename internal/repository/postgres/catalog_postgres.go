package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"docmanager/internal/model"
	"docmanager/internal/repository"
)

// CatalogPostgres is a PostgreSQL implementation of repository.CatalogRepository.
// It only reads; the workspace owns every mutation after seeding.
type CatalogPostgres struct {
	db *sql.DB
}

// NewCatalogPostgres creates a new CatalogPostgres repository.
func NewCatalogPostgres(db *sql.DB) *CatalogPostgres {
	return &CatalogPostgres{db: db}
}

var _ repository.CatalogRepository = (*CatalogPostgres)(nil)

const documentColumns = `id, name, description, category, source_url, preview_url, size,
		created_at, updated_at, folder_id, tags, version, permissions, shared_with,
		last_accessed_at, download_count`

// ListDocuments returns documents using LIMIT/OFFSET pagination and a total count.
func (r *CatalogPostgres) ListDocuments(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	const qCount = `SELECT COUNT(*) FROM documents`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + documentColumns + `
		FROM documents
		ORDER BY created_at ASC, id ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Document]{
		Items: items,
		Total: total,
	}, nil
}

func scanDocument(rows *sql.Rows) (model.Document, error) {
	var (
		d            model.Document
		category     string
		folderID     sql.NullString
		tags         []byte
		permissions  []byte
		sharedWith   []byte
		lastAccessed sql.NullTime
	)
	if err := rows.Scan(
		&d.ID,
		&d.Name,
		&d.Description,
		&category,
		&d.SourceURL,
		&d.PreviewURL,
		&d.Size,
		&d.CreatedAt,
		&d.UpdatedAt,
		&folderID,
		&tags,
		&d.Version,
		&permissions,
		&sharedWith,
		&lastAccessed,
		&d.DownloadCount,
	); err != nil {
		return d, err
	}

	d.Category = model.Category(category)
	d.FolderID = folderID.String
	if lastAccessed.Valid {
		t := lastAccessed.Time
		d.LastAccessedAt = &t
	}
	if err := unmarshalNullable(tags, &d.Tags); err != nil {
		return d, fmt.Errorf("document %s tags: %w", d.ID, err)
	}
	if err := unmarshalNullable(sharedWith, &d.SharedWith); err != nil {
		return d, fmt.Errorf("document %s shared_with: %w", d.ID, err)
	}
	if len(permissions) > 0 {
		var p model.PermissionFlags
		if err := json.Unmarshal(permissions, &p); err != nil {
			return d, fmt.Errorf("document %s permissions: %w", d.ID, err)
		}
		d.Permissions = &p
	}
	return d, nil
}

// unmarshalNullable decodes a JSONB column, leaving dst untouched for NULL.
func unmarshalNullable(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// ListFolders returns every folder ordered by creation time.
func (r *CatalogPostgres) ListFolders(ctx context.Context) ([]model.Folder, error) {
	const q = `
		SELECT id, name, description, parent_id, created_at, updated_at, color
		FROM folders
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Folder, 0)
	for rows.Next() {
		var (
			f        model.Folder
			parentID sql.NullString
		)
		if err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.Description,
			&parentID,
			&f.CreatedAt,
			&f.UpdatedAt,
			&f.Color,
		); err != nil {
			return nil, err
		}
		f.ParentID = parentID.String
		items = append(items, f)
	}
	return items, rows.Err()
}

// ListUsers returns every user in id order.
func (r *CatalogPostgres) ListUsers(ctx context.Context) ([]model.User, error) {
	const q = `SELECT id, name, email, role FROM users ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.User, 0)
	for rows.Next() {
		var (
			u    model.User
			role string
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &role); err != nil {
			return nil, err
		}
		u.Role = model.Role(role)
		if !u.Role.Valid() {
			return nil, fmt.Errorf("user %s: %w", u.ID, model.Invalidf("unknown role %q", role))
		}
		items = append(items, u)
	}
	return items, rows.Err()
}
