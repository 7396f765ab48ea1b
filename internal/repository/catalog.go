package repository

import (
	"context"

	"docmanager/internal/model"
)

// CatalogRepository is the read-only source the workspace is seeded from at
// startup. Implementations never see workspace mutations.
type CatalogRepository interface {
	// ListDocuments returns a page of documents in catalog order and the total count.
	ListDocuments(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)

	// ListFolders returns every folder in catalog order.
	ListFolders(ctx context.Context) ([]model.Folder, error)

	// ListUsers returns every known user.
	ListUsers(ctx context.Context) ([]model.User, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
