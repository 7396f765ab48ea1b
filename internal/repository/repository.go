package repository

import (
	"context"
	"fmt"

	"docmanager/internal/model"
)

// Package repository contains data access abstractions for the seed catalog.
// Implementations live in subpackages (seed, postgres) inside this directory.

// loadPageSize is how many documents LoadCatalog requests per page.
const loadPageSize = 500

// Catalog is the full content read from a CatalogRepository.
type Catalog struct {
	Documents []model.Document
	Folders   []model.Folder
	Users     []model.User
}

// LoadCatalog reads every folder, user and document page from repo.
func LoadCatalog(ctx context.Context, repo CatalogRepository) (*Catalog, error) {
	folders, err := repo.ListFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	users, err := repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	docs := make([]model.Document, 0)
	for offset := 0; ; offset += loadPageSize {
		page, err := repo.ListDocuments(ctx, PageQuery{Limit: loadPageSize, Offset: offset})
		if err != nil {
			return nil, fmt.Errorf("list documents at offset %d: %w", offset, err)
		}
		docs = append(docs, page.Items...)
		if len(page.Items) < loadPageSize || len(docs) >= page.Total {
			break
		}
	}

	return &Catalog{Documents: docs, Folders: folders, Users: users}, nil
}
