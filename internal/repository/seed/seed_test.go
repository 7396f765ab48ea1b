package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docmanager/internal/model"
	"docmanager/internal/repository"
)

func TestDocuments_CategoryCounts(t *testing.T) {
	counts := map[model.Category]int{}
	for _, d := range Documents() {
		counts[d.Category]++
		assert.False(t, d.UpdatedAt.Before(d.CreatedAt), d.ID)
		assert.Nil(t, d.Permissions, d.ID)
	}
	assert.Equal(t, 2, counts[model.CategoryPDF])
	assert.Equal(t, 2, counts[model.CategoryImage])
	assert.Equal(t, 1, counts[model.CategoryVideo])
	assert.Equal(t, 1, counts[model.CategoryAudio])
	assert.Equal(t, 1, counts[model.CategorySpreadsheet])
	assert.Equal(t, 1, counts[model.CategoryText])
}

func TestDocuments_FolderReferencesExist(t *testing.T) {
	folders := map[string]bool{}
	for _, f := range Folders() {
		folders[f.ID] = true
	}
	for _, d := range Documents() {
		if d.FolderID != "" {
			assert.True(t, folders[d.FolderID], d.ID)
		}
	}
}

func TestCatalog_LoadsEverything(t *testing.T) {
	cat, err := repository.LoadCatalog(context.Background(), Catalog{})
	require.NoError(t, err)
	assert.Len(t, cat.Documents, 8)
	assert.Len(t, cat.Folders, 3)
	assert.Len(t, cat.Users, 4)
	assert.Equal(t, model.RoleAdmin, cat.Users[0].Role)
}

func TestCatalog_ListDocumentsPaging(t *testing.T) {
	page, err := Catalog{}.ListDocuments(context.Background(), repository.PageQuery{Limit: 3, Offset: 6})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 8, page.Total)

	page, err = Catalog{}.ListDocuments(context.Background(), repository.PageQuery{Limit: 3, Offset: 20})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}
