package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docmanager/internal/analytics"
	"docmanager/internal/model"
	"docmanager/internal/permission"
	"docmanager/internal/repository"
	"docmanager/internal/service"
)

type MockWorkspace struct {
	mock.Mock
}

var _ service.Workspace = (*MockWorkspace)(nil)

func (m *MockWorkspace) Load(ctx context.Context, repo repository.CatalogRepository, defaultUserID string) error {
	args := m.Called(ctx, repo, defaultUserID)
	return args.Error(0)
}

func (m *MockWorkspace) Documents() []model.Document {
	args := m.Called()
	docs, _ := args.Get(0).([]model.Document)
	return docs
}

func (m *MockWorkspace) Folders() []model.Folder {
	args := m.Called()
	folders, _ := args.Get(0).([]model.Folder)
	return folders
}

func (m *MockWorkspace) FolderSummaries() ([]service.FolderSummary, int) {
	args := m.Called()
	summaries, _ := args.Get(0).([]service.FolderSummary)
	return summaries, args.Int(1)
}

func (m *MockWorkspace) FilteredDocuments() []model.Document {
	args := m.Called()
	docs, _ := args.Get(0).([]model.Document)
	return docs
}

func (m *MockWorkspace) View() service.ViewState {
	args := m.Called()
	return args.Get(0).(service.ViewState)
}

func (m *MockWorkspace) Loading() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockWorkspace) Err() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockWorkspace) Params() model.ViewParameters {
	args := m.Called()
	return args.Get(0).(model.ViewParameters)
}

func (m *MockWorkspace) CurrentUser() (model.User, bool) {
	args := m.Called()
	return args.Get(0).(model.User), args.Bool(1)
}

func (m *MockWorkspace) Users() []model.User {
	args := m.Called()
	users, _ := args.Get(0).([]model.User)
	return users
}

func (m *MockWorkspace) Document(id string) (model.Document, error) {
	args := m.Called(id)
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *MockWorkspace) Permissions(id string) (permission.Capabilities, error) {
	args := m.Called(id)
	return args.Get(0).(permission.Capabilities), args.Error(1)
}

func (m *MockWorkspace) Analytics(r analytics.Range) analytics.Report {
	args := m.Called(r)
	return args.Get(0).(analytics.Report)
}

func (m *MockWorkspace) AddDocument(ctx context.Context, in model.NewDocument) (model.Document, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *MockWorkspace) UpdateDocument(ctx context.Context, id string, patch model.DocumentPatch) (model.Document, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *MockWorkspace) DeleteDocument(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkspace) RecordDownload(ctx context.Context, id string) (model.Document, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *MockWorkspace) AddFolder(ctx context.Context, in model.NewFolder) (model.Folder, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Folder), args.Error(1)
}

func (m *MockWorkspace) UpdateFolder(ctx context.Context, id string, patch model.FolderPatch) (model.Folder, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.Folder), args.Error(1)
}

func (m *MockWorkspace) DeleteFolder(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkspace) SetSearchTerm(ctx context.Context, term string) {
	m.Called(ctx, term)
}

func (m *MockWorkspace) SetSelectedFolder(ctx context.Context, folderID string) {
	m.Called(ctx, folderID)
}

func (m *MockWorkspace) ApplyFilters(ctx context.Context, f model.FilterSet) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockWorkspace) SetSortBy(ctx context.Context, key model.SortKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockWorkspace) SetSortOrder(ctx context.Context, order model.SortOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockWorkspace) SetViewMode(ctx context.Context, mode model.ViewMode) error {
	args := m.Called(ctx, mode)
	return args.Error(0)
}

func (m *MockWorkspace) SetCurrentUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
