package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docmanager/internal/analytics"
	"docmanager/internal/logging"
	"docmanager/internal/model"
	"docmanager/internal/permission"
	"docmanager/internal/repository/seed"
	"docmanager/internal/service"
	serviceMocks "docmanager/internal/service/mocks"
	"docmanager/internal/storage"
	"docmanager/internal/store"
	"docmanager/internal/upload"
)

func jsonRequest(method, target string, v any) *http.Request {
	var body io.Reader
	if v != nil {
		b, _ := json.Marshal(v)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "postgres", body["catalog"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})

	t.Run("mock catalog", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(nil))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "mock", body["catalog"])
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListDocuments(t *testing.T) {
	mockWS := new(serviceMocks.MockWorkspace)
	app := fiber.New()
	app.Get("/documents", ListDocuments(mockWS))

	state := service.ViewState{
		Documents: []model.Document{{ID: "1", Name: "Annual Report 2024.pdf"}},
		Total:     1,
		Params:    model.DefaultViewParameters(),
	}
	mockWS.On("View").Return(state).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var result service.ViewState
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Len(t, result.Documents, 1)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, model.SortByName, result.Params.SortBy)
	mockWS.AssertExpectations(t)
}

func TestGetDocument(t *testing.T) {
	mockWS := new(serviceMocks.MockWorkspace)
	app := fiber.New()
	app.Get("/documents/:id", GetDocument(mockWS))

	t.Run("success", func(t *testing.T) {
		mockWS.On("Permissions", "1").Return(permission.Capabilities{View: true}, nil).Once()
		mockWS.On("Document", "1").Return(model.Document{ID: "1", Name: "a.pdf"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/1", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "1", result.ID)
		mockWS.AssertExpectations(t)
	})

	t.Run("forbidden", func(t *testing.T) {
		mockWS.On("Permissions", "2").Return(permission.Capabilities{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/2", nil))

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "FORBIDDEN", decodeError(t, resp).Error.Code)
		mockWS.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockWS.On("Permissions", "missing").
			Return(permission.Capabilities{}, fmt.Errorf("document missing: %w", model.ErrNotFound)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/missing", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockWS.AssertExpectations(t)
	})
}

func TestCreateDocument(t *testing.T) {
	mockWS := new(serviceMocks.MockWorkspace)
	app := fiber.New()
	app.Post("/documents", CreateDocument(mockWS))

	t.Run("success", func(t *testing.T) {
		in := model.NewDocument{Name: "notes.txt", SourceURL: "https://example.com/notes.txt", Size: 10}
		mockWS.On("AddDocument", mock.Anything, in).Return(model.Document{ID: "new", Name: "notes.txt", Category: model.CategoryText}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/documents", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var result model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "new", result.ID)
		mockWS.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/documents", model.NewDocument{Size: 1}))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/documents", strings.NewReader("{"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "BAD_REQUEST", decodeError(t, resp).Error.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		in := model.NewDocument{Name: "x", Size: -1}
		mockWS.On("AddDocument", mock.Anything, in).Return(model.Document{}, model.Invalidf("size must be non-negative, got -1")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/documents", in))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "INVALID_INPUT", body.Error.Code)
		assert.Contains(t, body.Error.Message, "non-negative")
		mockWS.AssertExpectations(t)
	})
}

func TestUpdateDocument(t *testing.T) {
	mockWS := new(serviceMocks.MockWorkspace)
	app := fiber.New()
	app.Patch("/documents/:id", UpdateDocument(mockWS))

	name := "renamed.pdf"

	t.Run("success", func(t *testing.T) {
		mockWS.On("Permissions", "1").Return(permission.Capabilities{View: true, Edit: true}, nil).Once()
		mockWS.On("UpdateDocument", mock.Anything, "1", model.DocumentPatch{Name: &name}).
			Return(model.Document{ID: "1", Name: name}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/documents/1", map[string]string{"name": name}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, name, result.Name)
		mockWS.AssertExpectations(t)
	})

	t.Run("forbidden", func(t *testing.T) {
		mockWS.On("Permissions", "1").Return(permission.Capabilities{View: true}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/documents/1", map[string]string{"name": name}))

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		mockWS.AssertExpectations(t)
		mockWS.AssertNotCalled(t, "UpdateDocument", mock.Anything, "1", mock.Anything)
	})
}

func TestDeleteDocument(t *testing.T) {
	mockWS := new(serviceMocks.MockWorkspace)
	app := fiber.New()
	app.Delete("/documents/:id", DeleteDocument(mockWS))

	t.Run("success", func(t *testing.T) {
		mockWS.On("Permissions", "1").Return(permission.Capabilities{View: true, Delete: true}, nil).Once()
		mockWS.On("DeleteDocument", mock.Anything, "1").Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/documents/1", nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockWS.AssertExpectations(t)
	})

	t.Run("forbidden", func(t *testing.T) {
		mockWS.On("Permissions", "2").Return(permission.Capabilities{View: true, Edit: true}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/documents/2", nil))

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "FORBIDDEN", decodeError(t, resp).Error.Code)
		mockWS.AssertExpectations(t)
	})

	t.Run("workspace error", func(t *testing.T) {
		mockWS.On("Permissions", "3").Return(permission.Capabilities{Delete: true}, nil).Once()
		mockWS.On("DeleteDocument", mock.Anything, "3").Return(errors.New("boom")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/documents/3", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "boom")
		mockWS.AssertExpectations(t)
	})
}

func TestFolders(t *testing.T) {
	mockWS := new(serviceMocks.MockWorkspace)
	app := fiber.New()
	app.Get("/folders", ListFolders(mockWS))
	app.Post("/folders", CreateFolder(mockWS))
	app.Delete("/folders/:id", DeleteFolder(mockWS))

	t.Run("list", func(t *testing.T) {
		summaries := []service.FolderSummary{{Folder: model.Folder{ID: "f1", Name: "Reports"}, DocumentCount: 3}}
		mockWS.On("FolderSummaries").Return(summaries, 1).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/folders", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Data      []service.FolderSummary `json:"data"`
			RootCount int                     `json:"root_count"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		require.Len(t, body.Data, 1)
		assert.Equal(t, 3, body.Data[0].DocumentCount)
		assert.Equal(t, 1, body.RootCount)
	})

	t.Run("create without name", func(t *testing.T) {
		mockWS.On("AddFolder", mock.Anything, model.NewFolder{}).
			Return(model.Folder{}, model.Invalidf("folder name is required")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/folders", map[string]string{}))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("delete unknown", func(t *testing.T) {
		mockWS.On("DeleteFolder", mock.Anything, "nope").Return(fmt.Errorf("folder nope: %w", model.ErrNotFound)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/folders/nope", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	mockWS.AssertExpectations(t)
}

func TestViewHandlers(t *testing.T) {
	mockWS := new(serviceMocks.MockWorkspace)
	app := fiber.New()
	app.Get("/view", GetView(mockWS))
	app.Put("/view/search", SetSearch(mockWS))
	app.Put("/view/folder", SetFolder(mockWS))
	app.Put("/view/sort", SetSort(mockWS))
	app.Put("/view/mode", SetMode(mockWS))
	app.Put("/view/filters", ApplyFilters(mockWS))

	state := service.ViewState{Params: model.DefaultViewParameters()}

	t.Run("params", func(t *testing.T) {
		mockWS.On("Params").Return(model.DefaultViewParameters()).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/view", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var p model.ViewParameters
		json.NewDecoder(resp.Body).Decode(&p)
		assert.Equal(t, model.ViewGrid, p.ViewMode)
	})

	t.Run("search", func(t *testing.T) {
		mockWS.On("SetSearchTerm", mock.Anything, "report").Return().Once()
		mockWS.On("View").Return(state).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/view/search", searchRequest{Term: "report"}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("folder", func(t *testing.T) {
		mockWS.On("SetSelectedFolder", mock.Anything, "root").Return().Once()
		mockWS.On("View").Return(state).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/view/folder", folderRequest{FolderID: "root"}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("sort key only", func(t *testing.T) {
		mockWS.On("SetSortBy", mock.Anything, model.SortBySize).Return(nil).Once()
		mockWS.On("View").Return(state).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/view/sort", sortRequest{SortBy: model.SortBySize}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockWS.AssertNotCalled(t, "SetSortOrder", mock.Anything, mock.Anything)
	})

	t.Run("unknown sort order", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPut, "/view/sort", map[string]string{"sort_by": "date", "sort_order": "sideways"}))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		mockWS.AssertNotCalled(t, "SetSortBy", mock.Anything, model.SortByDate)
	})

	t.Run("mode", func(t *testing.T) {
		mockWS.On("SetViewMode", mock.Anything, model.ViewList).Return(nil).Once()
		mockWS.On("View").Return(state).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/view/mode", modeRequest{ViewMode: model.ViewList}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("filters rejected", func(t *testing.T) {
		f := model.FilterSet{Type: "zip", DateRange: model.DateAll, SizeRange: model.SizeAll, SortBy: model.SortByName, SortOrder: model.SortAsc}
		mockWS.On("ApplyFilters", mock.Anything, f).Return(model.Invalidf("unknown type filter %q", "zip")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/view/filters", f))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, resp).Error.Code)
	})

	mockWS.AssertExpectations(t)
}

func TestSession(t *testing.T) {
	mockWS := new(serviceMocks.MockWorkspace)
	app := fiber.New()
	app.Get("/session/user", GetCurrentUser(mockWS))
	app.Put("/session/user", SetCurrentUser(mockWS))
	app.Get("/roles", ListRoles())

	t.Run("no user", func(t *testing.T) {
		mockWS.On("CurrentUser").Return(model.User{}, false).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/session/user", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("switch user", func(t *testing.T) {
		bob := model.User{ID: "3", Name: "Bob Johnson", Role: model.RoleViewer}
		mockWS.On("SetCurrentUser", mock.Anything, "3").Return(nil).Once()
		mockWS.On("CurrentUser").Return(bob, true).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/session/user", sessionUserRequest{UserID: "3"}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body sessionUser
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "3", body.User.ID)
		assert.Equal(t, permission.Capabilities{View: true}, body.Capabilities)
	})

	t.Run("roles", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/roles", nil))

		var body struct {
			Data []roleCapabilities `json:"data"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		require.Len(t, body.Data, len(model.Roles))
		assert.Equal(t, model.RoleAdmin, body.Data[0].Role)
		assert.True(t, body.Data[0].Capabilities.Delete)
	})

	mockWS.AssertExpectations(t)
}

func TestGetAnalytics(t *testing.T) {
	mockWS := new(serviceMocks.MockWorkspace)
	app := fiber.New()
	app.Get("/analytics", GetAnalytics(mockWS))

	t.Run("default range", func(t *testing.T) {
		mockWS.On("Analytics", analytics.Range30Days).Return(analytics.Report{Range: analytics.Range30Days, TotalDocuments: 3}).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/analytics", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var r analytics.Report
		json.NewDecoder(resp.Body).Decode(&r)
		assert.Equal(t, 3, r.TotalDocuments)
		mockWS.AssertExpectations(t)
	})

	t.Run("unknown range", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/analytics?range=2w", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

type fakeUploader struct {
	got  []upload.File
	jobs []upload.Job
}

func (f *fakeUploader) Submit(files []upload.File) ([]upload.Job, []upload.Rejection) {
	f.got = append(f.got, files...)
	var rejected []upload.Rejection
	for _, file := range files {
		if err := upload.Validate(file, upload.DefaultMaxBytes); err != nil {
			rejected = append(rejected, upload.Rejection{FileName: file.Name, Reason: err.Error()})
			continue
		}
		f.jobs = append(f.jobs, upload.Job{ID: fmt.Sprintf("job-%d", len(f.jobs)+1), FileName: file.Name, Status: upload.StatusQueued})
	}
	return f.jobs, rejected
}

func (f *fakeUploader) Jobs() []upload.Job { return f.jobs }

func (f *fakeUploader) Job(id string) (upload.Job, error) {
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return upload.Job{}, fmt.Errorf("upload %s: %w", id, model.ErrNotFound)
}

func multipartBody(t *testing.T, files map[string]string, contentType string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, content := range files {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="files"; filename="%s"`, name)}
		h["Content-Type"] = []string{contentType}
		part, err := writer.CreatePart(h)
		require.NoError(t, err)
		part.Write([]byte(content))
	}
	require.NoError(t, writer.WriteField("folder_id", seed.FolderReports))
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadFiles(t *testing.T) {
	up := &fakeUploader{}
	app := fiber.New()
	app.Post("/uploads", UploadFiles(up))
	app.Get("/uploads/:id", GetUpload(up))

	t.Run("accepted", func(t *testing.T) {
		body, ct := multipartBody(t, map[string]string{"notes.txt": "hello world"}, "text/plain")
		req := httptest.NewRequest(http.MethodPost, "/uploads", body)
		req.Header.Set(fiber.HeaderContentType, ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
		var res uploadResponse
		json.NewDecoder(resp.Body).Decode(&res)
		require.Len(t, res.Jobs, 1)
		assert.Equal(t, "notes.txt", res.Jobs[0].FileName)
		assert.Empty(t, res.Rejected)

		require.Len(t, up.got, 1)
		assert.Equal(t, []byte("hello world"), up.got[0].Data)
		assert.Equal(t, seed.FolderReports, up.got[0].FolderID)
	})

	t.Run("all rejected", func(t *testing.T) {
		up.jobs = nil
		body, ct := multipartBody(t, map[string]string{"tool.exe": "MZ"}, "application/x-msdownload")
		req := httptest.NewRequest(http.MethodPost, "/uploads", body)
		req.Header.Set(fiber.HeaderContentType, ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		var res uploadResponse
		json.NewDecoder(resp.Body).Decode(&res)
		require.Len(t, res.Rejected, 1)
		assert.Equal(t, "tool.exe", res.Rejected[0].FileName)
	})

	t.Run("not multipart", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/uploads", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "BAD_REQUEST", decodeError(t, resp).Error.Code)
	})

	t.Run("unknown job", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/uploads/job-404", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func newSeededWorkspace(t *testing.T, objects storage.Storage) service.Workspace {
	t.Helper()
	ws := service.NewWorkspace(store.New(), logging.Discard(), nil, service.WithObjectStorage(objects))
	require.NoError(t, ws.Load(context.Background(), seed.Catalog{}, "1"))
	return ws
}

func TestDownloadAndServeFile(t *testing.T) {
	ctx := context.Background()
	objects := storage.NewMemory()
	ws := newSeededWorkspace(t, objects)

	key := "uploads/job-1/notes.txt"
	_, err := objects.Put(ctx, key, strings.NewReader("hello"), storage.PutObjectOptions{Size: 5, ContentType: "text/plain"})
	require.NoError(t, err)
	doc, err := ws.AddDocument(ctx, model.NewDocument{Name: "notes.txt", SourceURL: storage.SourceURL(key), Size: 5})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, Deps{Workspace: ws, Objects: objects})

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+doc.ID+"/download", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var link struct {
		URL           string `json:"url"`
		DownloadCount int    `json:"download_count"`
	}
	json.NewDecoder(resp.Body).Decode(&link)
	assert.Equal(t, "/files/"+key, link.URL)
	assert.Equal(t, 1, link.DownloadCount)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, link.URL, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get(fiber.HeaderContentType))
	content, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "hello", string(content))

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/files/uploads/missing.txt", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	t.Run("seeded document keeps its source url", func(t *testing.T) {
		seeded, err := ws.Document("1")
		require.NoError(t, err)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/1/download", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		json.NewDecoder(resp.Body).Decode(&link)
		assert.Equal(t, seeded.SourceURL, link.URL)
	})
}

func TestRoleGatesAgainstSeed(t *testing.T) {
	ws := newSeededWorkspace(t, storage.NewMemory())
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, Deps{Workspace: ws})

	resp, _ := app.Test(jsonRequest(http.MethodPut, "/session/user", sessionUserRequest{UserID: "3"}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/documents/1", nil))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = app.Test(jsonRequest(http.MethodPatch, "/documents/1", map[string]string{"name": "x.pdf"}))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = app.Test(jsonRequest(http.MethodPut, "/session/user", sessionUserRequest{UserID: "1"}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/documents/1", nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Len(t, ws.Documents(), 7)

	resp, _ = app.Test(jsonRequest(http.MethodPut, "/session/user", sessionUserRequest{UserID: "99"}))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	RegisterRoutes(app, Deps{Workspace: new(serviceMocks.MockWorkspace)})

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("uploads absent without uploader", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/uploads", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
