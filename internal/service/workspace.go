// Package service holds the Workspace, the single owner of the document store,
// the view parameters and the derived visible list.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"docmanager/internal/analytics"
	"docmanager/internal/derive"
	"docmanager/internal/model"
	"docmanager/internal/permission"
	"docmanager/internal/repository"
	"docmanager/internal/storage"
	"docmanager/internal/store"
)

const tracerName = "docmanager/internal/service"

// RootFolder is accepted by SetSelectedFolder as an alias for the root view.
const RootFolder = "root"

// ViewState is what the presentation layer renders: the visible list plus
// the state it was derived from.
type ViewState struct {
	Documents []model.Document     `json:"documents"`
	Total     int                  `json:"total"`
	Params    model.ViewParameters `json:"params"`
	Loading   bool                 `json:"loading"`
	Error     string               `json:"error,omitempty"`
}

// FolderSummary is a folder with the number of documents filed under it.
type FolderSummary struct {
	model.Folder
	DocumentCount int `json:"document_count"`
}

// Workspace is the session state container. Every call observes a
// consistent state: mutations and recomputation complete before it returns.
type Workspace interface {
	// Load replaces the store contents and users with the catalog from repo.
	Load(ctx context.Context, repo repository.CatalogRepository, defaultUserID string) error

	Documents() []model.Document
	Folders() []model.Folder
	FolderSummaries() ([]FolderSummary, int)
	FilteredDocuments() []model.Document
	View() ViewState
	Loading() bool
	Err() error
	Params() model.ViewParameters
	CurrentUser() (model.User, bool)
	Users() []model.User
	Document(id string) (model.Document, error)
	// Permissions evaluates the current user's capabilities on document id.
	Permissions(id string) (permission.Capabilities, error)
	Analytics(r analytics.Range) analytics.Report

	AddDocument(ctx context.Context, in model.NewDocument) (model.Document, error)
	UpdateDocument(ctx context.Context, id string, patch model.DocumentPatch) (model.Document, error)
	DeleteDocument(ctx context.Context, id string) error
	// RecordDownload bumps the download counter and last access time of id.
	RecordDownload(ctx context.Context, id string) (model.Document, error)
	AddFolder(ctx context.Context, in model.NewFolder) (model.Folder, error)
	UpdateFolder(ctx context.Context, id string, patch model.FolderPatch) (model.Folder, error)
	DeleteFolder(ctx context.Context, id string) error

	SetSearchTerm(ctx context.Context, term string)
	SetSelectedFolder(ctx context.Context, folderID string)
	ApplyFilters(ctx context.Context, f model.FilterSet) error
	SetSortBy(ctx context.Context, key model.SortKey) error
	SetSortOrder(ctx context.Context, order model.SortOrder) error
	SetViewMode(ctx context.Context, mode model.ViewMode) error
	SetCurrentUser(ctx context.Context, userID string) error
}

type deriveFunc func([]model.Document, model.ViewParameters, time.Time) ([]model.Document, error)

type workspace struct {
	mu sync.Mutex

	store   *store.Store
	objects storage.Storage
	clock   store.Clock
	loc     *time.Location
	log     *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
	derive  deriveFunc

	params  model.ViewParameters
	users   []model.User
	current *model.User
	visible []model.Document
	loading bool
	lastErr error
}

// Option configures a Workspace.
type Option func(*workspace)

// WithClock sets the time source used for date filters and analytics.
// It should be the same clock the store uses.
func WithClock(c store.Clock) Option {
	return func(w *workspace) { w.clock = c }
}

// WithLocation sets the location day and month boundaries are computed in.
func WithLocation(loc *time.Location) Option {
	return func(w *workspace) { w.loc = loc }
}

// WithObjectStorage lets DeleteDocument remove uploaded content.
func WithObjectStorage(s storage.Storage) Option {
	return func(w *workspace) { w.objects = s }
}

// WithUsers seeds the user list and selects the first user.
func WithUsers(users []model.User) Option {
	return func(w *workspace) {
		w.users = append([]model.User(nil), users...)
		if len(w.users) > 0 {
			u := w.users[0]
			w.current = &u
		}
	}
}

// NewWorkspace wraps st. metrics may be nil.
func NewWorkspace(st *store.Store, log *slog.Logger, metrics *Metrics, opts ...Option) Workspace {
	w := &workspace{
		store:   st,
		clock:   store.RealClock{},
		loc:     time.UTC,
		log:     log.With("component", "workspace"),
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
		derive:  derive.Visible,
		params:  model.DefaultViewParameters(),
		visible: []model.Document{},
	}
	for _, opt := range opts {
		opt(w)
	}
	w.mu.Lock()
	w.recomputeLocked(context.Background())
	w.mu.Unlock()
	return w
}

func (w *workspace) now() time.Time {
	return w.clock.Now().In(w.loc)
}

func (w *workspace) Load(ctx context.Context, repo repository.CatalogRepository, defaultUserID string) error {
	ctx, span := w.tracer.Start(ctx, "workspace.load")
	defer span.End()

	w.mu.Lock()
	w.loading = true
	w.mu.Unlock()

	start := time.Now()
	cat, err := repository.LoadCatalog(ctx, repo)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.loading = false
	if err != nil {
		w.lastErr = fmt.Errorf("load catalog: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		w.log.Error("catalog_load_failed", "error_message", err.Error())
		return w.lastErr
	}

	w.store.Load(cat.Documents, cat.Folders)
	w.users = cat.Users
	w.current = nil
	for i := range w.users {
		if w.users[i].ID == defaultUserID {
			u := w.users[i]
			w.current = &u
			break
		}
	}
	if w.current == nil && len(w.users) > 0 {
		u := w.users[0]
		w.current = &u
	}
	w.lastErr = nil
	w.recomputeLocked(ctx)

	w.log.Info("catalog_loaded",
		"documents", len(cat.Documents),
		"folders", len(cat.Folders),
		"users", len(cat.Users),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// recomputeLocked derives the visible list from scratch. On failure the
// previous list is kept and the error is recorded.
func (w *workspace) recomputeLocked(ctx context.Context) {
	_, span := w.tracer.Start(ctx, "workspace.recompute")
	defer span.End()

	docs := w.store.Documents()
	visible, err := w.derive(docs, w.params, w.now())
	w.metrics.derivation(err)
	if err != nil {
		w.lastErr = err
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		w.log.Error("derivation_failed", "error_message", err.Error())
	} else {
		w.visible = visible
	}
	span.SetAttributes(attribute.Int("documents.visible", len(w.visible)))
	w.metrics.sizes(len(docs), len(w.store.Folders()), len(w.visible))
}

// mutateLocked runs fn as one traced mutation and recomputes on success.
// Failures land in the error slot; not-found is only a warning.
func (w *workspace) mutateLocked(ctx context.Context, op string, fn func() error) error {
	ctx, span := w.tracer.Start(ctx, "workspace."+op)
	defer span.End()

	err := fn()
	w.metrics.mutation(op, err)
	if err != nil {
		w.lastErr = err
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, model.ErrNotFound) {
			w.log.Warn("mutation_not_found", "op", op, "error_message", err.Error())
		} else {
			w.log.Error("mutation_failed", "op", op, "error_message", err.Error())
		}
		return err
	}
	w.lastErr = nil
	w.recomputeLocked(ctx)
	return nil
}

func (w *workspace) Documents() []model.Document { return w.store.Documents() }

func (w *workspace) Folders() []model.Folder { return w.store.Folders() }

// FolderSummaries returns every folder with its document count and the
// number of documents at root.
func (w *workspace) FolderSummaries() ([]FolderSummary, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	folders := w.store.Folders()
	out := make([]FolderSummary, len(folders))
	for i, f := range folders {
		out[i] = FolderSummary{Folder: f, DocumentCount: w.store.FolderDocumentCount(f.ID)}
	}
	return out, w.store.RootDocumentCount()
}

func (w *workspace) FilteredDocuments() []model.Document {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cloneDocuments(w.visible)
}

func (w *workspace) View() ViewState {
	w.mu.Lock()
	defer w.mu.Unlock()
	vs := ViewState{
		Documents: cloneDocuments(w.visible),
		Total:     len(w.visible),
		Params:    w.params,
		Loading:   w.loading,
	}
	if w.lastErr != nil {
		vs.Error = w.lastErr.Error()
	}
	return vs
}

func (w *workspace) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

func (w *workspace) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

func (w *workspace) Params() model.ViewParameters {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.params
}

func (w *workspace) CurrentUser() (model.User, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current == nil {
		return model.User{}, false
	}
	return *w.current, true
}

func (w *workspace) Users() []model.User {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]model.User(nil), w.users...)
}

func (w *workspace) Document(id string) (model.Document, error) {
	return w.store.Document(id)
}

func (w *workspace) Permissions(id string) (permission.Capabilities, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	doc, err := w.store.Document(id)
	if err != nil {
		return permission.Capabilities{}, err
	}
	return permission.Evaluate(w.current, doc), nil
}

func (w *workspace) Analytics(r analytics.Range) analytics.Report {
	w.mu.Lock()
	defer w.mu.Unlock()
	return analytics.Compute(w.store.Documents(), w.store.Folders(), r, w.now())
}

func (w *workspace) AddDocument(ctx context.Context, in model.NewDocument) (model.Document, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var doc model.Document
	err := w.mutateLocked(ctx, "add_document", func() error {
		var err error
		doc, err = w.store.AddDocument(in)
		return err
	})
	if err == nil {
		w.log.Info("document_added", "document_id", doc.ID, "name", doc.Name, "category", string(doc.Category), "size", doc.Size)
	}
	return doc, err
}

func (w *workspace) UpdateDocument(ctx context.Context, id string, patch model.DocumentPatch) (model.Document, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var doc model.Document
	err := w.mutateLocked(ctx, "update_document", func() error {
		var err error
		doc, err = w.store.UpdateDocument(id, patch)
		return err
	})
	return doc, err
}

func (w *workspace) RecordDownload(ctx context.Context, id string) (model.Document, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var doc model.Document
	err := w.mutateLocked(ctx, "record_download", func() error {
		cur, err := w.store.Document(id)
		if err != nil {
			return err
		}
		count := cur.DownloadCount + 1
		at := w.now()
		doc, err = w.store.UpdateDocument(id, model.DocumentPatch{DownloadCount: &count, LastAccessedAt: &at})
		return err
	})
	return doc, err
}

func (w *workspace) DeleteDocument(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	var sourceURL string
	err := w.mutateLocked(ctx, "delete_document", func() error {
		doc, err := w.store.Document(id)
		if err != nil {
			return err
		}
		sourceURL = doc.SourceURL
		return w.store.DeleteDocument(id)
	})
	if err != nil {
		return err
	}

	if key, ok := storage.KeyFromSourceURL(sourceURL); ok && w.objects != nil {
		if err := w.objects.Delete(ctx, key); err != nil {
			w.log.Warn("object_delete_failed", "document_id", id, "object_key", key, "error_message", err.Error())
		}
	}
	return nil
}

func (w *workspace) AddFolder(ctx context.Context, in model.NewFolder) (model.Folder, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var f model.Folder
	err := w.mutateLocked(ctx, "add_folder", func() error {
		var err error
		f, err = w.store.AddFolder(in)
		return err
	})
	return f, err
}

func (w *workspace) UpdateFolder(ctx context.Context, id string, patch model.FolderPatch) (model.Folder, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var f model.Folder
	err := w.mutateLocked(ctx, "update_folder", func() error {
		var err error
		f, err = w.store.UpdateFolder(id, patch)
		return err
	})
	return f, err
}

// DeleteFolder removes the folder and returns its documents to root. When the
// deleted folder is the selected one, the selection falls back to root.
func (w *workspace) DeleteFolder(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mutateLocked(ctx, "delete_folder", func() error {
		moved, err := w.store.DeleteFolder(id)
		if err != nil {
			return err
		}
		if w.params.SelectedFolder == id {
			w.params.SelectedFolder = ""
		}
		w.log.Info("folder_deleted", "folder_id", id, "reparented_documents", len(moved))
		return nil
	})
}

func (w *workspace) SetSearchTerm(ctx context.Context, term string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.mutateLocked(ctx, "set_search_term", func() error {
		w.params.SearchTerm = term
		return nil
	})
}

// SetSelectedFolder scopes the view to folderID. "" and "root" select the
// unfiltered root view.
func (w *workspace) SetSelectedFolder(ctx context.Context, folderID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if strings.EqualFold(folderID, RootFolder) {
		folderID = ""
	}
	_ = w.mutateLocked(ctx, "set_selected_folder", func() error {
		w.params.SelectedFolder = folderID
		return nil
	})
}

func (w *workspace) ApplyFilters(ctx context.Context, f model.FilterSet) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mutateLocked(ctx, "apply_filters", func() error {
		if err := f.Validate(); err != nil {
			return err
		}
		w.params.TypeFilter = f.Type
		w.params.DateRange = f.DateRange
		w.params.SizeRange = f.SizeRange
		w.params.SortBy = f.SortBy
		w.params.SortOrder = f.SortOrder
		return nil
	})
}

func (w *workspace) SetSortBy(ctx context.Context, key model.SortKey) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mutateLocked(ctx, "set_sort_by", func() error {
		if !key.Valid() {
			return model.Invalidf("unknown sort key %q", key)
		}
		w.params.SortBy = key
		return nil
	})
}

func (w *workspace) SetSortOrder(ctx context.Context, order model.SortOrder) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mutateLocked(ctx, "set_sort_order", func() error {
		if !order.Valid() {
			return model.Invalidf("unknown sort order %q", order)
		}
		w.params.SortOrder = order
		return nil
	})
}

func (w *workspace) SetViewMode(ctx context.Context, mode model.ViewMode) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mutateLocked(ctx, "set_view_mode", func() error {
		if !mode.Valid() {
			return model.Invalidf("unknown view mode %q", mode)
		}
		w.params.ViewMode = mode
		return nil
	})
}

func (w *workspace) SetCurrentUser(ctx context.Context, userID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mutateLocked(ctx, "set_current_user", func() error {
		for i := range w.users {
			if w.users[i].ID == userID {
				u := w.users[i]
				w.current = &u
				return nil
			}
		}
		return fmt.Errorf("user %s: %w", userID, model.ErrNotFound)
	})
}

func cloneDocuments(docs []model.Document) []model.Document {
	out := make([]model.Document, len(docs))
	for i, d := range docs {
		out[i] = d.Clone()
	}
	return out
}
