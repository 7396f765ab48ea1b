// Package store holds the authoritative in-memory collection of documents
// and folders. It assigns identities and timestamps and enforces the folder
// reference invariant. Every mutation is all-or-nothing: the new state is
// built first and only swapped in on success.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"docmanager/internal/classify"
	"docmanager/internal/model"
)

// maxIDAttempts bounds how often a colliding id is regenerated.
const maxIDAttempts = 16

// FolderColors is the palette new folders cycle through when no color is given.
var FolderColors = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#84CC16", "#F97316", "#EC4899", "#6B7280",
}

var errIDExhausted = errors.New("could not allocate a unique id")

// Store is the document and folder store. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	documents []model.Document
	folders   []model.Folder
	clock     Clock
	ids       IDGenerator
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		documents: []model.Document{},
		folders:   []model.Folder{},
		clock:     RealClock{},
		ids:       UUIDGenerator{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the whole content of the store. Seed data is taken as is;
// dangling folder references survive so reporting can surface them.
func (s *Store) Load(documents []model.Document, folders []model.Folder) {
	docs := make([]model.Document, 0, len(documents))
	for _, d := range documents {
		docs = append(docs, d.Clone())
	}
	fs := append(make([]model.Folder, 0, len(folders)), folders...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = docs
	s.folders = fs
}

// Documents returns a copy of every document in insertion order.
func (s *Store) Documents() []model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Document, 0, len(s.documents))
	for _, d := range s.documents {
		out = append(out, d.Clone())
	}
	return out
}

// Folders returns a copy of every folder in insertion order.
func (s *Store) Folders() []model.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]model.Folder, 0, len(s.folders)), s.folders...)
}

// Document returns a single document by id.
func (s *Store) Document(id string) (model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.documentIndex(id)
	if i < 0 {
		return model.Document{}, fmt.Errorf("document %s: %w", id, model.ErrNotFound)
	}
	return s.documents[i].Clone(), nil
}

// Folder returns a single folder by id.
func (s *Store) Folder(id string) (model.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.folderIndex(id)
	if i < 0 {
		return model.Folder{}, fmt.Errorf("folder %s: %w", id, model.ErrNotFound)
	}
	return s.folders[i], nil
}

// FolderDocumentCount returns how many documents reference folder id.
func (s *Store) FolderDocumentCount(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, d := range s.documents {
		if d.FolderID == id {
			n++
		}
	}
	return n
}

// RootDocumentCount returns how many documents have no folder.
func (s *Store) RootDocumentCount() int {
	return s.FolderDocumentCount("")
}

// AddDocument creates a document from in. The category is inferred from the
// name and the preview from the category when they are not supplied.
func (s *Store) AddDocument(in model.NewDocument) (model.Document, error) {
	if in.Size < 0 {
		return model.Document{}, model.Invalidf("size must be non-negative, got %d", in.Size)
	}
	category := in.Category
	if category == "" {
		category = classify.TypeForFilename(in.Name)
	} else if !category.Valid() {
		return model.Document{}, model.Invalidf("unknown category %q", category)
	}
	preview := in.PreviewURL
	if preview == "" {
		preview = classify.PlaceholderPreview(category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if in.FolderID != "" && s.folderIndex(in.FolderID) < 0 {
		return model.Document{}, model.Invalidf("folder %s does not exist", in.FolderID)
	}
	id, err := s.newIDLocked()
	if err != nil {
		return model.Document{}, err
	}

	now := s.clock.Now()
	perms := model.AllPermissions()
	doc := model.Document{
		ID:            id,
		Name:          in.Name,
		Description:   in.Description,
		Category:      category,
		SourceURL:     in.SourceURL,
		PreviewURL:    preview,
		Size:          in.Size,
		CreatedAt:     now,
		UpdatedAt:     now,
		FolderID:      in.FolderID,
		Version:       1,
		Permissions:   &perms,
		DownloadCount: 0,
	}
	if in.Tags != nil {
		doc.Tags = append([]string(nil), in.Tags...)
	}

	s.documents = append(s.documents, doc)
	return doc.Clone(), nil
}

// UpdateDocument merges the non-nil fields of patch into document id and
// refreshes UpdatedAt.
func (s *Store) UpdateDocument(id string, patch model.DocumentPatch) (model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.documentIndex(id)
	if i < 0 {
		return model.Document{}, fmt.Errorf("document %s: %w", id, model.ErrNotFound)
	}

	updated := s.documents[i].Clone()
	if err := s.applyDocumentPatch(&updated, patch); err != nil {
		return model.Document{}, err
	}
	updated.UpdatedAt = s.touch(updated.CreatedAt)

	s.documents[i] = updated
	return updated.Clone(), nil
}

// DeleteDocument removes document id.
func (s *Store) DeleteDocument(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.documentIndex(id)
	if i < 0 {
		return fmt.Errorf("document %s: %w", id, model.ErrNotFound)
	}

	docs := make([]model.Document, 0, len(s.documents)-1)
	docs = append(docs, s.documents[:i]...)
	docs = append(docs, s.documents[i+1:]...)
	s.documents = docs
	return nil
}

// AddFolder creates a folder. A color from FolderColors is assigned when none is given.
func (s *Store) AddFolder(in model.NewFolder) (model.Folder, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Folder{}, model.Invalidf("folder name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if in.ParentID != "" && s.folderIndex(in.ParentID) < 0 {
		return model.Folder{}, model.Invalidf("parent folder %s does not exist", in.ParentID)
	}
	id, err := s.newIDLocked()
	if err != nil {
		return model.Folder{}, err
	}
	color := in.Color
	if color == "" {
		color = FolderColors[len(s.folders)%len(FolderColors)]
	}

	now := s.clock.Now()
	f := model.Folder{
		ID:          id,
		Name:        name,
		Description: in.Description,
		ParentID:    in.ParentID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Color:       color,
	}
	s.folders = append(s.folders, f)
	return f, nil
}

// UpdateFolder merges the non-nil fields of patch into folder id.
func (s *Store) UpdateFolder(id string, patch model.FolderPatch) (model.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.folderIndex(id)
	if i < 0 {
		return model.Folder{}, fmt.Errorf("folder %s: %w", id, model.ErrNotFound)
	}

	f := s.folders[i]
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return model.Folder{}, model.Invalidf("folder name is required")
		}
		f.Name = name
	}
	if patch.Description != nil {
		f.Description = *patch.Description
	}
	if patch.ParentID != nil {
		parent := *patch.ParentID
		if parent == id {
			return model.Folder{}, model.Invalidf("folder cannot be its own parent")
		}
		if parent != "" && s.folderIndex(parent) < 0 {
			return model.Folder{}, model.Invalidf("parent folder %s does not exist", parent)
		}
		f.ParentID = parent
	}
	if patch.Color != nil {
		f.Color = *patch.Color
	}
	f.UpdatedAt = s.touch(f.CreatedAt)

	s.folders[i] = f
	return f, nil
}

// DeleteFolder removes folder id and, in the same step, moves every document
// referencing it back to root. Child folders lose their parent reference.
// It returns the ids of the reparented documents.
func (s *Store) DeleteFolder(id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.folderIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("folder %s: %w", id, model.ErrNotFound)
	}

	now := s.clock.Now()
	docs := make([]model.Document, len(s.documents))
	var moved []string
	for j, d := range s.documents {
		if d.FolderID == id {
			d.FolderID = ""
			d.UpdatedAt = laterOf(now, d.CreatedAt)
			moved = append(moved, d.ID)
		}
		docs[j] = d
	}

	folders := make([]model.Folder, 0, len(s.folders)-1)
	for j, f := range s.folders {
		if j == i {
			continue
		}
		if f.ParentID == id {
			f.ParentID = ""
			f.UpdatedAt = laterOf(now, f.CreatedAt)
		}
		folders = append(folders, f)
	}

	s.documents = docs
	s.folders = folders
	return moved, nil
}

func (s *Store) applyDocumentPatch(d *model.Document, p model.DocumentPatch) error {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Category != nil {
		if !p.Category.Valid() {
			return model.Invalidf("unknown category %q", *p.Category)
		}
		d.Category = *p.Category
	}
	if p.SourceURL != nil {
		d.SourceURL = *p.SourceURL
	}
	if p.PreviewURL != nil {
		d.PreviewURL = *p.PreviewURL
	}
	if p.Size != nil {
		if *p.Size < 0 {
			return model.Invalidf("size must be non-negative, got %d", *p.Size)
		}
		d.Size = *p.Size
	}
	if p.FolderID != nil {
		if *p.FolderID != "" && s.folderIndex(*p.FolderID) < 0 {
			return model.Invalidf("folder %s does not exist", *p.FolderID)
		}
		d.FolderID = *p.FolderID
	}
	if p.Tags != nil {
		d.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Version != nil {
		if *p.Version < d.Version {
			return model.Invalidf("version cannot decrease from %d to %d", d.Version, *p.Version)
		}
		d.Version = *p.Version
	}
	if p.Permissions != nil {
		flags := *p.Permissions
		d.Permissions = &flags
	}
	if p.SharedWith != nil {
		d.SharedWith = append([]string(nil), (*p.SharedWith)...)
	}
	if p.LastAccessedAt != nil {
		t := *p.LastAccessedAt
		d.LastAccessedAt = &t
	}
	if p.DownloadCount != nil {
		if *p.DownloadCount < 0 {
			return model.Invalidf("download count must be non-negative, got %d", *p.DownloadCount)
		}
		d.DownloadCount = *p.DownloadCount
	}
	return nil
}

func (s *Store) newIDLocked() (string, error) {
	for range maxIDAttempts {
		id := s.ids.New()
		if id != "" && s.documentIndex(id) < 0 && s.folderIndex(id) < 0 {
			return id, nil
		}
	}
	return "", errIDExhausted
}

// touch returns the update timestamp for a record created at createdAt.
func (s *Store) touch(createdAt time.Time) time.Time {
	return laterOf(s.clock.Now(), createdAt)
}

func laterOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}

func (s *Store) documentIndex(id string) int {
	for i := range s.documents {
		if s.documents[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) folderIndex(id string) int {
	for i := range s.folders {
		if s.folders[i].ID == id {
			return i
		}
	}
	return -1
}
