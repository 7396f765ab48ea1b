package model

import "time"

// Document represents a managed file in the workspace.
// This is a pure domain model with no persistence-specific dependencies.
type Document struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Category       Category         `json:"category"`
	SourceURL      string           `json:"source_url"`
	PreviewURL     string           `json:"preview_url"`
	Size           int64            `json:"size"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	FolderID       string           `json:"folder_id,omitempty"`
	Tags           []string         `json:"tags,omitempty"`
	Version        int              `json:"version,omitempty"`
	Permissions    *PermissionFlags `json:"permissions,omitempty"`
	SharedWith     []string         `json:"shared_with,omitempty"`
	LastAccessedAt *time.Time       `json:"last_accessed_at,omitempty"`
	DownloadCount  int              `json:"download_count"`
}

// PermissionFlags are the per-document permission bits stored on a document.
// A nil *PermissionFlags on a Document means the flags are absent.
type PermissionFlags struct {
	CanView   bool `json:"can_view"`
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
	CanShare  bool `json:"can_share"`
}

// AllPermissions returns flags with every bit set.
func AllPermissions() PermissionFlags {
	return PermissionFlags{CanView: true, CanEdit: true, CanDelete: true, CanShare: true}
}

// Clone returns a deep copy so callers cannot alias store-owned slices or pointers.
func (d Document) Clone() Document {
	out := d
	if d.Tags != nil {
		out.Tags = append([]string(nil), d.Tags...)
	}
	if d.SharedWith != nil {
		out.SharedWith = append([]string(nil), d.SharedWith...)
	}
	if d.Permissions != nil {
		p := *d.Permissions
		out.Permissions = &p
	}
	if d.LastAccessedAt != nil {
		t := *d.LastAccessedAt
		out.LastAccessedAt = &t
	}
	return out
}

// NewDocument is the input accepted by the store when creating a document.
// Category and PreviewURL are inferred when empty.
type NewDocument struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category,omitempty"`
	SourceURL   string   `json:"source_url"`
	PreviewURL  string   `json:"preview_url,omitempty"`
	Size        int64    `json:"size"`
	FolderID    string   `json:"folder_id,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// DocumentPatch holds the fields to merge into an existing document.
// Nil fields are left untouched. A FolderID pointing at "" moves the
// document back to root.
type DocumentPatch struct {
	Name           *string          `json:"name,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Category       *Category        `json:"category,omitempty"`
	SourceURL      *string          `json:"source_url,omitempty"`
	PreviewURL     *string          `json:"preview_url,omitempty"`
	Size           *int64           `json:"size,omitempty"`
	FolderID       *string          `json:"folder_id,omitempty"`
	Tags           *[]string        `json:"tags,omitempty"`
	Version        *int             `json:"version,omitempty"`
	Permissions    *PermissionFlags `json:"permissions,omitempty"`
	SharedWith     *[]string        `json:"shared_with,omitempty"`
	LastAccessedAt *time.Time       `json:"last_accessed_at,omitempty"`
	DownloadCount  *int             `json:"download_count,omitempty"`
}

// Folder groups documents. ParentID is declared but no logic traverses it.
type Folder struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ParentID    string    `json:"parent_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Color       string    `json:"color"`
}

// NewFolder is the input accepted by the store when creating a folder.
type NewFolder struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
	Color       string `json:"color,omitempty"`
}

// FolderPatch holds the folder fields to merge. Nil fields are left untouched.
type FolderPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
	Color       *string `json:"color,omitempty"`
}
