// Package permission evaluates the simulated role-based access rules.
//
// Checks combine the user's role with the flags stored on a document and are
// evaluated on every call; nothing is cached.
package permission

import "docmanager/internal/model"

// Capabilities is the set of actions implied by a role.
type Capabilities struct {
	View   bool `json:"view"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
	Share  bool `json:"share"`
}

// CapabilitiesForRole returns the fixed capability set of a role.
// Unknown roles get nothing.
func CapabilitiesForRole(role model.Role) Capabilities {
	switch role {
	case model.RoleAdmin:
		return Capabilities{View: true, Edit: true, Delete: true, Share: true}
	case model.RoleEditor:
		return Capabilities{View: true, Edit: true, Delete: false, Share: true}
	case model.RoleViewer:
		return Capabilities{View: true}
	}
	return Capabilities{}
}

// EffectiveFlags resolves the stored flags of a document. Absent flags
// default to view permitted and everything else denied.
func EffectiveFlags(doc model.Document) model.PermissionFlags {
	if doc.Permissions != nil {
		return *doc.Permissions
	}
	return model.PermissionFlags{CanView: true}
}

// CanView reports whether user may view doc. No user means no access.
func CanView(user *model.User, doc model.Document) bool {
	if user == nil {
		return false
	}
	return EffectiveFlags(doc).CanView
}

// CanEdit reports whether user may edit doc.
func CanEdit(user *model.User, doc model.Document) bool {
	if user == nil {
		return false
	}
	return CapabilitiesForRole(user.Role).Edit || EffectiveFlags(doc).CanEdit
}

// CanDelete reports whether user may delete doc. Only admins bypass the
// stored flag.
func CanDelete(user *model.User, doc model.Document) bool {
	if user == nil {
		return false
	}
	return user.Role == model.RoleAdmin || EffectiveFlags(doc).CanDelete
}

// CanShare reports whether user may share doc.
func CanShare(user *model.User, doc model.Document) bool {
	if user == nil {
		return false
	}
	return user.Role == model.RoleAdmin || user.Role == model.RoleEditor || EffectiveFlags(doc).CanShare
}

// Evaluate returns every check for user on doc.
func Evaluate(user *model.User, doc model.Document) Capabilities {
	return Capabilities{
		View:   CanView(user, doc),
		Edit:   CanEdit(user, doc),
		Delete: CanDelete(user, doc),
		Share:  CanShare(user, doc),
	}
}
