package auth

import "fitplanhub/internal/model"

// Viewer is the identity a request acts as: anonymous or an authenticated
// user. Visibility and feed code branches on it explicitly instead of
// passing a nullable user around.
type Viewer struct {
	user *model.User
}

// AnonymousViewer returns the viewer for unauthenticated requests.
func AnonymousViewer() Viewer {
	return Viewer{}
}

// ViewerFor returns the viewer acting as the given user.
func ViewerFor(u *model.User) Viewer {
	return Viewer{user: u}
}

// Anonymous reports whether the viewer carries no identity.
func (v Viewer) Anonymous() bool {
	return v.user == nil
}

// User returns the authenticated user, or nil for anonymous viewers.
func (v Viewer) User() *model.User {
	return v.user
}

// ID returns the authenticated user's id, or 0 for anonymous viewers.
func (v Viewer) ID() uint {
	if v.user == nil {
		return 0
	}
	return v.user.ID
}
