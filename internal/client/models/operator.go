// Package models defines the client-side data records exchanged with the
// QuickBites backend and cached locally.
package models

// Operator is the profile record of a dashboard administrator as returned by
// the backend. The JSON tags follow the backend wire format.
type Operator struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Outlet   string `json:"outlet,omitempty"`
}

// ProfileUpdate carries a partial or full profile edit. Zero-valued fields are
// omitted from the request so the backend treats them as untouched.
type ProfileUpdate struct {
	UserName string `json:"userName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Outlet   string `json:"outlet,omitempty"`
}
