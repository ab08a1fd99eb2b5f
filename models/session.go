package models

// Session is the client-side authenticated identity holder.
//
// Only User, Token and IsAuthenticated survive persistence; IsLoading is
// transient UI state and is excluded from serialization so that every
// rehydration starts with it reset to false.
type Session struct {
	User            *PublicUser `json:"user"`
	Token           string      `json:"token"`
	IsAuthenticated bool        `json:"is_authenticated"`

	IsLoading bool `json:"-"`
}
