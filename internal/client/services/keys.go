// Package services contains the application services of the marketplace
// client: the identity/session manager and the catalog store. Each service
// owns one in-memory collection that is the single source of truth during a
// run; the collection is loaded from the store once at construction and fully
// re-serialized on every mutation.
package services

// Store keys for the persisted collections. The session key holds the id of
// the active user, re-resolved against the users collection, so it behaves
// as a pointer rather than a stale copy.
const (
	usersKey   = "campuskart_users"
	itemsKey   = "campuskart_items"
	sessionKey = "campuskart_current_user"
)
