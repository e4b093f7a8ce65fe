package adapter

import "context"

// Repositories groups the repositories bound to one transaction.
type Repositories interface {
	Users() UserRepository
	Tracks() TrackRepository
	Favorites() FavoriteRepository
	Playlists() PlaylistRepository
}

// TransactionManager runs fn inside a single store transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}
