package entity

import "github.com/google/uuid"

// Track is an entry of the shared catalog. Curation never mutates it.
type Track struct {
	ID     uuid.UUID
	Title  string
	Artist string
	URL    string
	Cover  string
}
