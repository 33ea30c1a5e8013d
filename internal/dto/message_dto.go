package dto

import "github.com/google/uuid"

// PublishEmbedBookMessage asks the consumer to (re)compute a book's
// embedding.
type PublishEmbedBookMessage struct {
	BookId uuid.UUID `json:"book_id"`
}
