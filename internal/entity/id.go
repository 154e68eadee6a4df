package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type (
	authorTag struct{}
	bookTag   struct{}
)

// ID is a UUID bound to the kind of entity it identifies, so an AuthorID
// can not be passed where a BookID is expected.
type ID[T any] struct {
	value uuid.UUID
}

type (
	AuthorID = ID[authorTag]
	BookID   = ID[bookTag]
)

func NewAuthorID() AuthorID {
	return ID[authorTag]{value: uuid.New()}
}

func NewBookID() BookID {
	return ID[bookTag]{value: uuid.New()}
}

func ParseAuthorID(s string) (AuthorID, error) {
	return parseID[authorTag](s)
}

func ParseBookID(s string) (BookID, error) {
	return parseID[bookTag](s)
}

func parseID[T any](s string) (ID[T], error) {
	value, err := uuid.Parse(s)

	if err != nil {
		return ID[T]{}, fmt.Errorf("invalid id %q: %w", s, err)
	}

	return ID[T]{value: value}, nil
}

func (id ID[T]) String() string {
	return id.value.String()
}

func (id ID[T]) IsZero() bool {
	return id.value == uuid.Nil
}

func (id ID[T]) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID[T]) UnmarshalText(data []byte) error {
	parsed, err := parseID[T](string(data))

	if err != nil {
		return err
	}

	*id = parsed
	return nil
}
