package book

import "bookstore/internal/platform/format"

// Service provides book-related business logic.
type Service struct{}

// NewService creates a new book service.
func NewService() *Service {
	return &Service{}
}

// FormattedInfo returns the display string for a book.
func (s *Service) FormattedInfo(b Book) string {
	return format.BookInfo(b.Title(), b.Author())
}
