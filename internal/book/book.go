package book

import "bookstore/internal/platform/format"

// Book represents a book entity. Fields are set once by New and are
// read-only afterwards.
type Book struct {
	title  string
	author string
}

// New creates a book. Values are stored verbatim.
func New(title, author string) Book {
	return Book{title: title, author: author}
}

// Title returns the book title.
func (b Book) Title() string {
	return b.title
}

// Author returns the book author.
func (b Book) Author() string {
	return b.author
}

func (b Book) String() string {
	return format.BookInfo(b.title, b.author)
}
