package testutil

import (
	"errors"

	"bookstore/internal/book"
)

// ErrWrite is returned by FailingWriter.
var ErrWrite = errors.New("write failed")

// TestBook is the book printed by the bookinfo command.
var TestBook = book.New("The Great Gatsby", "F. Scott Fitzgerald")

// TestBookInfo is the expected display string for TestBook
const TestBookInfo = "Title: The Great Gatsby, Author: F. Scott Fitzgerald"

// FailingWriter is an io.Writer that always fails
type FailingWriter struct{}

func (FailingWriter) Write(p []byte) (int, error) {
	return 0, ErrWrite
}
