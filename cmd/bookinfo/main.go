package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"bookstore/internal/book"
)

func main() {
	loadEnvFiles()
	cfg := loadConfig()

	if err := run(os.Stdout, cfg); err != nil {
		log.Fatalf("cannot write book info: %v", err)
	}
}

func run(w io.Writer, cfg config) error {
	b := book.New("The Great Gatsby", "F. Scott Fitzgerald")
	bookService := book.NewService()

	info := bookService.FormattedInfo(b)
	if cfg.Debug {
		log.Printf("formatted book title=%q author=%q", b.Title(), b.Author())
	}

	if _, err := io.WriteString(w, info); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}
