package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookInfo(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		author string
		want   string
	}{
		{"regular", "The Great Gatsby", "F. Scott Fitzgerald", "Title: The Great Gatsby, Author: F. Scott Fitzgerald"},
		{"empty fields", "", "", "Title: , Author: "},
		{"empty author", "Dune", "", "Title: Dune, Author: "},
		{"markers in input", "Title: X", "Author: Y", "Title: Title: X, Author: Author: Y"},
		{"whitespace kept", "  padded ", "\tauthor\n", "Title:   padded , Author: \tauthor\n"},
		{"unicode", "Мастер и Маргарита", "Булгаков", "Title: Мастер и Маргарита, Author: Булгаков"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BookInfo(tt.title, tt.author))
		})
	}
}

func TestBookInfo_MatchesConcatenation(t *testing.T) {
	inputs := []string{"", "a", "Title:", "Author:", ", ", "%s %d"}
	for _, title := range inputs {
		for _, author := range inputs {
			assert.Equal(t, "Title: "+title+", Author: "+author, BookInfo(title, author))
		}
	}
}
