package format

// BookInfo renders a title and author as "Title: <title>, Author: <author>".
// Inputs are interpolated as-is, without trimming or escaping.
func BookInfo(title, author string) string {
	return "Title: " + title + ", Author: " + author
}
