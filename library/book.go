package library

// Book is a title in the catalog.
// Available is true iff no open Loan references this Book.
//
// Books must be created with BuildBook, which makes them available.
// The zero value and struct literals start unavailable, so Borrow would never lend them.
type Book struct {
	Title     string
	Author    string
	ISBN      ISBNString
	Available bool
}

// BuildBook creates a new Book which is available for lending.
func BuildBook(title string, author string, isbn ISBNString) *Book {
	return &Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Available: true,
	}
}
