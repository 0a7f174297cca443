package ports

// Clipboard copies text to the user's clipboard
type Clipboard interface {
	Copy(text string) error
}
