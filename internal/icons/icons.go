// Package icons provides the decorative glyphs used in list rows, with
// a nerd-font, plain-unicode and icon-free variant selectable from the
// config.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Library string
	Book    string
	Opened  string
	Missing string
}

var (
	nerdIcons = Icons{
		Library: " ", // nf-fa-book
		Book:    " ", // nf-fa-book
		Opened:  "",  // nf-fa-star
		Missing: "",  // nf-fa-chain_broken
	}

	unicodeIcons = Icons{
		Library: "📚 ",
		Book:    "📖 ",
		Opened:  "★",
		Missing: "✗",
	}

	noneIcons = Icons{
		Opened:  "*",
		Missing: "!",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// FormatLibrary formats a library name with the appropriate icon.
func FormatLibrary(name string) string {
	return current.Library + name
}

// FormatBook formats a book title with the appropriate icon.
func FormatBook(title string) string {
	return current.Book + title
}

// Opened returns the marker for libraries that were opened before.
func Opened() string {
	return current.Opened
}

// Missing returns the marker for library paths that are currently absent.
func Missing() string {
	return current.Missing
}
