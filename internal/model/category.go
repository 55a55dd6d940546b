package model

// Category is a display/classification tag for a transaction, drawn
// from a fixed catalog per transaction type. Label, Emoji and Color are
// presentation metadata only.
type Category struct {
	ID    string
	Label string
	Emoji string
	Color string
}
