package model

// Profile holds the user's display identity. There is at most one
// profile per database.
type Profile struct {
	Name        string
	University  string
	AvatarEmoji string
}
