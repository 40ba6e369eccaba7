package entity

// Note is a free-form personal note owned by a user.
type Note struct {
	ID     string // Store-assigned unique identifier.
	Title  string
	Desc   string
	UserID string // Owning user's ID.
}
