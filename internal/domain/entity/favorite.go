package entity

// Favorite is a movie bookmarked by a user.
type Favorite struct {
	ID        string // Store-assigned unique identifier.
	MovieName string // Display title of the movie.
	ImgURL    string // Poster image URL.
	MovieID   string // External movie catalog identifier.
	UserID    string // Owning user's ID.
}
