package model

const EmptyTitle string = ""

type MovieDetails struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Year       int      `json:"year"`
	PosterLink string   `json:"posterLink"`
	Genres     []string `json:"genres"`
	Rating     float64  `json:"rating"`

	Overview string `json:"overview"`
}
