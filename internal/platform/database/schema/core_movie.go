package schema

// CoreMovieTable represents the 'core.movie' table
type CoreMovieTable struct {
	Table         string
	ID            string
	Title         string
	Slug          string
	ReleaseYear   string
	Genres        string
	PosterURL     string
	TMDBID        string
	Director      string
	Hero          string
	Heroine       string
	MusicDirector string
	Producer      string
	Writer        string
	CreatedAt     string
	UpdatedAt     string
	DeletedAt     string
}

// CoreMovie is the schema definition for core.movie
var CoreMovie = CoreMovieTable{
	Table:         "core.movie",
	ID:            "id",
	Title:         "title",
	Slug:          "slug",
	ReleaseYear:   "releaseyear",
	Genres:        "genres",
	PosterURL:     "posterurl",
	TMDBID:        "tmdbid",
	Director:      "director",
	Hero:          "hero",
	Heroine:       "heroine",
	MusicDirector: "musicdirector",
	Producer:      "producer",
	Writer:        "writer",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
	DeletedAt:     "deletedat",
}

// Columns returns the selectable columns in scan order (DeletedAt excluded).
func (t CoreMovieTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.ReleaseYear, t.Genres, t.PosterURL, t.TMDBID,
		t.Director, t.Hero, t.Heroine, t.MusicDirector, t.Producer, t.Writer,
		t.CreatedAt, t.UpdatedAt,
	}
}

// CreditColumns returns the six free-text person columns.
func (t CoreMovieTable) CreditColumns() []string {
	return []string{t.Director, t.Hero, t.Heroine, t.MusicDirector, t.Producer, t.Writer}
}
