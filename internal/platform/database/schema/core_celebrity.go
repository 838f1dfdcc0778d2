package schema

// CoreCelebrityTable represents the 'core.celebrity' table
type CoreCelebrityTable struct {
	Table     string
	ID        string
	Slug      string
	Name      string
	NameAlt   string
	Bio       string
	ImageURL  string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// CoreCelebrity is the schema definition for core.celebrity
var CoreCelebrity = CoreCelebrityTable{
	Table:     "core.celebrity",
	ID:        "id",
	Slug:      "slug",
	Name:      "name",
	NameAlt:   "namealt",
	Bio:       "bio",
	ImageURL:  "imageurl",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

func (t CoreCelebrityTable) Columns() []string {
	return []string{t.ID, t.Slug, t.Name, t.NameAlt, t.Bio, t.ImageURL, t.CreatedAt, t.UpdatedAt}
}
