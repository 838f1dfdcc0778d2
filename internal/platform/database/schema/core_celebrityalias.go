package schema

// CoreCelebrityAliasTable represents the 'core.celebrityalias' table.
//
// Each row maps a compacted spelling of a name to exactly one celebrity.
type CoreCelebrityAliasTable struct {
	Table       string
	AliasKey    string
	CelebrityID string
	Source      string
	CreatedAt   string
}

// CoreCelebrityAlias is the schema definition for core.celebrityalias
var CoreCelebrityAlias = CoreCelebrityAliasTable{
	Table:       "core.celebrityalias",
	AliasKey:    "aliaskey",
	CelebrityID: "celebrityid",
	Source:      "source",
	CreatedAt:   "createdat",
}
