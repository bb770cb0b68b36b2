package export

// Config holds configuration for locating the export files.
type Config struct {
	// Source selects where export files are read from (local, storage).
	Source string `mapstructure:"source" default:"local"`
	// Dir is the local directory holding the export files.
	Dir string `mapstructure:"dir" default:"."`
	// Prefix is the object prefix used when Source is storage.
	Prefix string `mapstructure:"prefix" default:"exports"`
	// BaseFile is the name of the primary export file.
	BaseFile string `mapstructure:"base_file" default:"item.data"`
	// PostedFile is the name of the secondary export file.
	PostedFile string `mapstructure:"posted_file" default:"item_posted.data"`
	// StrictDuplicates turns a repeated key within one file into an error.
	StrictDuplicates bool `mapstructure:"strict_duplicates" default:"false"`
	// CacheTTLSeconds controls how long the HTTP catalog is reused. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

const (
	SourceLocal   = "local"
	SourceStorage = "storage"
)

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceLocal, SourceStorage:
		return true
	default:
		return false
	}
}
