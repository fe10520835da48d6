package loaders

// ResourceType identifies which loader handles an asset file.
type ResourceType int

const (
	ResourceTypeNone ResourceType = iota
	// A source image (tile source or font page).
	ResourceTypeImage
	// An authored tile set module description (TOML).
	ResourceTypeTileSetModule
	// A compiled tile set artifact (JSON).
	ResourceTypeTileSet
	// A bitmap font descriptor (.fnt).
	ResourceTypeBitmapFont
)

// Resource is a loaded asset. Data holds the loader-specific payload.
type Resource struct {
	Name     string
	FullPath string
	DataSize uint64
	Data     interface{}
}

// Loader turns a file on disk into a typed Resource. `interface{}` params
// allow loaders to accept loader-specific options.
type Loader interface {
	Load(path string, params interface{}) (*Resource, error)
	Unload(*Resource) error
}
