package assets

// ResourceType classifies the on-disk assets the manager tracks.
type ResourceType int

const (
	ResourceTypeNone ResourceType = iota
	ResourceTypeImage
)

type Loader interface {
	// Load reads and decodes the asset at path. The concrete return type
	// depends on the loader; the image loader returns *metadata.ImageData.
	Load(path string) (interface{}, error)
}
