// Package loader reads raw configuration maps for kiln.
//
// A TOML file and KILN_ environment variables each produce a nested
// map[string]any keyed by section then setting name. The config package
// merges the maps and resolves typed options from the result.
package loader

// Loader is the interface for configuration loaders.
type Loader interface {
	// Load reads configuration from the source and returns a map.
	// Returns nil, nil if the source doesn't exist (not an error).
	Load() (map[string]any, error)
}

// FileSystem is the file access needed by file loaders. vfs.OSFS and
// vfs.MemFS both satisfy it.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}
