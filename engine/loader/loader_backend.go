package loader

// loaderBackend measures models of one file format.
type loaderBackend interface {
	// Bounds returns the width, height and depth of the model at path, node transforms applied.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - [3]float32: the bounding size
	//   - error: error if loading fails
	Bounds(path string) ([3]float32, error)
}
