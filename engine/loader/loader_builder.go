package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithBaseDir is an option builder that sets the directory relative model paths resolve against.
//
// Parameters:
//   - dir: the asset directory
//
// Returns:
//   - LoaderBuilderOption: a function that applies the base directory option to a loader
func WithBaseDir(dir string) LoaderBuilderOption {
	return func(l *loader) {
		l.baseDir = dir
	}
}

// WithWorkers is an option builder that sets how many models are measured concurrently.
// Non-positive values are ignored.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithCached is an option builder that pre-populates the cache with a known bounding size.
//
// Parameters:
//   - path: the model path, resolved against a base directory set by an earlier option
//   - size: the bounding size to report for it
//
// Returns:
//   - LoaderBuilderOption: a function that applies the cache option to a loader
func WithCached(path string, size [3]float32) LoaderBuilderOption {
	return func(l *loader) {
		l.cache[l.resolve(path)] = size
	}
}
