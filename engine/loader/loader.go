package loader

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-showroom/engine/scene"
)

// DefaultWorkers is the number of models measured concurrently.
const DefaultWorkers = 2

var (
	// ErrUnsupportedFormat is returned for files no backend can read.
	ErrUnsupportedFormat = errors.New("unsupported model format")
	// ErrClosed is reported to loads requested after Close.
	ErrClosed = errors.New("loader closed")
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	baseDir  string
	workers  int
	backends map[string]loaderBackend
	cache    map[string][3]float32

	pool    worker.DynamicWorkerPool
	tasks   atomic.Int64
	closed  atomic.Bool
	closeMu sync.Once
}

// Loader measures model files and hands each product a scene node sized like its model.
// Results are cached by resolved path.
// Thread-safe for concurrent access.
type Loader interface {
	// Load measures url on a worker goroutine and calls exactly one of onReady or onError.
	// onReady receives a node labelled after the file with the model's bounding size.
	// Loads still queued when Close is called are dropped without a callback.
	//
	// Parameters:
	//   - url: path of the model file, relative paths resolve against the base directory
	//   - onReady: called with the model node and its bounding size
	//   - onError: called with the failure
	Load(url string, onReady func(model scene.Visual, boundingSize [3]float32), onError func(err error))

	// Bounds measures a model synchronously, consulting and filling the cache.
	//
	// Parameters:
	//   - path: path of the model file
	//
	// Returns:
	//   - [3]float32: width, height and depth with node transforms applied
	//   - error: error if the file cannot be read or has no geometry
	Bounds(path string) ([3]float32, error)

	// Get returns a cached bounding size.
	//
	// Parameters:
	//   - path: path of the model file
	//
	// Returns:
	//   - [3]float32: the cached size
	//   - bool: false when the path has not been measured
	Get(path string) ([3]float32, bool)

	// Close stops the worker pool. Idempotent.
	Close()
}

var _ Loader = &loader{}

// NewLoader creates a Loader with glTF and GLB support.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new Loader ready to accept loads
func NewLoader(options ...LoaderBuilderOption) Loader {
	gltf := newGLTFLoaderBackend()
	l := &loader{
		workers: DefaultWorkers,
		backends: map[string]loaderBackend{
			".gltf": gltf,
			".glb":  gltf,
		},
		cache: make(map[string][3]float32),
	}

	for _, option := range options {
		option(l)
	}

	l.pool = worker.NewDynamicWorkerPool(max(l.workers, 1), 64, 1*time.Second)
	return l
}

func (l *loader) resolve(path string) string {
	if l.baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.baseDir, path)
	}
	return filepath.Clean(path)
}

func (l *loader) Get(path string) ([3]float32, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	size, ok := l.cache[l.resolve(path)]
	return size, ok
}

func (l *loader) Bounds(path string) ([3]float32, error) {
	resolved := l.resolve(path)

	l.mu.RLock()
	if size, ok := l.cache[resolved]; ok {
		l.mu.RUnlock()
		return size, nil
	}
	l.mu.RUnlock()

	backend, ok := l.backends[strings.ToLower(filepath.Ext(resolved))]
	if !ok {
		return [3]float32{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	size, err := backend.Bounds(resolved)
	if err != nil {
		return [3]float32{}, fmt.Errorf("failed to measure %s: %w", path, err)
	}

	l.mu.Lock()
	l.cache[resolved] = size
	l.mu.Unlock()
	return size, nil
}

func (l *loader) Load(url string, onReady func(model scene.Visual, boundingSize [3]float32), onError func(err error)) {
	if l.closed.Load() {
		if onError != nil {
			onError(ErrClosed)
		}
		return
	}

	id := l.tasks.Add(1)
	l.pool.SubmitTask(worker.Task{
		ID:      int(id),
		Payload: url,
		Do: func() (any, error) {
			size, err := l.Bounds(url)
			if err != nil {
				log.Printf("[Loader] %v", err)
				if onError != nil {
					onError(err)
				}
				return nil, err
			}

			name := strings.TrimSuffix(filepath.Base(url), filepath.Ext(url))
			if onReady != nil {
				onReady(scene.NewNode(name, scene.WithBoundingSize(size)), size)
			}
			return size, nil
		},
	})
}

func (l *loader) Close() {
	l.closeMu.Do(func() {
		l.closed.Store(true)
		l.pool.Stop()
		log.Printf("[Loader] closed after %d loads", l.tasks.Load())
	})
}
