package loader

// gltfLoaderBackend reads .gltf and .glb files.
type gltfLoaderBackend struct{}

var _ loaderBackend = &gltfLoaderBackend{}

func newGLTFLoaderBackend() loaderBackend {
	return &gltfLoaderBackend{}
}

func (b *gltfLoaderBackend) Bounds(path string) ([3]float32, error) {
	f, err := readGLTFFile(path)
	if err != nil {
		return [3]float32{}, err
	}
	return f.bounds()
}
