// internal/assets/registry.go
package assets

import (
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

type loadResult struct {
	name string
	path string
	img  image.Image
	err  error
}

// Registry loads images in the background and hands them to the game loop.
// Load only starts a fetch; finished fetches are applied by Poll, which must be
// called from the goroutine that owns the game state. Images that have not
// loaded yet are simply absent.
type Registry struct {
	fsys      fs.FS
	threshold int
	images    map[string]*ebiten.Image
	results   chan loadResult
	pending   int
	loaded    int
	failed    int
	ready     bool
	onReady   func()
	newImage  ImageFactory
}

// ImageFactory turns a decoded image into a drawable one.
type ImageFactory func(image.Image) *ebiten.Image

// NewRegistry creates a registry reading from fsys that becomes ready after
// threshold successful loads.
func NewRegistry(fsys fs.FS, threshold int) *Registry {
	return NewRegistryWithFactory(fsys, threshold, ebiten.NewImageFromImage)
}

// NewRegistryWithFactory is NewRegistry with a custom image conversion, for
// running without a graphics device.
func NewRegistryWithFactory(fsys fs.FS, threshold int, newImage ImageFactory) *Registry {
	return &Registry{
		fsys:      fsys,
		threshold: threshold,
		images:    make(map[string]*ebiten.Image),
		results:   make(chan loadResult, 64),
		newImage:  newImage,
	}
}

// OnReady registers the callback fired when enough images have loaded. If
// enough have loaded already, it runs on the next Poll.
func (r *Registry) OnReady(fn func()) {
	r.onReady = fn
}

// Load starts fetching path and stores the result under name.
func (r *Registry) Load(name, path string) {
	r.pending++
	go func() {
		img, err := r.decode(path)
		r.results <- loadResult{name: name, path: path, img: img, err: err}
	}()
}

func (r *Registry) decode(path string) (image.Image, error) {
	f, err := r.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Poll applies every fetch that has finished since the last call. It never blocks.
func (r *Registry) Poll() {
	for {
		select {
		case res := <-r.results:
			r.apply(res)
		default:
			r.fireReady()
			return
		}
	}
}

func (r *Registry) apply(res loadResult) {
	r.pending--
	if res.err != nil {
		r.failed++
		log.Printf("WARNING: image %s (%s) not loaded: %v", res.name, res.path, res.err)
		return
	}
	r.images[res.name] = r.newImage(res.img)
	r.loaded++
}

func (r *Registry) fireReady() {
	if r.ready || r.loaded < r.threshold || r.onReady == nil {
		return
	}
	r.ready = true
	log.Printf("Assets ready: %d loaded, %d pending, %d failed", r.loaded, r.pending, r.failed)
	r.onReady()
}

// Image returns the image stored under name. ok is false until it has loaded.
func (r *Registry) Image(name string) (img *ebiten.Image, ok bool) {
	img, ok = r.images[name]
	return img, ok
}
