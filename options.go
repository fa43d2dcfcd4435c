package lowp

// PixmapOption configures a Pixmap during construction, mirroring the
// teacher's ContextOption functional-options pattern.
type PixmapOption func(*pixmapOptions)

type pixmapOptions struct {
	clear *Color
}

// WithClearColor pre-fills a new Pixmap with the given premultiplied color
// instead of leaving it fully transparent.
func WithClearColor(c Color) PixmapOption {
	return func(o *pixmapOptions) {
		o.clear = &c
	}
}
