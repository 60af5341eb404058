package coordinate

// Point is a generic x/y pair. The screen reports cursor positions
// with it and tests use it to address cells.
type Point[T comparable] struct {
	X T
	Y T
}

func NewPoint[T comparable](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}
