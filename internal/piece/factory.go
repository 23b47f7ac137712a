package piece

// Source picks an integer in [0, n). *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Factory creates pieces at the spawn position of a grid of a given width.
type Factory struct {
	rng    Source
	spawnX int
}

// NewFactory returns a factory spawning pieces for a grid of boardWidth
// columns, drawing random kinds from rng.
func NewFactory(rng Source, boardWidth int) *Factory {
	return &Factory{
		rng:    rng,
		spawnX: boardWidth/2 - 1,
	}
}

// New creates a piece of the given kind in its canonical orientation at the
// spawn position.
func (f *Factory) New(kind Kind) (*Piece, error) {
	shape, err := ShapeOf(kind)
	if err != nil {
		return nil, err
	}
	return &Piece{
		Kind:  kind,
		Shape: shape,
		Color: ColorOf(kind),
		X:     f.spawnX,
		Y:     0,
	}, nil
}

// Random creates a piece whose kind is chosen uniformly from the seven
// kinds. Calls are independent, so repeats are possible.
func (f *Factory) Random() *Piece {
	kind := Kinds[f.rng.IntN(len(Kinds))]
	p, _ := f.New(kind)
	return p
}
