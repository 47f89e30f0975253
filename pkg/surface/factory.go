package surface

import "fmt"

// New returns a smoother by name with generic starting parameters. The
// starting point only seeds the optimizer; Fit moves it to the market.
func New(name string) (Smoother, error) {
	switch name {
	case "sabr":
		return NewSABR(0.2, 0.5, 0, 0.5), nil
	case "svi":
		return NewSVI(0.04, 0.1, 0, 0, 0.1), nil
	case "ssvi":
		return NewSSVI(0.2, 0, 0.5, 0.4), nil
	default:
		return nil, fmt.Errorf("unknown smoother %q", name)
	}
}
