package pricing

import "fmt"

//go:generate go run github.com/dmarkham/enumer -type Right -trimprefix Right -transform lower -output right_enumer.go

// Right identifies an option as a call or a put.
type Right int

const (
	RightCall Right = iota
	RightPut
)

// Code returns the single-letter flag used in market data files ("C" or "P").
func (r Right) Code() string {
	if r == RightPut {
		return "P"
	}
	return "C"
}

// ParseRightCode converts a market data call/put flag into a Right.
func ParseRightCode(code string) (Right, error) {
	switch code {
	case "C", "c":
		return RightCall, nil
	case "P", "p":
		return RightPut, nil
	}
	return RightCall, fmt.Errorf("invalid call/put flag %q", code)
}
