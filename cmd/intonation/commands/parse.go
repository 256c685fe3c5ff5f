package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mikowitz/intonation/ratio"
)

var (
	// ErrBadRatio indicates a ratio argument not of the form "N/D".
	ErrBadRatio = errors.New(`intonation: ratio must be of the form "N/D" with nonzero D`)
	// ErrBadIndices indicates an index argument that is not a comma-separated
	// list of integers.
	ErrBadIndices = errors.New("intonation: indices must be a comma-separated list of integers")
)

// parseRatio parses "N/D" into a 64-bit ratio. The wide width keeps deep
// lattice queries and large diamonds from overflowing; malformed input is an
// error here, before the core ever sees it.
func parseRatio(s string) (ratio.Ratio[int64], error) {
	var zero ratio.Ratio[int64]

	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return zero, fmt.Errorf("%w: %q", ErrBadRatio, s)
	}
	numer, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return zero, fmt.Errorf("%w: %q", ErrBadRatio, s)
	}
	denom, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return zero, fmt.Errorf("%w: %q", ErrBadRatio, s)
	}
	if denom == 0 {
		return zero, fmt.Errorf("%w: %q", ErrBadRatio, s)
	}

	return ratio.New(numer, denom), nil
}

// parseRatios parses each argument via parseRatio, failing on the first
// malformed one.
func parseRatios(args []string) ([]ratio.Ratio[int64], error) {
	ratios := make([]ratio.Ratio[int64], 0, len(args))
	for _, s := range args {
		r, err := parseRatio(s)
		if err != nil {
			return nil, err
		}
		ratios = append(ratios, r)
	}

	return ratios, nil
}

// parseIndices parses a comma-separated integer list like "1,-1,2".
func parseIndices(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	indices := make([]int, 0, len(parts))
	for _, p := range parts {
		i, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadIndices, s)
		}
		indices = append(indices, i)
	}

	return indices, nil
}

// parseIndexVectors parses each argument via parseIndices.
func parseIndexVectors(args []string) ([][]int, error) {
	vectors := make([][]int, 0, len(args))
	for _, s := range args {
		v, err := parseIndices(s)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, v)
	}

	return vectors, nil
}
