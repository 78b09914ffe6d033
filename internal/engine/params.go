package engine

import "math/big"

// fixedParameters is the built-in table of precomputed safe-prime groups,
// keyed by bit size.
var fixedParameters = map[int]Parameters{
	256: mustParams(
		"42765216643065397982265462252423826320512529931694366715111734768493812630447",
		"21382608321532698991132731126211913160256264965847183357555867384246906315223",
		4, 9, 256,
	),
}

func mustParams(p, q string, g, h int64, bitSize int) Parameters {
	pp, ok := new(big.Int).SetString(p, 10)
	if !ok {
		panic("engine: malformed fixed parameter p")
	}
	qq, ok := new(big.Int).SetString(q, 10)
	if !ok {
		panic("engine: malformed fixed parameter q")
	}
	return Parameters{
		P:       pp,
		Q:       qq,
		G:       big.NewInt(g),
		H:       big.NewInt(h),
		BitSize: bitSize,
	}
}
