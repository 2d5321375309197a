package parser

import (
	"strconv"
	"strings"
)

// UnresolvedRegister is the sentinel returned by ResolveRegister for a
// spelling it does not recognize (spec §3, §4.1).
const UnresolvedRegister = -1

// registerNames maps every ABI and family spelling to its xN index.
var registerNames = buildRegisterNames()

func buildRegisterNames() map[string]int {
	names := map[string]int{
		"zero": 0,
		"ra":   1,
		"sp":   2,
		"gp":   3,
		"tp":   4,
		"fp":   8,
	}

	tIndices := []int{5, 6, 7, 28, 29, 30, 31}
	for i, idx := range tIndices {
		names["t"+strconv.Itoa(i)] = idx
	}

	names["s0"] = 8
	names["s1"] = 9
	for i := 2; i <= 11; i++ {
		names["s"+strconv.Itoa(i)] = i + 16
	}

	for i := 0; i <= 7; i++ {
		names["a"+strconv.Itoa(i)] = i + 10
	}

	return names
}

// ResolveRegister resolves a register spelling (xN or an ABI name) to its
// index in [0,31], or UnresolvedRegister if the spelling is not recognized.
func ResolveRegister(name string) int {
	name = strings.TrimSpace(name)
	if name == "" {
		return UnresolvedRegister
	}

	if strings.HasPrefix(name, "x") && len(name) > 1 {
		n, err := strconv.Atoi(name[1:])
		if err == nil && n >= 0 && n <= 31 {
			return n
		}
	}

	if idx, ok := registerNames[name]; ok {
		return idx
	}

	return UnresolvedRegister
}
