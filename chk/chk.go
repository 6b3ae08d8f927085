// Package chk is a shortcut to the lol error checkers: chk.E(err) prints a non-nil error
// at error level and reports whether there was one.
package chk

import (
	"varuint.lol/lol"
)

var F, E, W, I, D, T lol.Chk

func init() {
	F, E, W, I, D, T = lol.Main.Check.F, lol.Main.Check.E, lol.Main.Check.W,
		lol.Main.Check.I, lol.Main.Check.D, lol.Main.Check.T
}
