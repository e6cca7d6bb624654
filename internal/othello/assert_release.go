//go:build !apollodebug

package othello

const assertPreconditions = false
