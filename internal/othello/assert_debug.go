//go:build apollodebug

package othello

const assertPreconditions = true
