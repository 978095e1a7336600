//go:build !lazyseq_noassert

package cursor

const assertions = true
