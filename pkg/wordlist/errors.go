package wordlist

import "errors"

var (
	ErrOpenInput   = errors.New("wordlist: failed to open input")
	ErrReadInput   = errors.New("wordlist: failed to read input")
	ErrWriteOutput = errors.New("wordlist: failed to write output")
)
