package shortener

import "github.com/jaevor/go-nanoid"

// codeAlphabet is the fixed 62-character set generated codes are drawn from.
const codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultCodeLength is the generated alias length when none is configured.
const DefaultCodeLength = 7

// CodeGenerator produces random short codes.
type CodeGenerator func() string

// NewCodeGenerator returns a generator producing codes of exactly length
// characters, uniformly drawn from codeAlphabet using a cryptographic
// random source.
func NewCodeGenerator(length int) (CodeGenerator, error) {
	gen, err := nanoid.CustomASCII(codeAlphabet, length)
	if err != nil {
		return nil, err
	}

	return CodeGenerator(gen), nil
}
