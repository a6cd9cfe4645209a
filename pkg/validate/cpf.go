package validate

import (
	"errors"
	"strings"
)

const cpfLength = 11

var ErrCPFTooLong = errors.New("cpf must have at most 11 digits")

// NormalizeCPF strips every non-digit character and left-pads the result
// with zeros to 11 digits. Inputs longer than 11 digits are rejected.
func NormalizeCPF(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > cpfLength {
		return "", ErrCPFTooLong
	}
	return strings.Repeat("0", cpfLength-len(digits)) + digits, nil
}
