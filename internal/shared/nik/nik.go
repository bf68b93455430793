package nik

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Prefix is the fixed code prefix for every employee NIK.
	Prefix = "EMP-"
	// Base is the first NIK handed out when no employee exists yet.
	Base = "EMP-000001"

	suffixWidth = 6
)

// Next returns the NIK following last by incrementing its numeric suffix
// and re-padding it to the same width. An empty last starts the sequence
// at Base.
func Next(last string) (string, error) {
	if last == "" {
		return Base, nil
	}

	suffix := strings.TrimPrefix(last, Prefix)
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return "", fmt.Errorf("malformed nik %q: %w", last, err)
	}

	return fmt.Sprintf("%s%0*d", Prefix, suffixWidth, n+1), nil
}
