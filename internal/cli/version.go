package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calvinalkan/slotkit/internal/config"
	"github.com/calvinalkan/slotkit/pkg/slotkit"
)

// parseVersion parses a counter given in decimal or with a 0x prefix in hex.
// A leading zero does not switch to octal.
func parseVersion(s string) (slotkit.Version, error) {
	digits, base := s, 10

	if after, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		digits, base = after, 16
	}

	n, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	return slotkit.Version(n), nil
}

// parseVersionPair parses the <a> <b> arguments; [Command] has already
// checked there are exactly two.
func parseVersionPair(args []string) (slotkit.Version, slotkit.Version, error) {
	a, err := parseVersion(args[0])
	if err != nil {
		return 0, 0, err
	}

	b, err := parseVersion(args[1])
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

func formatVersion(v uint16, base string) string {
	if base == config.BaseHex {
		return fmt.Sprintf("0x%04x", v)
	}

	return strconv.FormatUint(uint64(v), 10)
}
