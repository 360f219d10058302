package timeline

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimeValue interprets a caller-supplied duration or gap as seconds.
// Numbers are taken as seconds directly; strings must carry an "Ns" or
// "Nms" suffix ("2s", "1.5s", "500ms").
func ParseTimeValue(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		return parseTimeString(v)
	default:
		return 0, fmt.Errorf("%w: unsupported time value of type %T", ErrInvalidTimeFormat, value)
	}
}

func parseTimeString(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)

	// "ms" must be checked before "s"
	if strings.HasSuffix(trimmed, "ms") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(trimmed, "ms"), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		return n / 1000.0, nil
	}

	if strings.HasSuffix(trimmed, "s") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(trimmed, "s"), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		return n, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
}
