package turtle

import (
	"fmt"
	"strings"
)

// Kind identifies a curve.
type Kind int

const (
	// Koch is a single Koch curve.
	Koch Kind = iota + 1
	// KochSnowflake is three Koch curves arranged as a closed triangle.
	KochSnowflake
	// CCurve is the Lévy C curve.
	CCurve
	// Dragon is the Heighway dragon.
	Dragon
)

// Kinds lists all known kinds.
var Kinds = []Kind{Koch, KochSnowflake, CCurve, Dragon}

func (k Kind) String() string {
	switch k {
	case Koch:
		return "koch"
	case KochSnowflake:
		return "snowflake"
	case CCurve:
		return "ccurve"
	case Dragon:
		return "dragon"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) valid() bool {
	return k >= Koch && k <= Dragon
}

// ParseKind parses the name of a kind, as returned by [Kind.String]. It is
// case-insensitive and also accepts "c-curve" and "koch-snowflake".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "koch":
		return Koch, nil
	case "snowflake", "koch-snowflake":
		return KochSnowflake, nil
	case "ccurve", "c-curve":
		return CCurve, nil
	case "dragon":
		return Dragon, nil
	default:
		return 0, fmt.Errorf("%w: unknown curve kind %q", ErrInvalidArgument, s)
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("%w: unknown curve kind %d", ErrInvalidArgument, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
