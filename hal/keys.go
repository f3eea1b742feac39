package hal

import (
	"fmt"
	"strings"
)

var keyNames = [...]struct {
	name string
	key  Keys
}{
	{"a", KeyA},
	{"b", KeyB},
	{"select", KeySelect},
	{"start", KeyStart},
	{"right", KeyRight},
	{"left", KeyLeft},
	{"up", KeyUp},
	{"down", KeyDown},
	{"r", KeyR},
	{"l", KeyL},
	{"x", KeyX},
	{"y", KeyY},
	{"touch", KeyTouch},
	{"lid", KeyLid},
}

// ParseKey maps a button name ("a", "left", "start", ...) to its register bit.
func ParseKey(name string) (Keys, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, kn := range keyNames {
		if kn.name == n {
			return kn.key, nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

// ParseKeys ORs together the named buttons.
func ParseKeys(names []string) (Keys, error) {
	var k Keys
	for _, n := range names {
		b, err := ParseKey(n)
		if err != nil {
			return 0, err
		}
		k |= b
	}
	return k, nil
}

func (k Keys) String() string {
	if k == 0 {
		return "none"
	}
	var parts []string
	for _, kn := range keyNames {
		if k&kn.key != 0 {
			parts = append(parts, kn.name)
		}
	}
	if rest := k &^ (KeyLid<<1 - 1); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%04x", uint16(rest)))
	}
	return strings.Join(parts, "+")
}
