package store

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Family identifies one of the supported bitmap font layouts.
type Family int

const (
	// Unknown indicates an unrecognized font family.
	Unknown Family = iota
	// HZK indicates the GB2312 ideograph font (HZK12 and friends).
	HZK
	// ASC indicates the fixed-width printable ASCII font.
	ASC
)

// String returns the string representation of the family.
func (f Family) String() string {
	switch f {
	case HZK:
		return "HZK"
	case ASC:
		return "ASC"
	default:
		return "Unknown"
	}
}

// Dir returns the asset sub-directory holding the family's store files.
func (f Family) Dir() string {
	switch f {
	case HZK, ASC:
		return f.String()
	default:
		return ""
	}
}

// FileName returns the store file name for the given size, e.g. "HZK12".
func (f Family) FileName(size int) string {
	if f == Unknown {
		return ""
	}
	return f.String() + strconv.Itoa(size)
}

// ParseFamily converts a family tag to a Family. Matching is case-insensitive.
func ParseFamily(s string) Family {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HZK":
		return HZK
	case "ASC":
		return ASC
	default:
		return Unknown
	}
}

// Detect determines family and size from a store file name such as
// "assets/HZK/HZK12". Returns Unknown and 0 if the name does not follow the
// <FAMILY><SIZE> convention.
func Detect(filename string) (Family, int) {
	base := strings.ToUpper(filepath.Base(filename))
	base = strings.TrimSuffix(base, filepath.Ext(base))

	for _, f := range []Family{HZK, ASC} {
		tag := f.String()
		if !strings.HasPrefix(base, tag) {
			continue
		}
		size, err := strconv.Atoi(base[len(tag):])
		if err != nil || size <= 0 {
			return Unknown, 0
		}
		return f, size
	}

	return Unknown, 0
}
