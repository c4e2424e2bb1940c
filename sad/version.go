package sad

import (
	"fmt"

	"github.com/arloliu/cesr/errs"
)

// versionStringLen is the fixed width of the version-string header
// (spec.md §4.9): 4 protocol chars, 1 major, 1 minor, 4 FORMAT, 6 size,
// 1 trailing underscore.
const versionStringLen = 4 + 1 + 1 + 4 + 6 + 1

// BuildVersionString renders info with size backfilled as its 6-digit
// lowercase hex field (spec.md: "M, m are lowercase hex, ssssss is
// lowercase hex of the total encoded record size").
func BuildVersionString(info VersionInfo, size int) (string, error) {
	if len(info.Protocol) != 4 {
		return "", fmt.Errorf("%w: protocol %q must be exactly 4 characters", errs.ErrVersionStringLength, info.Protocol)
	}
	if info.Major > 0xF || info.Minor > 0xF {
		return "", fmt.Errorf("%w: major/minor must each fit one hex digit", errs.ErrVersionStringLength)
	}
	if size < 0 || size > 0xFFFFFF {
		return "", fmt.Errorf("%w: size %d does not fit 6 hex digits", errs.ErrVersionStringLength, size)
	}

	s := fmt.Sprintf("%s%x%x%s%06x_", info.Protocol, info.Major, info.Minor, info.Format, size)
	if len(s) != versionStringLen {
		return "", fmt.Errorf("%w: built version string %q is %d chars, want %d", errs.ErrVersionStringLength, s, len(s), versionStringLen)
	}

	return s, nil
}

// ParseVersionString reverses BuildVersionString, recovering the
// protocol, major/minor version, format, and the size it encoded.
func ParseVersionString(s string) (VersionInfo, int, error) {
	if len(s) != versionStringLen || s[len(s)-1] != '_' {
		return VersionInfo{}, 0, fmt.Errorf("%w: %q is not a %d-char version string", errs.ErrVersionStringLength, s, versionStringLen)
	}

	protocol := s[0:4]

	var major, minor int
	if _, err := fmt.Sscanf(s[4:5], "%x", &major); err != nil {
		return VersionInfo{}, 0, fmt.Errorf("%w: major version %q: %s", errs.ErrVersionStringLength, s[4:5], err)
	}
	if _, err := fmt.Sscanf(s[5:6], "%x", &minor); err != nil {
		return VersionInfo{}, 0, fmt.Errorf("%w: minor version %q: %s", errs.ErrVersionStringLength, s[5:6], err)
	}

	formatText := s[6:10]
	format, ok := formatFromText(formatText)
	if !ok {
		return VersionInfo{}, 0, fmt.Errorf("%w: %q is not a recognized format", errs.ErrVersionStringLength, formatText)
	}

	var size int
	if _, err := fmt.Sscanf(s[10:16], "%x", &size); err != nil {
		return VersionInfo{}, 0, fmt.Errorf("%w: size %q: %s", errs.ErrVersionStringLength, s[10:16], err)
	}

	return VersionInfo{Protocol: protocol, Major: byte(major), Minor: byte(minor), Format: format}, size, nil
}

func formatFromText(s string) (FormatCode, bool) {
	switch s {
	case "JSON":
		return FormatJSON, true
	case "CBOR":
		return FormatCBOR, true
	case "MGPK":
		return FormatMGPK, true
	default:
		return 0, false
	}
}
