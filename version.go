package cuda

import "fmt"

// Version is a driver version as reported by cuDriverGetVersion,
// decomposed into its components.
type Version struct {
	Raw   int32
	Major int32
	Minor int32
	Patch int32
}

// ParseVersion decomposes the integer encoding used by the driver, where
// 11020 means 11.2.0.
func ParseVersion(v int32) Version {
	return Version{
		Raw:   v,
		Major: v / 1000,
		Minor: (v % 1000) / 10,
		Patch: v % 10,
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsZero reports whether v is the zero version, which is what a failed
// version query leaves behind.
func (v Version) IsZero() bool { return v.Raw == 0 }
