// Package tensor provides the element types and tensor geometry shared by the
// im2row packages.
package tensor

import (
	"fmt"
	"unsafe"
)

// Float is a constraint for the element types the transform is instantiated
// for. It uses Go generics so both precisions share a single implementation.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for a buffer.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// ParseDataType maps "float32"/"f32" and "float64"/"f64" to a DataType.
func ParseDataType(s string) (DataType, error) {
	switch s {
	case "float32", "f32":
		return Float32, nil
	case "float64", "f64":
		return Float64, nil
	default:
		return 0, fmt.Errorf("unsupported data type %q (want float32 or float64)", s)
	}
}

// DataTypeOf infers the DataType of the generic element type T.
// Named types over float32 or float64 map to their underlying type.
func DataTypeOf[T Float]() DataType {
	var dummy T
	switch unsafe.Sizeof(dummy) {
	case 4:
		return Float32
	default:
		return Float64
	}
}
