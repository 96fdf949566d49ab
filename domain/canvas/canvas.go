// Package canvas holds the pixel grid shared by a drawing room and the
// overlay merge that folds client edits into it.
package canvas

import "math"

// Pixel values with special meaning. Any other value paints the pixel.
const (
	Transparent int32 = 0
	Erase       int32 = -1
)

// Canvas is a row-major grid of Width*Height pixels.
type Canvas struct {
	Width    int32
	Height   int32
	Contents []int32
}

// Blank returns a canvas of the given size with every pixel transparent.
func Blank(width, height int32) (Canvas, error) {
	c := Canvas{Width: width, Height: height}
	if v := c.checkDimensions(); v != Fine {
		return Canvas{}, newValidationError(v, c)
	}
	c.Contents = make([]int32, int(width)*int(height))
	return c, nil
}

// Len is the number of pixels implied by the dimensions.
func (c Canvas) Len() int {
	return int(c.Width) * int(c.Height)
}

// Clone returns a deep copy of c.
func (c Canvas) Clone() Canvas {
	out := Canvas{Width: c.Width, Height: c.Height}
	if c.Contents != nil {
		out.Contents = make([]int32, len(c.Contents))
		copy(out.Contents, c.Contents)
	}
	return out
}

// At returns the pixel at column x, row y.
func (c Canvas) At(x, y int32) int32 {
	return c.Contents[int(y)*int(c.Width)+int(x)]
}

// Violation classifies a canvas against its invariants.
type Violation int

const (
	Fine Violation = iota
	NegativeWidth
	NegativeHeight
	OverflowingSize
	MismatchedSize
)

func (v Violation) String() string {
	switch v {
	case Fine:
		return "fine"
	case NegativeWidth:
		return "negative_width"
	case NegativeHeight:
		return "negative_height"
	case OverflowingSize:
		return "overflowing_size"
	case MismatchedSize:
		return "mismatched_size"
	default:
		return "unknown"
	}
}

// CheckInvariants reports the first invariant c breaks, in the order width,
// height, size overflow, contents length.
func CheckInvariants(c Canvas) Violation {
	if v := c.checkDimensions(); v != Fine {
		return v
	}
	if len(c.Contents) != c.Len() {
		return MismatchedSize
	}
	return Fine
}

// Validate is CheckInvariants returning a *ValidationError for anything
// other than Fine.
func Validate(c Canvas) error {
	if v := CheckInvariants(c); v != Fine {
		return newValidationError(v, c)
	}
	return nil
}

func (c Canvas) checkDimensions() Violation {
	switch {
	case c.Width < 1:
		return NegativeWidth
	case c.Height < 1:
		return NegativeHeight
	case int64(c.Width)*int64(c.Height) > math.MaxInt32:
		return OverflowingSize
	}
	return Fine
}
