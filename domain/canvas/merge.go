package canvas

// MergeInto overlays source onto target pixel by pixel. Transparent source
// pixels leave target alone, Erase resets the target pixel to Transparent and
// anything else replaces it. Later merges win, so the result depends on the
// order merges are applied.
//
// Dimensions are checked before any pixel is written; on mismatch target is
// left untouched.
func MergeInto(target *Canvas, source Canvas) error {
	if source.Width != target.Width {
		return &DimensionMismatchError{Field: "width", Target: int(target.Width), Source: int(source.Width)}
	}
	if source.Height != target.Height {
		return &DimensionMismatchError{Field: "height", Target: int(target.Height), Source: int(source.Height)}
	}
	if len(source.Contents) != len(target.Contents) {
		return &DimensionMismatchError{Field: "contents", Target: len(target.Contents), Source: len(source.Contents)}
	}

	for i, px := range source.Contents {
		switch px {
		case Transparent:
		case Erase:
			target.Contents[i] = Transparent
		default:
			target.Contents[i] = px
		}
	}
	return nil
}
