package frame

// Flip mirrors f across the vertical axis when horizontal is set and
// across the horizontal axis when vertical is set. With neither flag the
// input is returned as is. Invalid input is returned unchanged together
// with the validation error so a caller can keep going.
func Flip(f Frame, horizontal, vertical bool) (Frame, error) {
	if !horizontal && !vertical {
		return f, nil
	}
	if err := f.Validate(); err != nil {
		return f, err
	}

	out := Frame{
		Width:  f.Width,
		Height: f.Height,
		Format: f.Format,
		Data:   make([]byte, len(f.Data)),
	}
	stride := f.stride()
	for y := 0; y < f.Height; y++ {
		sy := y
		if vertical {
			sy = f.Height - 1 - y
		}
		srcRow := f.Data[sy*stride : (sy+1)*stride]
		dstRow := out.Data[y*stride : (y+1)*stride]
		if !horizontal {
			copy(dstRow, srcRow)
			continue
		}
		for x := 0; x < f.Width; x++ {
			s := (f.Width - 1 - x) * BytesPerPixel
			d := x * BytesPerPixel
			dstRow[d] = srcRow[s]
			dstRow[d+1] = srcRow[s+1]
			dstRow[d+2] = srcRow[s+2]
		}
	}
	return out, nil
}
