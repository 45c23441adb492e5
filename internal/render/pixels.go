package render

// FillRGBA maps every height sample through m and writes packed RGBA into
// buf, which must hold exactly 4 bytes per sample. The buffer is always
// rewritten completely; there are no partial updates.
func FillRGBA(buf []byte, heights []float32, m Mapper) {
	for i, h := range heights {
		c := m(h)
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}
