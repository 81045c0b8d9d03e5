package game

// Road tracks the z position of each recycled road segment.
type Road struct {
	segs []float64
}

func NewRoad() *Road {
	r := &Road{segs: make([]float64, SegmentCount)}
	for i := range r.segs {
		r.segs[i] = -float64(i) * SegmentLength
	}
	return r
}

// Segments returns the segment z positions by index.
func (r *Road) Segments() []float64 {
	out := make([]float64, len(r.segs))
	copy(out, r.segs)
	return out
}

// Recycle moves every segment that fell behind the car to the far end of
// the road and reports it through moved.
func (r *Road) Recycle(carZ float64, moved func(index int, z float64)) {
	span := SegmentLength * float64(len(r.segs))
	for i, z := range r.segs {
		if z > carZ+SegmentLength*2 {
			r.segs[i] = z - span
			if moved != nil {
				moved(i, r.segs[i])
			}
		}
	}
}
