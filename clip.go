package polyview

// nearPlaneZ is the camera-space depth below which geometry is clipped.
const nearPlaneZ = 10

// intersectNearPlane returns the point where segment p1-p2 crosses the near
// plane. A segment parallel to the plane returns p1.
func intersectNearPlane(p1, p2 Point3) Point3 {
	dz := p2.Z - p1.Z
	if dz == 0 {
		return p1
	}
	t := (nearPlaneZ - p1.Z) / dz
	return Point3{
		X: p1.X + (p2.X-p1.X)*t,
		Y: p1.Y + (p2.Y-p1.Y)*t,
		Z: nearPlaneZ,
	}
}

func inFrontOfNearPlane(p Point3) bool {
	return p.Z >= nearPlaneZ
}

// clipPolygonAgainstNearPlane keeps the part of a camera-space polygon that
// lies at or beyond the near plane.
func clipPolygonAgainstNearPlane(points []Point3) []Point3 {
	if len(points) == 0 {
		return nil
	}

	out := make([]Point3, 0, len(points)+2)
	prev := points[len(points)-1]
	for _, cur := range points {
		prevIn, curIn := inFrontOfNearPlane(prev), inFrontOfNearPlane(cur)
		switch {
		case prevIn && curIn:
			out = append(out, cur)
		case prevIn && !curIn:
			out = append(out, intersectNearPlane(prev, cur))
		case !prevIn && curIn:
			out = append(out, intersectNearPlane(prev, cur), cur)
		}
		prev = cur
	}
	return out
}

// clipLineAgainstNearPlane trims a camera-space segment to the near plane.
// ok is false when the whole segment is behind it.
func clipLineAgainstNearPlane(a, b Point3) (Point3, Point3, bool) {
	aIn, bIn := inFrontOfNearPlane(a), inFrontOfNearPlane(b)
	switch {
	case aIn && bIn:
		return a, b, true
	case aIn:
		return a, intersectNearPlane(a, b), true
	case bIn:
		return intersectNearPlane(a, b), b, true
	}
	return a, b, false
}
