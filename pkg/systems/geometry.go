package systems

import "math"

// circlesOverlap 两个圆是否相交（相切不算）
func circlesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	r := r1 + r2
	return distSq(x1, y1, x2, y2) < r*r
}

func distSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// normalize 返回单位向量，零向量原样返回
func normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// angleTo 从 (x1, y1) 指向 (x2, y2) 的角度
func angleTo(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// insideRect 点是否在场地向外扩展 margin 后的范围内
func insideRect(x, y, w, h, margin float64) bool {
	return x >= -margin && x <= w+margin && y >= -margin && y <= h+margin
}
