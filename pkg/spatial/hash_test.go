package spatial

import (
	"math"
	"math/rand"
	"testing"
)

type testPoint struct {
	ID   int
	X, Y float64
}

func TestHashInsertAndQuery(t *testing.T) {
	h := NewHash[*testPoint](50)
	a := &testPoint{ID: 1, X: 10, Y: 10}
	b := &testPoint{ID: 2, X: 400, Y: 400}
	h.Insert(a, a.X, a.Y)
	h.Insert(b, b.X, b.Y)

	if h.Len() != 2 {
		t.Fatalf("Expected 2 items, got %d", h.Len())
	}

	got := h.QueryRadius(20, 20, 30)
	if len(got) != 1 || got[0] != a {
		t.Errorf("Expected only point 1 near (20,20), got %v", got)
	}
}

func TestHashNegativeCoordinates(t *testing.T) {
	h := NewHash[*testPoint](64)
	p := &testPoint{ID: 1, X: -5, Y: -70}
	h.Insert(p, p.X, p.Y)

	// -5 与 5 位于不同格子，查询仍然必须命中
	got := h.QueryRadius(5, -60, 15)
	if len(got) != 1 {
		t.Errorf("Expected neighbor across cell boundary, got %d items", len(got))
	}
}

func TestHashClear(t *testing.T) {
	h := NewHash[*testPoint](32)
	for i := 0; i < 10; i++ {
		h.Insert(&testPoint{ID: i}, float64(i*10), 0)
	}
	h.Clear()

	if h.Len() != 0 {
		t.Errorf("Expected empty hash after Clear, got %d", h.Len())
	}
	if got := h.QueryRadius(0, 0, 500); len(got) != 0 {
		t.Errorf("Expected no results after Clear, got %d", len(got))
	}
}

func TestHashDefaultCellSize(t *testing.T) {
	h := NewHash[int](0)
	if h.CellSize() != 64 {
		t.Errorf("Expected default cell size 64, got %f", h.CellSize())
	}
}

// TestHashQueryNeverMissesTrueNeighbors 随机点集上对比暴力搜索：
// 半径内的点必须全部出现在候选集合中
func TestHashQueryNeverMissesTrueNeighbors(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, cellSize := range []float64{16, 48, 100} {
		h := NewHash[*testPoint](cellSize)
		points := make([]*testPoint, 300)
		for i := range points {
			points[i] = &testPoint{ID: i, X: rng.Float64()*1000 - 200, Y: rng.Float64()*800 - 100}
			h.Insert(points[i], points[i].X, points[i].Y)
		}

		for q := 0; q < 100; q++ {
			qx := rng.Float64()*1000 - 200
			qy := rng.Float64()*800 - 100
			r := rng.Float64() * 150

			candidates := make(map[int]bool)
			for _, p := range h.QueryRadius(qx, qy, r) {
				candidates[p.ID] = true
			}

			for _, p := range points {
				if math.Hypot(p.X-qx, p.Y-qy) <= r && !candidates[p.ID] {
					t.Fatalf("cellSize=%v: point %d at distance %.2f <= %.2f missing from query",
						cellSize, p.ID, math.Hypot(p.X-qx, p.Y-qy), r)
				}
			}
		}
	}
}

func TestHashAppendQueryReusesBuffer(t *testing.T) {
	h := NewHash[int](10)
	h.Insert(1, 0, 0)
	h.Insert(2, 5, 5)

	buf := make([]int, 0, 8)
	buf = h.AppendQueryRadius(buf, 0, 0, 10)
	if len(buf) != 2 {
		t.Errorf("Expected 2 results, got %d", len(buf))
	}
	buf = h.AppendQueryRadius(buf[:0], 1000, 1000, 1)
	if len(buf) != 0 {
		t.Errorf("Expected 0 results far away, got %d", len(buf))
	}
}
