package route

import (
	"container/heap"
	"slices"
)

// RouteResult is the outcome of a successful search. It carries the
// aggregate fee and received amount only, never the path.
type RouteResult struct {
	TotalFee      float64 `json:"total_fee"`
	TotalReceived float64 `json:"total_received"`
}

// Graph maps each currency to its outgoing corridors. It is immutable once
// built and safe for concurrent readers.
type Graph struct {
	edges      map[string][]Corridor
	currencies []string
}

// NewGraph builds the adjacency map. Self-loops, duplicates and degenerate
// fees or rates are kept as-is.
func NewGraph(corridors []Corridor) *Graph {
	g := &Graph{edges: make(map[string][]Corridor)}
	seen := make(map[string]struct{})
	for _, c := range corridors {
		g.edges[c.From()] = append(g.edges[c.From()], c)
		seen[c.From()] = struct{}{}
		seen[c.To()] = struct{}{}
	}
	g.currencies = make([]string, 0, len(seen))
	for currency := range seen {
		g.currencies = append(g.currencies, currency)
	}
	slices.Sort(g.currencies)
	return g
}

// Outgoing returns the corridors leaving currency in insertion order, or nil
// if currency never appears as a source.
func (g *Graph) Outgoing(currency string) []Corridor {
	return slices.Clone(g.edges[currency])
}

// Currencies returns every currency seen as a source or destination, sorted.
func (g *Graph) Currencies() []string {
	return slices.Clone(g.currencies)
}

// Len returns the number of corridors in the graph.
func (g *Graph) Len() int {
	n := 0
	for _, edges := range g.edges {
		n += len(edges)
	}
	return n
}

// FindBestRoute tìm route nhận được nhiều nhất từ source đến destination.
// Frontier luôn lấy ra entry có running amount lớn nhất; lần đầu tiên
// destination được lấy ra chính là kết quả. Mỗi currency chỉ được mở rộng
// một lần trong một query nên search luôn dừng kể cả khi graph có cycle.
//
// source == destination trả về ngay {0, amount}. Trả về false khi không có
// route hoặc amount không dương.
func (g *Graph) FindBestRoute(source, destination string, amount float64) (RouteResult, bool) {
	if !(amount > 0) {
		return RouteResult{}, false
	}

	var seq uint64
	h := &frontier{}
	heap.Init(h)
	heap.Push(h, frontierEntry{Currency: source, Amount: amount, seq: seq})

	visited := make(map[string]bool, len(g.edges))

	for h.Len() > 0 {
		entry := heap.Pop(h).(frontierEntry)

		if entry.Currency == destination {
			return RouteResult{TotalFee: entry.Fee, TotalReceived: entry.Amount}, true
		}

		if visited[entry.Currency] {
			continue
		}
		visited[entry.Currency] = true

		for _, corridor := range g.edges[entry.Currency] {
			received, passable := corridor.Apply(entry.Amount)
			if !passable {
				continue
			}
			seq++
			heap.Push(h, frontierEntry{
				Currency: corridor.To(),
				Amount:   received,
				Fee:      entry.Fee + corridor.Fee,
				seq:      seq,
			})
		}
	}

	return RouteResult{}, false
}
