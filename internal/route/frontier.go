package route

// frontierEntry là một partial route đang chờ được mở rộng.
type frontierEntry struct {
	Currency string
	Amount   float64
	Fee      float64
	// seq tăng dần theo thứ tự push; entry có cùng Amount lấy ra theo seq nhỏ hơn (FIFO)
	seq uint64
}

// Heap (Max Heap dựa trên Amount)
// Các entry có cùng Amount được lấy ra theo thứ tự push (FIFO).
type frontier []frontierEntry

func (h frontier) Len() int {
	return len(h)
}

func (h frontier) Less(i, j int) bool {
	if h[i].Amount != h[j].Amount {
		return h[i].Amount > h[j].Amount
	}
	return h[i].seq < h[j].seq
}

func (h frontier) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *frontier) Push(x any) {
	*h = append(*h, x.(frontierEntry))
}

func (h *frontier) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}
