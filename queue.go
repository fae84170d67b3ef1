package polylabel

import "container/heap"

type queuedCell struct {
	cell Cell
	// seq is the insertion order, used to break ties between equal bounds.
	seq uint64
}

// cellHeap implements heap.Interface as a max-heap ordered by MaxBound. Cells
// with equal bounds come out in insertion order.
type cellHeap []queuedCell

func (h cellHeap) Len() int { return len(h) }
func (h cellHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.cell.MaxBound != b.cell.MaxBound {
		return a.cell.MaxBound > b.cell.MaxBound
	}
	return a.seq < b.seq
}
func (h cellHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *cellHeap) Push(x any) { *h = append(*h, x.(queuedCell)) }

func (h *cellHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// cellQueue is the search's priority queue of pending cells.
type cellQueue struct {
	h   cellHeap
	seq uint64
}

func (q *cellQueue) Len() int { return q.h.Len() }

func (q *cellQueue) Push(c Cell) {
	heap.Push(&q.h, queuedCell{cell: c, seq: q.seq})
	q.seq++
}

// Pop removes and returns the cell with the greatest MaxBound.
func (q *cellQueue) Pop() (Cell, bool) {
	if q.h.Len() == 0 {
		return Cell{}, false
	}
	return heap.Pop(&q.h).(queuedCell).cell, true
}

// Peek returns the cell Pop would return, without removing it.
func (q *cellQueue) Peek() (Cell, bool) {
	if q.h.Len() == 0 {
		return Cell{}, false
	}
	return q.h[0].cell, true
}
