package metrics

import (
	"fmt"
	"sync"
)

const capacity = 4

// The labelPool is used to avoid allocations when passing label values to
// Prometheus.
var labelPool = sync.Pool{New: func() any {
	s := make([]string, 0, capacity)
	return &s
}}

func getLabels() *[]string {
	s := labelPool.Get().(*[]string)
	*s = (*s)[:0]
	return s
}

func putLabels(s *[]string) {
	if c := cap(*s); c < capacity {
		panic(fmt.Sprintf("expected a label slice with capacity %d or greater, got %d", capacity, c))
	}
	labelPool.Put(s)
}
