package hashMap

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// All yields every pair grouped by bucket index ascending, then chain order.
func (m *HashMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, head := range m.table {
			for l := head; l != nil; l = l.next {
				if !yield(l.key, l.value) {
					return
				}
			}
		}
	}
}

func (m *HashMap[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *HashMap[V]) Range(f func(key string, value V) bool) {
	for k, v := range m.All() {
		if !f(k, v) {
			return
		}
	}
}

// Print writes one line per non-empty bucket:
//
//	Bucket 3 -> (cat, 1) -> (act, 1) -> null
func (m *HashMap[V]) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, head := range m.table {
		if head == nil {
			continue
		}
		fmt.Fprintf(bw, "Bucket %d -> ", i)
		for l := head; l != nil; l = l.next {
			fmt.Fprintf(bw, "(%s, %v) -> ", l.key, l.value)
		}
		bw.WriteString("null\n")
	}
	return bw.Flush()
}

func (m *HashMap[V]) String() string {
	var s strings.Builder
	m.Print(&s)
	return s.String()
}
