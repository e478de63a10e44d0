package guess

import (
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/sirupsen/logrus"
)

// Stats counts resolution outcomes. It is safe for concurrent use.
type Stats struct {
	counts cmap.ConcurrentMap[string, int]
}

func NewStats() *Stats {
	return &Stats{counts: cmap.New[int]()}
}

func (s *Stats) Add(kind Kind) {
	s.counts.Upsert(kind.String(), 1, func(exist bool, valueInMap, newValue int) int {
		if exist {
			return valueInMap + newValue
		}
		return newValue
	})
}

func (s *Stats) Count(kind Kind) int {
	n, _ := s.counts.Get(kind.String())
	return n
}

func (s *Stats) Total() int {
	var total int
	for _, n := range s.counts.Items() {
		total += n
	}
	return total
}

func (s *Stats) Fields() logrus.Fields {
	fields := make(logrus.Fields, s.counts.Count())
	for kind, n := range s.counts.Items() {
		fields[kind] = n
	}
	return fields
}
