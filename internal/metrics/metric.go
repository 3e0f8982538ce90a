// Package metrics observes a running show and summarises its registry.
package metrics

import "github.com/san-kum/fireworks/internal/fireworks"

// Metric is a fireworks.Observer that reduces what it saw to one number.
type Metric interface {
	fireworks.Observer
	Name() string
	Value() float64
	Reset()
}

// Defaults returns the metrics the CLI reports, population first.
func Defaults(historyCapacity int) (*Population, []Metric) {
	pop := NewPopulation(historyCapacity)
	return pop, []Metric{pop, NewPeak(), NewLaunches(), NewBursts()}
}
