// Package bench generates deterministic container workloads and drives them
// against the full binary tree while watching its invariants.
package bench

import (
	"fmt"
	"math/rand"
)

// OpType is one workload operation kind.
type OpType int8

const (
	OpInsert OpType = iota
	OpRemove
	OpFind
)

func (o OpType) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpFind:
		return "find"
	default:
		return fmt.Sprintf("op(%d)", int8(o))
	}
}

// Op is one operation of a generated workload.
type Op struct {
	Type  OpType
	Value int64
}

// OpGenerator produces a deterministic stream of operations. Two generators
// with the same configuration yield identical streams.
type OpGenerator struct {
	Seed           int64
	Ops            int
	InsertFraction float64
	RemoveFraction float64
	// ValueRange bounds generated payloads to [0, ValueRange); small ranges
	// make removes and finds hit more often.
	ValueRange int64
}

// Iterator validates the configuration and positions a new iterator on the
// first operation. The remaining (1 - insert - remove) fraction is finds.
func (g OpGenerator) Iterator() (*OpIterator, error) {
	if g.InsertFraction < 0 || g.RemoveFraction < 0 {
		return nil, fmt.Errorf("op fractions must not be negative")
	}
	if g.InsertFraction+g.RemoveFraction > 1 {
		return nil, fmt.Errorf("insert fraction %f + remove fraction %f exceeds 1",
			g.InsertFraction, g.RemoveFraction)
	}
	if g.Ops < 0 {
		return nil, fmt.Errorf("ops must not be negative")
	}
	if g.ValueRange <= 0 {
		return nil, fmt.Errorf("value range must be positive")
	}

	itr := &OpIterator{
		gen:  g,
		rand: rand.New(rand.NewSource(g.Seed)),
	}
	if err := itr.Next(); err != nil {
		return nil, err
	}
	return itr, nil
}

// OpIterator walks a generated workload.
type OpIterator struct {
	gen   OpGenerator
	rand  *rand.Rand
	idx   int
	op    Op
	valid bool
}

func (itr *OpIterator) Valid() bool {
	return itr.valid
}

func (itr *OpIterator) Op() Op {
	return itr.op
}

// Next advances to the next operation; Valid reports false once the
// configured op count is exhausted.
func (itr *OpIterator) Next() error {
	if itr.idx >= itr.gen.Ops {
		itr.valid = false
		return nil
	}
	itr.idx++
	itr.valid = true

	roll := itr.rand.Float64()
	value := itr.rand.Int63n(itr.gen.ValueRange)
	switch {
	case roll < itr.gen.InsertFraction:
		itr.op = Op{Type: OpInsert, Value: value}
	case roll < itr.gen.InsertFraction+itr.gen.RemoveFraction:
		itr.op = Op{Type: OpRemove, Value: value}
	default:
		itr.op = Op{Type: OpFind, Value: value}
	}
	return nil
}
