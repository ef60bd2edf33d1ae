package ecs

import "iter"

// iComponentStorage is an interface for a type-erased, row addressed component column.
type iComponentStorage interface {
	Set(row int, item any) bool
	Delete(row int)
	Get(row int) any
	Has(row int) bool
	Len() int
	Iter() iter.Seq[int]
}
