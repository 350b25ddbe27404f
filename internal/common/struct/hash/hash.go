// Released under an MIT license. See LICENSE.

// Package hash provides minilisp's namespace, a name to term mapping.
// Each engine owns exactly one. It is not safe for concurrent use.
package hash

import (
	"sort"

	"github.com/Dentosal/minilisp/internal/common/interface/cell"
	"github.com/samber/lo"
)

// T (hash) maps names to values.
type T struct {
	m map[string]cell.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]cell.I{}}
}

// Del frees the name k from any association in the hash h.
func (h *hash) Del(k string) bool {
	if h == nil {
		return false
	}

	_, ok := h.m[k]
	if !ok {
		return false
	}

	delete(h.m, k)

	return true
}

// Get retrieves the value associated with the name k in the hash h.
func (h *hash) Get(k string) (cell.I, bool) {
	if h == nil {
		return nil, false
	}

	v, ok := h.m[k]

	return v, ok
}

// Names returns every bound name in sorted order.
func (h *hash) Names() []string {
	if h == nil {
		return nil
	}

	names := lo.Keys(h.m)
	sort.Strings(names)

	return names
}

// Set associates the name k with the cell v in the hash h.
func (h *hash) Set(k string, v cell.I) {
	h.m[k] = v
}
