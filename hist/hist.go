// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hist implements a named, order-stable container of internal (history) variables
// Values are kept in one arena of float64 addressed by an offset table (the layout).
// Layouts are immutable: adding a slot creates a new layout; copies share the layout.
// Derivative layouts (cross products of two layouts) are computed once and cached.
package hist

import (
	"sync"

	"github.com/cpmech/gomat/errs"
	"github.com/cpmech/gosl/io"
)

// layout holds the offset table of a History
type layout struct {
	names   []string       // slot names in insertion order
	kinds   []Kind         // slot kinds
	offsets []int          // offsets into the arena
	index   map[string]int // name => slot index
	size    int            // total number of values

	mu     sync.Mutex
	bykind map[Kind]*layout    // cache: derivative wrt a bare kind
	cross  map[*layout]*layout // cache: derivative wrt another layout
}

// empty is the layout of a history without slots
var empty = &layout{index: map[string]int{}}

// with returns a new layout with one extra slot
func (o *layout) with(name string, kind Kind) *layout {
	n := len(o.names)
	l := &layout{
		names:   make([]string, n+1),
		kinds:   make([]Kind, n+1),
		offsets: make([]int, n+1),
		index:   make(map[string]int, n+1),
		size:    o.size + kind.Size(),
	}
	copy(l.names, o.names)
	copy(l.kinds, o.kinds)
	copy(l.offsets, o.offsets)
	for k, v := range o.index {
		l.index[k] = v
	}
	l.names[n] = name
	l.kinds[n] = kind
	l.offsets[n] = o.size
	l.index[name] = n
	return l
}

// derivKind returns (and caches) the layout of d(this)/d(kind)
func (o *layout) derivKind(wrt Kind) (*layout, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if l, ok := o.bykind[wrt]; ok {
		return l, nil
	}
	l := empty
	for i, name := range o.names {
		k, err := DerivKind(o.kinds[i], wrt)
		if err != nil {
			return nil, errs.Config("cannot differentiate slot %q: %v", name, err)
		}
		l = l.with(name, k)
	}
	if o.bykind == nil {
		o.bykind = make(map[Kind]*layout)
	}
	o.bykind[wrt] = l
	return l, nil
}

// derivLayout returns (and caches) the layout of d(this)/d(other); names are "a_b"
func (o *layout) derivLayout(wrt *layout) (*layout, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if l, ok := o.cross[wrt]; ok {
		return l, nil
	}
	l := empty
	for i, a := range o.names {
		for j, b := range wrt.names {
			k, err := DerivKind(o.kinds[i], wrt.kinds[j])
			if err != nil {
				return nil, errs.Config("cannot differentiate %q wrt %q: %v", a, b, err)
			}
			name := a + "_" + b
			if _, found := l.index[name]; found {
				return nil, errs.Config("compound name %q is ambiguous", name)
			}
			l = l.with(name, k)
		}
	}
	if o.cross == nil {
		o.cross = make(map[*layout]*layout)
	}
	o.cross[wrt] = l
	return l, nil
}

// History holds named internal variables
type History struct {
	lay  *layout   // shared offset table
	data []float64 // arena with all values
}

// New returns a new empty History
func New() *History {
	return &History{lay: empty}
}

// Add declares a new slot initialised with zeros
func (o *History) Add(name string, kind Kind) error {
	if name == "" {
		return errs.Config("history slot name cannot be empty")
	}
	if kind.Size() == 0 {
		return errs.Config("history slot %q has invalid kind %d", name, kind)
	}
	if _, found := o.lay.index[name]; found {
		return errs.Config("history slot %q already exists", name)
	}
	o.lay = o.lay.with(name, kind)
	o.data = append(o.data, make([]float64, kind.Size())...)
	return nil
}

// AddScalar declares a scalar slot
func (o *History) AddScalar(name string) error {
	return o.Add(name, Scalar)
}

// AddSymmetric declares a symmetric tensor slot
func (o *History) AddSymmetric(name string) error {
	return o.Add(name, Symmetric)
}

// Has tells whether a slot exists or not
func (o *History) Has(name string) bool {
	_, found := o.lay.index[name]
	return found
}

// Len returns the number of slots
func (o *History) Len() int {
	return len(o.lay.names)
}

// Size returns the number of values in the arena
func (o *History) Size() int {
	return o.lay.size
}

// Names returns a copy of the slot names in order
func (o *History) Names() []string {
	return append([]string{}, o.lay.names...)
}

// KindOf returns the kind of a slot
func (o *History) KindOf(name string) (Kind, error) {
	i, found := o.lay.index[name]
	if !found {
		return Scalar, errs.Config("history slot %q does not exist", name)
	}
	return o.lay.kinds[i], nil
}

// Offset returns the position of the first value of a slot in the arena
func (o *History) Offset(name string) (int, error) {
	i, found := o.lay.index[name]
	if !found {
		return 0, errs.Config("history slot %q does not exist", name)
	}
	return o.lay.offsets[i], nil
}

// Get returns a mutable view of the values of a slot
func (o *History) Get(name string, kind Kind) ([]float64, error) {
	i, found := o.lay.index[name]
	if !found {
		return nil, errs.Config("history slot %q does not exist", name)
	}
	if o.lay.kinds[i] != kind {
		return nil, errs.Config("history slot %q is %v, not %v", name, o.lay.kinds[i], kind)
	}
	off := o.lay.offsets[i]
	return o.data[off : off+kind.Size() : off+kind.Size()], nil
}

// Scalar returns the value of a scalar slot
func (o *History) Scalar(name string) (float64, error) {
	v, err := o.Get(name, Scalar)
	if err != nil {
		return 0, err
	}
	return v[0], nil
}

// SetScalar sets the value of a scalar slot
func (o *History) SetScalar(name string, val float64) error {
	v, err := o.Get(name, Scalar)
	if err != nil {
		return err
	}
	v[0] = val
	return nil
}

// Ref returns a mutable reference to a scalar slot
func (o *History) Ref(name string) (*float64, error) {
	v, err := o.Get(name, Scalar)
	if err != nil {
		return nil, err
	}
	return &v[0], nil
}

// Symmetric returns a mutable view of a symmetric tensor slot
func (o *History) Symmetric(name string) ([]float64, error) {
	return o.Get(name, Symmetric)
}

// Data returns the arena; changes are reflected in the slots
func (o *History) Data() []float64 {
	return o.data
}

// SetData copies v into the arena
func (o *History) SetData(v []float64) error {
	if len(v) != o.lay.size {
		return errs.Config("cannot set history with %d values; size is %d", len(v), o.lay.size)
	}
	copy(o.data, v)
	return nil
}

// CopyBlank returns a history with the same layout and zero values
func (o *History) CopyBlank() *History {
	return &History{lay: o.lay, data: make([]float64, o.lay.size)}
}

// GetCopy returns a deep copy of this history
func (o *History) GetCopy() *History {
	other := o.CopyBlank()
	copy(other.data, o.data)
	return other
}

// SameLayout tells whether other has the same slots (names, kinds and order)
func (o *History) SameLayout(other *History) bool {
	if o.lay == other.lay {
		return true
	}
	if len(o.lay.names) != len(other.lay.names) {
		return false
	}
	for i, name := range o.lay.names {
		if other.lay.names[i] != name || other.lay.kinds[i] != o.lay.kinds[i] {
			return false
		}
	}
	return true
}

// Set copies the values of other into this history
// Note: both histories must have the same layout
func (o *History) Set(other *History) error {
	if !o.SameLayout(other) {
		return errs.Config("cannot set history: layouts differ: %v != %v", o.lay.names, other.lay.names)
	}
	copy(o.data, other.data)
	return nil
}

// AddScaled performs this += a * other
// Note: both histories must have the same layout
func (o *History) AddScaled(a float64, other *History) error {
	if !o.SameLayout(other) {
		return errs.Config("cannot add histories: layouts differ: %v != %v", o.lay.names, other.lay.names)
	}
	for i, v := range other.data {
		o.data[i] += a * v
	}
	return nil
}

// Merge appends all slots (and values) of other to this history
func (o *History) Merge(other *History) error {
	for _, name := range other.lay.names {
		if o.Has(name) {
			return errs.Config("cannot merge histories: slot %q exists in both", name)
		}
	}
	for i, name := range other.lay.names {
		o.lay = o.lay.with(name, other.lay.kinds[i])
	}
	o.data = append(o.data, other.data...)
	return nil
}

// Extract returns a new history with copies of the named slots only
func (o *History) Extract(names ...string) (*History, error) {
	res := New()
	for _, name := range names {
		i, found := o.lay.index[name]
		if !found {
			return nil, errs.Config("cannot extract history slot %q: it does not exist", name)
		}
		if err := res.Add(name, o.lay.kinds[i]); err != nil {
			return nil, err
		}
		off := o.lay.offsets[i]
		copy(res.data[res.lay.offsets[res.Len()-1]:], o.data[off:off+o.lay.kinds[i].Size()])
	}
	return res, nil
}

// Derivative returns a zero-valued history holding d(each slot)/d(kind)
// Slot names are the same as in this history.
func (o *History) Derivative(wrt Kind) (*History, error) {
	l, err := o.lay.derivKind(wrt)
	if err != nil {
		return nil, err
	}
	return &History{lay: l, data: make([]float64, l.size)}, nil
}

// DerivativeOf returns a zero-valued history holding d(each slot)/d(each slot of wrt)
// Slot "a_b" holds d(a)/d(b); the order is a-major (all b for the first a, and so on).
func (o *History) DerivativeOf(wrt *History) (*History, error) {
	l, err := o.lay.derivLayout(wrt.lay)
	if err != nil {
		return nil, err
	}
	return &History{lay: l, data: make([]float64, l.size)}, nil
}

// DerivativeSelf returns the zero-valued history of d(this)/d(this)
func (o *History) DerivativeSelf() (*History, error) {
	return o.DerivativeOf(o)
}

// String returns a short representation
func (o *History) String() string {
	l := "{"
	for i, name := range o.lay.names {
		if i > 0 {
			l += ", "
		}
		off := o.lay.offsets[i]
		sz := o.lay.kinds[i].Size()
		if sz == 1 {
			l += io.Sf("%s:%g", name, o.data[off])
		} else {
			l += io.Sf("%s:%v", name, o.data[off:off+sz])
		}
	}
	return l + "}"
}
