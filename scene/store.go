package scene

import (
	"errors"
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

var (
	ErrDuplicateId = errors.New("scene: object id already exists")
	ErrInvalidId   = errors.New("scene: object id must be >= 1")
	ErrNotFound    = errors.New("scene: object not found")
)

// ChangeKind says what happened to an object.
type ChangeKind int

const (
	Created ChangeKind = iota
	PoseChanged
	Deleted
)

func (k ChangeKind) String() string {
	switch k {
	case Created:
		return "created"
	case PoseChanged:
		return "pose-changed"
	case Deleted:
		return "deleted"
	}
	return "unknown"
}

// Change is published to subscribers after every mutation.
type Change struct {
	Id   ObjectId
	Kind ChangeKind
}

// Store owns every object's pose and appearance.
// It is not safe for concurrent use; the editor drives it from one goroutine.
type Store struct {
	slots     slotStore
	index     *intmap.Map[ObjectId, int]
	observers []*observer
}

type observer struct {
	fn func(Change)
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		index: intmap.New[ObjectId, int](64),
	}
}

// Subscribe registers fn for every subsequent Change. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func(Change)) (cancel func()) {
	o := &observer{fn: fn}
	s.observers = append(s.observers, o)
	return func() {
		s.observers = slices.DeleteFunc(s.observers, func(other *observer) bool {
			return other == o
		})
	}
}

func (s *Store) publish(c Change) {
	// Copy so handlers can (un)subscribe while being notified.
	for _, o := range slices.Clone(s.observers) {
		o.fn(c)
	}
}

// NextId returns the id the next Create will use: max existing id + 1, or 1.
func (s *Store) NextId() ObjectId {
	maxId := NoObject
	for id := range s.index.Keys() {
		if id > maxId {
			maxId = id
		}
	}
	return maxId + 1
}

// Create stores a new object under NextId and returns that id.
func (s *Store) Create(pose Pose, appearance Appearance) ObjectId {
	id := s.NextId()
	s.insert(Object{Id: id, Pose: pose, Appearance: appearance})
	return id
}

// Insert stores obj under its own id.
func (s *Store) Insert(obj Object) error {
	if obj.Id < 1 {
		return ErrInvalidId
	}
	if _, ok := s.index.Get(obj.Id); ok {
		return ErrDuplicateId
	}
	s.insert(obj)
	return nil
}

func (s *Store) insert(obj Object) {
	slot := s.slots.append(obj)
	s.index.Put(obj.Id, slot)
	s.publish(Change{Id: obj.Id, Kind: Created})
}

func (s *Store) lookup(id ObjectId) *Object {
	slot, ok := s.index.Get(id)
	if !ok {
		return nil
	}
	return s.slots.get(slot)
}

// Has reports whether id is stored.
func (s *Store) Has(id ObjectId) bool {
	return s.lookup(id) != nil
}

// Get returns a copy of the object.
func (s *Store) Get(id ObjectId) (Object, bool) {
	obj := s.lookup(id)
	if obj == nil {
		return Object{}, false
	}
	return *obj, true
}

// Pose returns a copy of the object's pose.
func (s *Store) Pose(id ObjectId) (Pose, bool) {
	obj := s.lookup(id)
	if obj == nil {
		return Pose{}, false
	}
	return obj.Pose, true
}

// SetPose replaces the object's pose. Returns false if id is unknown.
func (s *Store) SetPose(id ObjectId, pose Pose) bool {
	return s.UpdatePose(id, func(p *Pose) { *p = pose })
}

// UpdatePose runs fn on the live pose and publishes PoseChanged.
// Returns false without calling fn if id is unknown.
func (s *Store) UpdatePose(id ObjectId, fn func(*Pose)) bool {
	obj := s.lookup(id)
	if obj == nil {
		return false
	}
	fn(&obj.Pose)
	s.publish(Change{Id: id, Kind: PoseChanged})
	return true
}

// Delete removes the object. Returns false if id is unknown.
func (s *Store) Delete(id ObjectId) bool {
	slot, ok := s.index.Get(id)
	if !ok {
		return false
	}
	s.slots.delete(slot)
	s.index.Del(id)
	s.publish(Change{Id: id, Kind: Deleted})
	return true
}

// Len returns the number of stored objects.
func (s *Store) Len() int {
	return s.index.Len()
}

// Ids returns every stored id in ascending order.
func (s *Store) Ids() []ObjectId {
	ids := slices.Collect(s.index.Keys())
	slices.Sort(ids)
	return ids
}

// Objects iterates over copies of all objects in ascending id order.
func (s *Store) Objects() iter.Seq[Object] {
	return func(yield func(Object) bool) {
		for _, id := range s.Ids() {
			obj, ok := s.Get(id)
			if !ok {
				continue
			}
			if !yield(obj) {
				return
			}
		}
	}
}

// Compact packs the slot storage after many deletes. Ids are unaffected.
func (s *Store) Compact() {
	for oldSlot, newSlot := range s.slots.compact() {
		if oldSlot == newSlot {
			continue
		}
		obj := s.slots.get(newSlot)
		s.index.Put(obj.Id, newSlot)
	}
}

// Stats is a snapshot of storage occupancy.
type Stats struct {
	ObjectCount int
	SlotCount   int
	FreeSlots   int
	Capacity    int
	MaxId       ObjectId
}

// CollectStats reports storage occupancy.
func (s *Store) CollectStats() Stats {
	return Stats{
		ObjectCount: s.Len(),
		SlotCount:   s.slots.nextIndex,
		FreeSlots:   len(s.slots.freeSlots),
		Capacity:    s.slots.capacity(),
		MaxId:       s.NextId() - 1,
	}
}
