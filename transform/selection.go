package transform

import "github.com/plus3/posekit/scene"

// Select makes id the selection, or clears it for scene.NoObject. Selection
// cannot change during a gesture.
func (e *Engine) Select(id scene.ObjectId) error {
	if e.mode != ModeNone {
		return ErrGestureActive
	}
	if id != scene.NoObject && !e.store.Has(id) {
		return ErrUnknownObject
	}
	e.selection = id
	return nil
}

// Duplicate copies the selected object under a new id, one unit further
// along X, and selects the copy.
func (e *Engine) Duplicate() (scene.ObjectId, error) {
	if e.selection == scene.NoObject {
		return scene.NoObject, ErrNoSelection
	}
	if e.mode != ModeNone {
		return scene.NoObject, ErrGestureActive
	}

	src, ok := e.store.Get(e.selection)
	if !ok {
		e.selection = scene.NoObject
		return scene.NoObject, ErrUnknownObject
	}

	dup := src
	dup.Id = e.store.NextId()
	dup.Pose.Position[0] += 1
	if err := e.store.Insert(dup); err != nil {
		return scene.NoObject, err
	}

	e.selection = dup.Id
	return dup.Id, nil
}

// Delete removes the selected object and clears the selection. A running
// gesture is aborted first.
func (e *Engine) Delete() (scene.ObjectId, error) {
	id := e.selection
	if id == scene.NoObject {
		return scene.NoObject, ErrNoSelection
	}
	if e.mode != ModeNone {
		e.abort("selected object deleted")
	}
	e.selection = scene.NoObject

	if !e.store.Delete(id) {
		return scene.NoObject, ErrUnknownObject
	}
	return id, nil
}
