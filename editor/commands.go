package editor

import "github.com/plus3/posekit/scene"

// Commands buffers scene changes requested by systems until every system of
// the frame has run.
type Commands struct {
	spawns  []spawnCommand
	deletes []scene.ObjectId
	defers  []func()
}

type spawnCommand struct {
	pose       scene.Pose
	appearance scene.Appearance
}

// NewCommands returns an empty buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Spawn queues creation of an object with a fresh id.
func (c *Commands) Spawn(pose scene.Pose, appearance scene.Appearance) {
	c.spawns = append(c.spawns, spawnCommand{pose: pose, appearance: appearance})
}

// Delete queues removal of an object.
func (c *Commands) Delete(id scene.ObjectId) {
	c.deletes = append(c.deletes, id)
}

// Defer queues a function to run after deletes and spawns.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.defers)
}

// Flush applies deletes, then spawns, then deferred functions, and resets the
// buffer. Deleting an id that is already gone is ignored. Spawns and deletes
// queued by a deferred function wait for the next Flush; defers queued by a
// deferred function run in this one. It returns the ids of spawned objects in
// queue order.
func (c *Commands) Flush(store *scene.Store) []scene.ObjectId {
	deletes, spawns := c.deletes, c.spawns
	c.deletes, c.spawns = nil, nil

	for _, id := range deletes {
		store.Delete(id)
	}

	var spawned []scene.ObjectId
	for _, cmd := range spawns {
		spawned = append(spawned, store.Create(cmd.pose, cmd.appearance))
	}

	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	c.defers = c.defers[:0]
	return spawned
}
