package scene

import "iter"

const slotBlockSize = 64

// slotStore keeps records in fixed-size blocks so pointers handed out by get
// stay valid while other records are appended. Deleted slots are reused.
type slotStore struct {
	blocks    [][slotBlockSize]Object
	filled    [][slotBlockSize]bool
	freeSlots []int
	nextIndex int
}

func (ss *slotStore) append(obj Object) int {
	if len(ss.freeSlots) > 0 {
		index := ss.freeSlots[len(ss.freeSlots)-1]
		ss.freeSlots = ss.freeSlots[:len(ss.freeSlots)-1]
		ss.blocks[index/slotBlockSize][index%slotBlockSize] = obj
		ss.filled[index/slotBlockSize][index%slotBlockSize] = true
		return index
	}

	index := ss.nextIndex
	ss.nextIndex++

	blockIdx := index / slotBlockSize
	if blockIdx >= len(ss.blocks) {
		ss.blocks = append(ss.blocks, [slotBlockSize]Object{})
		ss.filled = append(ss.filled, [slotBlockSize]bool{})
	}

	ss.blocks[blockIdx][index%slotBlockSize] = obj
	ss.filled[blockIdx][index%slotBlockSize] = true
	return index
}

func (ss *slotStore) get(index int) *Object {
	if index < 0 || index >= ss.nextIndex {
		return nil
	}
	blockIdx, slotIdx := index/slotBlockSize, index%slotBlockSize
	if !ss.filled[blockIdx][slotIdx] {
		return nil
	}
	return &ss.blocks[blockIdx][slotIdx]
}

func (ss *slotStore) delete(index int) {
	if index < 0 || index >= ss.nextIndex {
		return
	}
	blockIdx, slotIdx := index/slotBlockSize, index%slotBlockSize
	if ss.filled[blockIdx][slotIdx] {
		ss.filled[blockIdx][slotIdx] = false
		ss.blocks[blockIdx][slotIdx] = Object{}
		ss.freeSlots = append(ss.freeSlots, index)
	}
}

// compact moves live records to the front and returns old index -> new index.
func (ss *slotStore) compact() map[int]int {
	moved := make(map[int]int)
	live := ss.nextIndex - len(ss.freeSlots)
	if live == 0 {
		ss.blocks = nil
		ss.filled = nil
		ss.freeSlots = nil
		ss.nextIndex = 0
		return moved
	}

	numBlocks := (live + slotBlockSize - 1) / slotBlockSize
	blocks := make([][slotBlockSize]Object, numBlocks)
	filled := make([][slotBlockSize]bool, numBlocks)

	writePos := 0
	for readIdx := range ss.iter() {
		blocks[writePos/slotBlockSize][writePos%slotBlockSize] = ss.blocks[readIdx/slotBlockSize][readIdx%slotBlockSize]
		filled[writePos/slotBlockSize][writePos%slotBlockSize] = true
		moved[readIdx] = writePos
		writePos++
	}

	ss.blocks = blocks
	ss.filled = filled
	ss.freeSlots = nil
	ss.nextIndex = writePos
	return moved
}

func (ss *slotStore) iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < ss.nextIndex; i++ {
			if ss.filled[i/slotBlockSize][i%slotBlockSize] {
				if !yield(i) {
					return
				}
			}
		}
	}
}

func (ss *slotStore) capacity() int {
	return len(ss.blocks) * slotBlockSize
}
