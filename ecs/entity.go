package ecs

import "strconv"

// Entity packs a 32-bit id and a 32-bit generation into a single opaque
// handle. The generation guards against stale handles after an id is
// recycled.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) Valid() bool {
	return e.id() != 0
}

// entityStore hands out ids and tracks which generation of each id is
// alive. Id 0 is never issued.
type entityStore struct {
	gens []generation // index 0 unused
	free []entityID
}

func (s *entityStore) create() Entity {
	if len(s.free) > 0 {
		id := s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
		return makeEntity(id, s.gens[id])
	}
	if len(s.gens) == 0 {
		s.gens = append(s.gens, 0) // burn id 0
	}
	id := entityID(len(s.gens))
	s.gens = append(s.gens, 0)
	return makeEntity(id, 0)
}

func (s *entityStore) destroy(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) >= len(s.gens) || s.gens[id] != e.generation() {
		return false
	}
	s.gens[id]++
	s.free = append(s.free, id)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	return id != 0 && int(id) < len(s.gens) && s.gens[id] == e.generation()
}
