package skill

// Levels maps every skill to its current level, 0 = not acquired
type Levels [Count]int

// FromSlice builds levels from a persisted slice indexed by ID
// Extra entries are ignored and values are clamped to [0, MaxLevel]
func FromSlice(s []int) Levels {
	var l Levels
	for i := 0; i < len(s) && i < int(Count); i++ {
		l[i] = max(0, min(s[i], definitions[i].MaxLevel))
	}
	return l
}

// Slice returns the persisted form, nil when no skill is held
func (l Levels) Slice() []int {
	if l.Total() == 0 {
		return nil
	}
	out := make([]int, Count)
	copy(out, l[:])
	return out
}

// Of returns the level of id, 0 for unknown IDs
func (l Levels) Of(id ID) int {
	if id >= Count {
		return 0
	}
	return l[id]
}

// Total is the sum of all levels
func (l Levels) Total() int {
	n := 0
	for _, v := range l {
		n += v
	}
	return n
}

// Maxed reports whether id is at its maximum level
func (l Levels) Maxed(id ID) bool {
	return id < Count && l[id] >= definitions[id].MaxLevel
}
