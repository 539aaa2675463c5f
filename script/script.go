package script

// Script is the ordered, read-only list of instructions of one route.
type Script struct {
	instructions []Instruction
}

// New wraps instrs. The slice is owned by the Script afterwards.
func New(instrs ...Instruction) *Script {
	return &Script{instructions: instrs}
}

// Len returns the number of instructions.
func (s *Script) Len() int { return len(s.instructions) }

// At returns the instruction at index i.
func (s *Script) At(i int) Instruction { return s.instructions[i] }

// Previous returns the instruction before index ptr, or nil at the start.
func (s *Script) Previous(ptr int) Instruction {
	if ptr <= 0 || ptr > len(s.instructions) {
		return nil
	}
	return s.instructions[ptr-1]
}

// CountKind returns how many instructions are of kind k.
func (s *Script) CountKind(k Kind) int {
	var n int
	for _, in := range s.instructions {
		if in.Kind() == k {
			n++
		}
	}
	return n
}

// RiverTable marks, per river seed, whether the river decision fights.
type RiverTable [TableSize]bool

// Window returns the nine decisions of a Lete run starting at seed.
// The first two decisions always fight; the rest come from the table and
// stop at its end.
func (t *RiverTable) Window(seed uint8) [RiverWindow]bool {
	var w [RiverWindow]bool
	w[0], w[1] = true, true
	for i := 2; i < RiverWindow; i++ {
		j := int(seed) + i - 2
		if j >= TableSize {
			break
		}
		w[i] = t[j]
	}
	return w
}

// Fights returns the number of fighting decisions in the window at seed.
func (t *RiverTable) Fights(seed uint8) int {
	var n int
	for _, fight := range t.Window(seed) {
		if fight {
			n++
		}
	}
	return n
}

// SeedTable maps an 8-bit seed to its successor. Missing entries hold -1.
type SeedTable [TableSize]int

// NewSeedTable returns a table with every entry missing.
func NewSeedTable() SeedTable {
	var t SeedTable
	for i := range t {
		t[i] = -1
	}
	return t
}

// Lookup returns the successor of seed.
func (t *SeedTable) Lookup(seed uint8) (uint8, bool) {
	v := t[seed]
	if v < 0 {
		return 0, false
	}
	return uint8(v), true
}

// Tables groups the side tables consumed by the Lete checkpoint.
type Tables struct {
	River       RiverTable
	LeteRNG     SeedTable
	ReturnerRNG SeedTable

	// RiverSets lists the formation set rolled for each window position.
	RiverSets [RiverWindow]int
}

// NewTables returns empty tables using DefaultRiverSets.
func NewTables() *Tables {
	return &Tables{
		LeteRNG:     NewSeedTable(),
		ReturnerRNG: NewSeedTable(),
		RiverSets:   DefaultRiverSets,
	}
}
