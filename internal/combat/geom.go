package combat

// Slot is one position on a side. Content is nil when the slot is empty.
type Slot struct {
	Coordinate int
	Content    *Character
}

func (s *Slot) Occupied() bool { return s.Content != nil }
func (s *Slot) Living() bool   { return s.Content != nil && !s.Content.IsDead() }

// Side is a front-to-back ordered list of slots.
type Side []*Slot

// Distance is the battlefield distance between two slots.
func Distance(a, b *Slot) int {
	d := a.Coordinate - b.Coordinate
	if d < 0 {
		return -d
	}
	return d
}

// newSides lays out n slots per side. Ally slot i sits at n-1-i and enemy
// slot j at n+j, so the two front slots are one apart.
func newSides(n int) (Side, Side) {
	allies := make(Side, n)
	enemies := make(Side, n)
	for i := 0; i < n; i++ {
		allies[i] = &Slot{Coordinate: n - 1 - i}
		enemies[i] = &Slot{Coordinate: n + i}
	}
	return allies, enemies
}

// SlotOf returns the slot holding c, or nil.
func (s Side) SlotOf(c *Character) *Slot {
	for _, sl := range s {
		if sl.Content == c {
			return sl
		}
	}
	return nil
}

// Living returns living occupants front-to-back.
func (s Side) Living() []*Character {
	var out []*Character
	for _, sl := range s {
		if sl.Living() {
			out = append(out, sl.Content)
		}
	}
	return out
}

func (s Side) AnyLiving() bool {
	for _, sl := range s {
		if sl.Living() {
			return true
		}
	}
	return false
}

// Place fills the side front-to-back with cs. It panics if cs does not fit.
func (s Side) Place(cs []*Character) {
	if len(cs) > len(s) {
		panic("combat: roster larger than side")
	}
	for i, sl := range s {
		sl.Content = nil
		if i < len(cs) {
			sl.Content = cs[i]
		}
	}
}

// RemoveDead empties every slot whose occupant is dead and returns them.
func (s Side) RemoveDead() []*Character {
	var removed []*Character
	for _, sl := range s {
		if sl.Occupied() && sl.Content.IsDead() {
			removed = append(removed, sl.Content)
			sl.Content = nil
		}
	}
	return removed
}

// Compact moves occupants into the front-most slots keeping their order.
func (s Side) Compact() {
	next := 0
	for _, sl := range s {
		if !sl.Occupied() {
			continue
		}
		c := sl.Content
		sl.Content = nil
		s[next].Content = c
		next++
	}
}
