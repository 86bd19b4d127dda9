package agents

// StatusEffect is a time-bounded modifier on an agent's stats (e.g.
// injured, inspired) (§3, glossary).
type StatusEffect struct {
	RemainingDuration float64
	Parameters        map[string]float64
}

// StatusEffects maps effect name to its state. Ticking drops expired
// effects.
type StatusEffects map[string]StatusEffect

// Apply adds or refreshes a status effect.
func (s *StatusEffects) Apply(name string, duration float64, params map[string]float64) {
	if *s == nil {
		*s = make(StatusEffects)
	}
	(*s)[name] = StatusEffect{RemainingDuration: duration, Parameters: params}
}

// Tick decrements every effect's remaining duration by dt and removes any
// that have expired.
func (s StatusEffects) Tick(dt float64) {
	for name, eff := range s {
		eff.RemainingDuration -= dt
		if eff.RemainingDuration <= 0 {
			delete(s, name)
			continue
		}
		s[name] = eff
	}
}

// Has reports whether the named effect is currently active.
func (s StatusEffects) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// InventoryItem is a single stack of a carried good.
type InventoryItem struct {
	Name     string
	Quantity int
	Quality  float64
}

// Inventory is an ordered list of carried items; lookups are linear, which
// is fine at the small per-agent sizes this system expects.
type Inventory []InventoryItem

// Add increases the quantity of name by qty, appending a new stack if the
// agent doesn't carry it yet.
func (inv *Inventory) Add(name string, qty int, quality float64) {
	for i := range *inv {
		if (*inv)[i].Name == name {
			(*inv)[i].Quantity += qty
			return
		}
	}
	*inv = append(*inv, InventoryItem{Name: name, Quantity: qty, Quality: quality})
}

// Has reports whether the inventory holds at least qty of name.
func (inv Inventory) Has(name string, qty int) bool {
	for _, it := range inv {
		if it.Name == name {
			return it.Quantity >= qty
		}
	}
	return qty <= 0
}

// Remove deducts qty of name, dropping the stack entirely if it reaches
// zero. Reports whether the removal succeeded.
func (inv *Inventory) Remove(name string, qty int) bool {
	for i := range *inv {
		if (*inv)[i].Name == name {
			if (*inv)[i].Quantity < qty {
				return false
			}
			(*inv)[i].Quantity -= qty
			if (*inv)[i].Quantity == 0 {
				*inv = append((*inv)[:i], (*inv)[i+1:]...)
			}
			return true
		}
	}
	return false
}

// SkillSet maps skill name to level in [0,1].
type SkillSet map[string]float64

// Bonus returns the harvest-efficiency bonus contributed by a skill
// (§4.7: "0.1 per relevant skill level").
func (s SkillSet) Bonus(name string) float64 {
	return s[name] * 0.1
}
