package agents

import "github.com/talgya/mini-world/internal/world"

// Resource is the Entity variant modeling a harvestable deposit (§3,
// §4.8). Fish are modeled as Resource rather than Animal (§9 open
// question), which keeps harvest conservation (invariant 9) simple: a
// fishing action is just another gather against a Resource.
type Resource struct {
	Header

	Type world.ResourceKind

	Quantity    float64
	MaxQuantity float64
	Regeneration float64 // base regeneration rate, units/s once regenerating

	Quality float64 // [0,1]

	IsDepleted    bool
	DepletionTime float64

	CurrentUsers map[ID]struct{}

	TimesHarvested int
	TotalHarvested float64

	WeatherResistance float64 // [0,1]; higher resists storm/rain damage
}

// NewResource constructs a resource deposit at pos.
func NewResource(id ID, pos world.Vec2, typ world.ResourceKind, maxQty, quality float64) *Resource {
	return &Resource{
		Header:            NewHeader(id, KindResource, pos),
		Type:              typ,
		Quantity:          maxQty,
		MaxQuantity:        maxQty,
		Regeneration:      maxQty * 0.05,
		Quality:           quality,
		CurrentUsers:      make(map[ID]struct{}),
		WeatherResistance: 0.5,
	}
}

// baseRegenDelay is the base regeneration delay before a depleted resource
// starts recovering, in simulated seconds (§4.8).
const baseRegenDelay = 300.0

// RegenerationDelay computes the delay before regeneration resumes,
// lengthening with repeated harvests and shortening in favorable seasons
// (§4.8: "base_delay · (1 + 0.1·times_harvested) / season_growth_mod").
func (r *Resource) RegenerationDelay(seasonGrowthMod float64) float64 {
	if seasonGrowthMod <= 0 {
		seasonGrowthMod = 1
	}
	return baseRegenDelay * (1 + 0.1*float64(r.TimesHarvested)) / seasonGrowthMod
}

// Harvest removes min(request, quantity*efficiency), updates bookkeeping,
// and returns the amount actually harvested (§4.7 completion effects).
func (r *Resource) Harvest(request, efficiency float64) float64 {
	if r.IsDepleted {
		return 0
	}
	amount := request
	if maxAllowed := r.Quantity * efficiency; amount > maxAllowed {
		amount = maxAllowed
	}
	if amount > r.Quantity {
		amount = r.Quantity
	}
	r.Quantity -= amount
	r.TimesHarvested++
	r.TotalHarvested += amount
	if r.Quantity <= 0 {
		r.Quantity = 0
		r.IsDepleted = true
	}
	return amount
}

// ApplyWeatherDamage reduces quantity under storm/rain exposure (§4.8:
// "doubled in storms").
func (r *Resource) ApplyWeatherDamage(dt float64, isStorm bool) {
	loss := (1 - r.WeatherResistance) * dt
	if isStorm {
		loss *= 2
	}
	r.Quantity = clamp(r.Quantity-loss, 0, r.MaxQuantity)
	if r.Quantity <= 0 {
		r.IsDepleted = true
	}
}

// Regenerate restores quantity once past the regeneration delay, since
// DepletionTime, given the current simulated time.
func (r *Resource) Regenerate(dt float64, now float64, seasonGrowthMod float64) {
	if !r.IsDepleted {
		return
	}
	if now-r.DepletionTime < r.RegenerationDelay(seasonGrowthMod) {
		return
	}
	r.Quantity = clamp(r.Quantity+r.Regeneration*dt, 0, r.MaxQuantity)
	if r.Quantity > 0 {
		r.IsDepleted = false
	}
}
