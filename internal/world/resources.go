package world

import "github.com/talgya/mini-world/internal/noise"

// resourceBaseChance gives a resource kind's base placement probability per
// biome; zero means the biome never spawns that kind.
func resourceBaseChance(b Biome, k ResourceKind) float64 {
	switch k {
	case ResourceTree:
		switch b {
		case BiomeForest, BiomeForestHills:
			return 0.55
		case BiomeRainforest, BiomeJungle:
			return 0.7
		case BiomeSavanna:
			return 0.1
		}
	case ResourceBerry:
		switch b {
		case BiomePlains, BiomeSavanna, BiomeForest:
			return 0.12
		case BiomeRainforest, BiomeJungle:
			return 0.18
		}
	case ResourceFlower:
		switch b {
		case BiomePlains, BiomeSavanna, BiomeSnowyPlains:
			return 0.15
		case BiomeForest:
			return 0.08
		}
	case ResourceRock:
		switch b {
		case BiomeHills, BiomeForestHills:
			return 0.25
		case BiomeMountains, BiomeSnowyMountains, BiomeSnowyPeaks:
			return 0.4
		}
	case ResourceOreVein:
		switch b {
		case BiomeMountains, BiomeSnowyMountains:
			return 0.09
		case BiomeHills:
			return 0.05
		case BiomeSnowyPeaks:
			return 0.12
		}
	case ResourceFish:
		switch b {
		case BiomeOcean, BiomeBeach:
			return 0.2
		}
	}
	return 0
}

// environmentModifier scales a resource kind's base chance by the
// environmental factor the spec names for it: trees and berries by moisture,
// flowers by temperature, rocks (and ore) by elevation. Other kinds are
// unmodified.
func environmentModifier(k ResourceKind, elev, moist, temp float64) float64 {
	switch k {
	case ResourceTree, ResourceBerry:
		return 0.5 + moist
	case ResourceFlower:
		return 0.5 + temp
	case ResourceRock, ResourceOreVein:
		return 0.5 + elev
	default:
		return 1.0
	}
}

// placeResources deterministically seeds each tile's resources from the
// feature noise channel sampled at per-kind offsets, never a runtime RNG, so
// regenerating the same chunk always places the same resources.
func placeResources(n *noise.Set, b Biome, elev, moist, temp, wx, wy float64) []ResourceRef {
	var out []ResourceRef

	for k := ResourceKind(0); k < numResourceKinds; k++ {
		base := resourceBaseChance(b, k)
		if base <= 0 {
			continue
		}
		mod := environmentModifier(k, elev, moist, temp)
		chance := clamp01(base * mod)

		roll := n.Sample2D(noise.Feature, (wx+float64(k)*137.0)/featureScale, (wy+float64(k)*271.0)/featureScale)
		if roll > chance {
			continue
		}

		sizeRoll := n.Sample2D(noise.Feature, (wx+float64(k)*401.0)/featureScale, (wy+float64(k)*503.0)/featureScale)
		qualityRoll := n.Sample2D(noise.Feature, (wx+float64(k)*607.0)/featureScale, (wy+float64(k)*811.0)/featureScale)

		out = append(out, ResourceRef{
			Kind:    k,
			Size:    0.8 + sizeRoll*0.4,    // [0.8, 1.2]
			Quality: 0.7 + qualityRoll*0.3, // [0.7, 1.0]
		})
	}

	return out
}

// placeFeatures attaches biome decorations. The only simulation-relevant
// trait is whether the feature shelters occupants from weather exposure.
func placeFeatures(b Biome) []Feature {
	switch b {
	case BiomeForest, BiomeRainforest, BiomeJungle, BiomeForestHills:
		return []Feature{{Name: "canopy", ProvidesShelter: true}}
	case BiomeMountains, BiomeSnowyMountains, BiomeSnowyPeaks:
		return []Feature{{Name: "rock_overhang", ProvidesShelter: true}}
	default:
		return nil
	}
}
