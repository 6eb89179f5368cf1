package domain

// SizeType names a kingdom size tier.
type SizeType string

// Size tiers by claimed hexes.
const (
	SizeTerritory SizeType = "territory"
	SizeProvince  SizeType = "province"
	SizeState     SizeType = "state"
	SizeCountry   SizeType = "country"
	SizeDominion  SizeType = "dominion"
)

// SizeData holds the per-tier constants driven by kingdom size.
type SizeData struct {
	Type SizeType
	// ResourceDieSides is the die rolled per resource die.
	ResourceDieSides int
	// CommodityCapacity is the base storage capacity per commodity
	// before settlement storage is added.
	CommodityCapacity int
	// BaseResourceDice is the tier's flat dice grant per collection.
	// Accrual happens through the next-turn resource dice column, so
	// every tier currently grants zero here.
	BaseResourceDice int
}

var sizeTiers = []struct {
	minSize int
	data    SizeData
}{
	{100, SizeData{Type: SizeDominion, ResourceDieSides: 12, CommodityCapacity: 20}},
	{50, SizeData{Type: SizeCountry, ResourceDieSides: 10, CommodityCapacity: 16}},
	{25, SizeData{Type: SizeState, ResourceDieSides: 8, CommodityCapacity: 12}},
	{10, SizeData{Type: SizeProvince, ResourceDieSides: 6, CommodityCapacity: 8}},
	{0, SizeData{Type: SizeTerritory, ResourceDieSides: 4, CommodityCapacity: 4}},
}

// SizeDataFor returns the tier constants for a kingdom of the given
// size in claimed hexes.
func SizeDataFor(size int) SizeData {
	for _, tier := range sizeTiers {
		if size >= tier.minSize {
			return tier.data
		}
	}
	return sizeTiers[len(sizeTiers)-1].data
}

// SizeData returns the tier constants for this kingdom.
func (k Kingdom) SizeData() SizeData {
	return SizeDataFor(k.Size)
}
