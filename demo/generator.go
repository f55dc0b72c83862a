package demo

import (
	"math/rand"
	"strconv"
	"sync"

	"mysterystays/dto"
	"mysterystays/models"
)

var (
	propertyNames = []string{"Sunny Loft", "Cozy Studio", "Urban Retreat", "Seaside Escape", "Mountain Cabin"}
	cities        = []string{"Lisbon", "Barcelona", "Berlin", "Paris", "Athens"}
	countries     = []string{"Portugal", "Spain", "Germany", "France", "Greece"}
	amenitySets   = [][]string{
		{"wifi", "kitchen"},
		{"wifi", "balcony"},
		{"kitchen", "washer"},
		{"wifi", "pool"},
		{"air conditioning", "wifi"},
	}
	bedroomCounts = []int{1, 2, 3}
)

const (
	basePrice      = 100
	priceSpread    = 100
	userIDSpread   = 10000
	priceMaxFactor = 0.6
)

// Generator produces the sample data for one demo run.
type Generator interface {
	Property() dto.PropertyRequest
	UserID() string
}

// RandomGenerator draws every field independently and uniformly from the sample pools.
type RandomGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *RandomGenerator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Intn(n)
}

func (g *RandomGenerator) Property() dto.PropertyRequest {
	amenities := amenitySets[g.intn(len(amenitySets))]
	return dto.PropertyRequest{
		Name:          propertyNames[g.intn(len(propertyNames))],
		OriginalPrice: float64(basePrice + g.intn(priceSpread)),
		Amenities:     append([]string(nil), amenities...),
		Bedrooms:      bedroomCounts[g.intn(len(bedroomCounts))],
		Location: models.Location{
			City:    cities[g.intn(len(cities))],
			Country: countries[g.intn(len(countries))],
		},
	}
}

func (g *RandomGenerator) UserID() string {
	return "user" + strconv.Itoa(g.intn(userIDSpread))
}

// PreferencesFor returns preferences the property satisfies on amenities and bedrooms,
// with a budget of 60% of its original price.
func PreferencesFor(userID string, property dto.PropertyRequest) dto.RegisterPreferencesRequest {
	return dto.RegisterPreferencesRequest{
		UserID: userID,
		Preferences: dto.Preferences{
			Amenities: append([]string(nil), property.Amenities...),
			PriceMax:  dto.Float(property.OriginalPrice * priceMaxFactor),
			Bedrooms:  dto.Int(property.Bedrooms),
		},
	}
}
