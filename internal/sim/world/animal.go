package world

// Animal is a barn resident. Stats decay once per day rollover and are
// replenished by feed/collect commands; animals are never destroyed except by
// explicit removal.
type Animal struct {
	ID      string
	Kind    string
	Name    string
	Product string
	Feed    string

	Happiness    int // 0..100
	FedToday     bool
	ProductReady bool
}

func (a *Animal) dailyDecay() {
	if a.FedToday {
		a.Happiness += 5
		a.ProductReady = true
	} else {
		a.Happiness -= 10
		a.ProductReady = false
	}
	if a.Happiness > 100 {
		a.Happiness = 100
	}
	if a.Happiness < 0 {
		a.Happiness = 0
	}
	a.FedToday = false
}

// productQuality maps happiness to a product quality tier.
func (a *Animal) productQuality() Quality {
	switch {
	case a.Happiness >= 90:
		return QualityGold
	case a.Happiness >= 60:
		return QualitySilver
	default:
		return QualityNormal
	}
}

// Pet is a per-player companion; loyalty drifts down on days without play.
type Pet struct {
	ID      string
	OwnerID string
	Kind    string

	Loyalty     int // 0..100
	PlayedToday bool
}

func (p *Pet) dailyDecay() {
	if !p.PlayedToday {
		p.Loyalty -= 2
	}
	if p.Loyalty < 0 {
		p.Loyalty = 0
	}
	p.PlayedToday = false
}
