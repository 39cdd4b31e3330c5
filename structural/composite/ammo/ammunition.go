package ammo

// CanCountBullets is the one capability every node of the unit tree shares,
// from a single magazine up to a whole platoon.
type CanCountBullets interface {
	BulletsLeft() int
}

// Bullet is a single round.
type Bullet struct{}

// MagazineCapacity is how many bullets a standard magazine holds.
const MagazineCapacity = 30

// Magazine holds bullets.
type Magazine struct {
	bullets []Bullet
}

// NewMagazine makes a Magazine loaded with capacity bullets.
func NewMagazine(capacity int) *Magazine {
	return &Magazine{bullets: make([]Bullet, max(capacity, 0))}
}

func (m *Magazine) BulletsLeft() int { return len(m.bullets) }
