package component

import "go-td-sim/internal/defs"

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// TakeDamage subtracts amount; there is no floor, IsDead checks <= 0.
func (h *Health) TakeDamage(amount int) {
	h.Value -= amount
}

func (h *Health) IsDead() bool {
	return h.Value <= 0
}

// Fraction returns the remaining health share in [0,1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 || h.Value <= 0 {
		return 0
	}
	if h.Value >= h.Max {
		return 1
	}
	return float64(h.Value) / float64(h.Max)
}

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	FireRate        float64 // Скорострельность (выстрелов в секунду)
	FireCooldown    float64 // Оставшееся время до следующего выстрела
	Range           float64 // Радиус действия (в пикселях)
	Damage          int
	Aim             defs.AimPolicy
	Mode            defs.ProjectileMode
	ProjectileSpeed float64
}

// Interval returns the full cooldown between two shots.
func (c *Combat) Interval() float64 {
	return 1.0 / c.FireRate
}

// cooldownEpsilon поглощает остаток от вычитания dt, иначе выстрел
// съезжает на тик позже.
const cooldownEpsilon = 1e-9

// Ready reports whether the cooldown has run out.
func (c *Combat) Ready() bool {
	return c.FireCooldown <= cooldownEpsilon
}

// CooldownFraction is 0 when ready and 1 right after a shot.
func (c *Combat) CooldownFraction() float64 {
	if c.FireCooldown <= 0 {
		return 0
	}
	f := c.FireCooldown / c.Interval()
	if f > 1 {
		return 1
	}
	return f
}
