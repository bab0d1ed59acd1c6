package collision

import (
	"math"

	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// mixFriction combines two friction coefficients the way box2d does.
func mixFriction(a, b float64) float64 {
	return math.Sqrt(a * b)
}

// mixElasticity takes the less bouncy of the two materials.
func mixElasticity(a, b float64) float64 {
	return gamemath.ClampFloat(math.Min(a, b), 0, 1)
}

// ReflectStatic bounces velocity v off an immovable surface with normal n
// (pointing toward the mover). It reports false when v is not heading into
// the surface.
func ReflectStatic(v, n mgl64.Vec2, elasticity, friction float64) (mgl64.Vec2, bool) {
	vn := v.Dot(n)
	if vn >= 0 {
		return v, false
	}
	e := gamemath.ClampFloat(elasticity, 0, 1)
	vt := v.Sub(n.Mul(vn))

	newVn := -e * vn
	vt = reduceTangent(vt, friction*math.Abs(newVn-vn))
	return n.Mul(newVn).Add(vt), true
}

// reduceTangent shortens vt by up to amount without reversing it.
func reduceTangent(vt mgl64.Vec2, amount float64) mgl64.Vec2 {
	s := vt.Len()
	if s < gamemath.Epsilon || amount <= 0 {
		return vt
	}
	if amount >= s {
		return mgl64.Vec2{}
	}
	return vt.Mul((s - amount) / s)
}

// ExchangeDynamic resolves a contact between two movable bodies. n points from
// b toward a. Elasticity blends the elastic exchange (1) with the shared
// inelastic velocity (0). It reports false when the bodies are separating.
func ExchangeDynamic(va, vb mgl64.Vec2, ma, mb float64, n mgl64.Vec2, elasticity, friction float64) (mgl64.Vec2, mgl64.Vec2, bool) {
	if (va.Sub(vb)).Dot(n) >= 0 || ma <= 0 || mb <= 0 {
		return va, vb, false
	}
	e := gamemath.ClampFloat(elasticity, 0, 1)
	total := ma + mb
	ua, ub := va.Dot(n), vb.Dot(n)

	shared := (ma*ua + mb*ub) / total
	ea := ((ma-mb)*ua + 2*mb*ub) / total
	eb := ((mb-ma)*ub + 2*ma*ua) / total
	na := shared + e*(ea-shared)
	nb := shared + e*(eb-shared)

	va = va.Add(n.Mul(na - ua))
	vb = vb.Add(n.Mul(nb - ub))

	// Coulomb friction on the relative tangential velocity.
	jn := ma * math.Abs(na-ua)
	rel := va.Sub(vb)
	rel = rel.Sub(n.Mul(rel.Dot(n)))
	if t, ok := gamemath.SafeNormalize(rel); ok {
		reduced := ma * mb / total
		jt := math.Min(friction*jn, rel.Len()*reduced)
		va = va.Sub(t.Mul(jt / ma))
		vb = vb.Add(t.Mul(jt / mb))
	}
	return va, vb, true
}

// contactNormal returns the unit normal pointing from other toward mine.
func contactNormal(mine, other *Area) (mgl64.Vec2, bool) {
	if c, ok := gamemath.Overlap(other.Geometry(), mine.Geometry()); ok {
		if n, ok := gamemath.SafeNormalize(c.Normal); ok {
			return n, true
		}
	}
	return gamemath.SafeNormalize(mine.Geometry().Centroid().Sub(other.Geometry().Centroid()))
}

// resolve applies the physical response between mine (on the moving body) and
// other, and reports damage through the hooks.
func (e *Engine) resolve(mine, other *Area) {
	a, b := mine.body, other.body
	if a == nil || b == nil || a == b || !a.Movable || b.dead {
		return
	}
	ma, err := e.cfg.material(mine.Material)
	if err != nil {
		return
	}
	mb, err := e.cfg.material(other.Material)
	if err != nil {
		return
	}
	n, ok := contactNormal(mine, other)
	if !ok {
		return
	}
	elasticity := mixElasticity(ma.Elasticity, mb.Elasticity)
	friction := mixFriction(ma.Friction, mb.Friction)
	dmg := ma.DamageMultiplier * mb.DamageMultiplier

	if !b.Movable {
		before := a.vel
		after, hit := ReflectStatic(before, n, elasticity, friction)
		if !hit {
			return
		}
		a.vel = after
		e.damage(a, b, after.Sub(before).Len(), dmg)
		return
	}

	beforeA, beforeB := a.vel, b.vel
	afterA, afterB, hit := ExchangeDynamic(beforeA, beforeB, a.Mass, b.Mass, n, elasticity, friction)
	if !hit {
		return
	}
	a.vel, b.vel = afterA, afterB
	e.damage(a, b, afterA.Sub(beforeA).Len(), dmg)
	e.damage(b, a, afterB.Sub(beforeB).Len(), dmg)
}

// damage reports impact damage for victim when its velocity changed by more
// than the configured minimum. Nothing is reported without side effects.
func (e *Engine) damage(victim, source *Body, delta, multiplier float64) {
	if !e.sideEffects || delta <= e.cfg.MinDamageDelta || multiplier <= 0 || victim.dead {
		return
	}
	amount := ImpactDamage(delta, victim.Mass, e.cfg.DamageScale, multiplier)
	if amount <= 0 {
		return
	}
	e.hooks.InflictDamage(victim, amount, source)
}

// ImpactDamage returns the damage dealt to a body of the given mass whose
// velocity changed by delta.
func ImpactDamage(delta, mass, scale, multiplier float64) float64 {
	return delta / 2 * mass * scale * multiplier
}
