package warrior

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"time"
)

// Delta moduli for the full stat shape
const (
	HealthRollBound   = 10
	StrengthRollBound = 6
	SpeedRollBound    = 3
)

// statRoll derives a pseudo-random delta below bound from a one-way mix of
// the train timestamp, the training character, and the warrior id rendered as
// decimal text. The derivation is deterministic for fixed inputs; it is not a
// source of unpredictability.
func statRoll(at time.Time, characterId uint32, warriorId uint32, bound uint64) uint32 {
	h := sha256.New()

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(at.Unix()))
	h.Write(ts[:])

	var caller [4]byte
	binary.BigEndian.PutUint32(caller[:], characterId)
	h.Write(caller[:])

	h.Write([]byte(strconv.FormatUint(uint64(warriorId), 10)))

	sum := h.Sum(nil)
	return uint32(binary.BigEndian.Uint64(sum[:8]) % bound)
}

// Train advances the warrior by one level. In the full stat shape it also
// rolls deltas for health, strength, and speed. Each delta is rolled from its
// own evaluation of the mix; the evaluations share seed material, so the
// three deltas are correlated rather than independent draws. That matches
// the reference behavior and is kept deliberately.
func (w Warrior) Train(mode StatMode, characterId uint32, at time.Time) (Warrior, error) {
	b := w.Builder().
		SetLevel(w.level + 1).
		SetUpdatedAt(at)

	if mode == StatModeFull {
		b = b.
			SetHealth(w.health + statRoll(at, characterId, w.id, HealthRollBound)).
			SetStrength(w.strength + statRoll(at, characterId, w.id, StrengthRollBound)).
			SetSpeed(w.speed + statRoll(at, characterId, w.id, SpeedRollBound))
	}

	return b.Build()
}
