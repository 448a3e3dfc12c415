package warrior

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func baselineWarrior(t *testing.T, id uint32) Warrior {
	t.Helper()
	warrior, err := NewBuilder(uuid.New()).SetId(id).Build()
	if err != nil {
		t.Fatalf("Failed to build warrior: %v", err)
	}
	return warrior
}

func TestTrainIncrementsLevel(t *testing.T) {
	warrior := baselineWarrior(t, 1)
	at := time.Unix(1700000000, 0)

	trained, err := warrior.Train(StatModeFull, 100, at)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	if trained.Level() != warrior.Level()+1 {
		t.Errorf("Expected level %d, got %d", warrior.Level()+1, trained.Level())
	}
	if !trained.UpdatedAt().Equal(at) {
		t.Errorf("Expected updatedAt %v, got %v", at, trained.UpdatedAt())
	}
}

func TestTrainIsDeterministic(t *testing.T) {
	warrior := baselineWarrior(t, 1)
	at := time.Unix(1700000000, 0)

	first, err := warrior.Train(StatModeFull, 100, at)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	second, err := warrior.Train(StatModeFull, 100, at)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	if first != second {
		t.Errorf("Expected identical inputs to produce identical results: %+v vs %+v", first, second)
	}
}

func TestTrainDeltaBounds(t *testing.T) {
	warrior := baselineWarrior(t, 1)

	// Sweep across timestamps and callers so each roll sees varied seed
	// material; every delta must stay below its modulus.
	for i := 0; i < 200; i++ {
		at := time.Unix(1700000000+int64(i*37), 0)
		characterId := uint32(100 + i)

		trained, err := warrior.Train(StatModeFull, characterId, at)
		if err != nil {
			t.Fatalf("Train failed: %v", err)
		}

		healthDelta := trained.Health() - warrior.Health()
		strengthDelta := trained.Strength() - warrior.Strength()
		speedDelta := trained.Speed() - warrior.Speed()

		if healthDelta >= HealthRollBound {
			t.Errorf("Health delta %d out of range [0,%d)", healthDelta, HealthRollBound)
		}
		if strengthDelta >= StrengthRollBound {
			t.Errorf("Strength delta %d out of range [0,%d)", strengthDelta, StrengthRollBound)
		}
		if speedDelta >= SpeedRollBound {
			t.Errorf("Speed delta %d out of range [0,%d)", speedDelta, SpeedRollBound)
		}
	}
}

func TestTrainLevelOnlyModeLeavesStatsUntouched(t *testing.T) {
	warrior := baselineWarrior(t, 1)
	at := time.Unix(1700000000, 0)

	trained, err := warrior.Train(StatModeLevelOnly, 100, at)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	if trained.Level() != warrior.Level()+1 {
		t.Errorf("Expected level %d, got %d", warrior.Level()+1, trained.Level())
	}
	if trained.Health() != warrior.Health() ||
		trained.Strength() != warrior.Strength() ||
		trained.Speed() != warrior.Speed() {
		t.Errorf("Expected level-only training to leave stats untouched: %+v", trained)
	}
}

func TestTrainSeedMaterialVariesResults(t *testing.T) {
	warrior := baselineWarrior(t, 1)
	base := time.Unix(1700000000, 0)

	baseResult, err := warrior.Train(StatModeFull, 100, base)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	// With 64 bits of digest feeding each roll, a handful of perturbed
	// inputs producing identical stat triples would be vanishingly
	// unlikely; require at least one variation.
	varied := false
	for i := 1; i <= 20 && !varied; i++ {
		perturbed, err := warrior.Train(StatModeFull, 100, base.Add(time.Duration(i)*time.Second))
		if err != nil {
			t.Fatalf("Train failed: %v", err)
		}
		if perturbed.Health() != baseResult.Health() ||
			perturbed.Strength() != baseResult.Strength() ||
			perturbed.Speed() != baseResult.Speed() {
			varied = true
		}
	}

	if !varied {
		t.Error("Expected perturbed timestamps to vary the rolled deltas")
	}
}

func TestStatRollDeterminism(t *testing.T) {
	at := time.Unix(1700000000, 0)

	first := statRoll(at, 100, 1, HealthRollBound)
	second := statRoll(at, 100, 1, HealthRollBound)
	if first != second {
		t.Errorf("Expected identical inputs to roll identically: %d vs %d", first, second)
	}

	if statRoll(at, 100, 1, HealthRollBound) >= HealthRollBound {
		t.Error("Roll exceeded its bound")
	}
}
