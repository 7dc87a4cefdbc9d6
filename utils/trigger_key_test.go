package utils_test

import (
	"testing"

	"github.com/SintosDev514/Chronic-Care-Wellness-Tracker/utils"
)

func TestTriggerKey_Deterministic(t *testing.T) {
	id := "1b671a64-40d5-491e-99b0-da01ff1f3341"
	if utils.TriggerKey(id) != utils.TriggerKey(id) {
		t.Fatal("same id must always map to the same key")
	}
}

func TestTriggerKey_DistinctIDs(t *testing.T) {
	ids := []string{
		"1b671a64-40d5-491e-99b0-da01ff1f3341",
		"1b671a64-40d5-491e-99b0-da01ff1f3342",
		"a", "b", "",
	}
	seen := make(map[uint64]string)
	for _, id := range ids {
		key := utils.TriggerKey(id)
		if prev, ok := seen[key]; ok {
			t.Fatalf("ids %q and %q collided on key %d", prev, id, key)
		}
		seen[key] = id
	}
}
