package utils

import "hash/fnv"

// TriggerKey maps a reminder id to the key space of the trigger scheduler.
// FNV-1a (64-bit) over the raw id bytes: the same id always yields the same
// key, so re-scheduling a reminder replaces its pending trigger instead of
// arming a second one.
func TriggerKey(id string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return h.Sum64()
}
