package storage

import "fmt"

// Partition is a logical namespace of the key-value store.
type Partition string

const (
	PartitionSettings     Partition = "settings"
	PartitionHabits       Partition = "habits"
	PartitionMood         Partition = "mood"
	PartitionHabitHistory Partition = "habit-history"
)

// Partitions lists every partition in a stable order.
var Partitions = []Partition{PartitionSettings, PartitionHabits, PartitionMood, PartitionHabitHistory}

func (p Partition) IsValid() bool {
	switch p {
	case PartitionSettings, PartitionHabits, PartitionMood, PartitionHabitHistory:
		return true
	default:
		return false
	}
}

// Provider is a durable, partitioned string key-value store. Writes commit
// immediately; SetMany commits several keys of one partition together.
// There are no transactions across partitions.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the value and whether the key was present.
	Get(p Partition, key string) (string, bool, error)
	Set(p Partition, key, value string) error
	SetMany(p Partition, values map[string]string) error
	// Delete is a no-op when the key is absent.
	Delete(p Partition, key string) error
	// Keys returns the keys of p starting with prefix, sorted ascending.
	Keys(p Partition, prefix string) ([]string, error)

	// Utils
	GetConfigPath() string
}

func checkPartition(p Partition) error {
	if !p.IsValid() {
		return fmt.Errorf("unknown partition %q", p)
	}
	return nil
}

// CheckPartition validates p for backends in sub-packages.
func CheckPartition(p Partition) error {
	return checkPartition(p)
}
