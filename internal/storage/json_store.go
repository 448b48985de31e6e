package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// fileData is the on-disk layout of a JSONStore.
type fileData struct {
	Version    int                             `json:"version"`
	Partitions map[Partition]map[string]string `json:"partitions"`
}

// JSONStore keeps every partition in a single JSON file, rewritten on each commit.
type JSONStore struct {
	path string
	data *fileData
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.data = &fileData{Version: 1}
	s.ensurePartitions()
	return s.save()
}

func (s *JSONStore) Load() error {
	if s.data != nil {
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'daywell init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	data := &fileData{}
	if err := json.Unmarshal(raw, data); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	s.data = data
	s.ensurePartitions()
	return nil
}

func (s *JSONStore) Close() error {
	s.data = nil
	return nil
}

func (s *JSONStore) ensurePartitions() {
	if s.data.Partitions == nil {
		s.data.Partitions = make(map[Partition]map[string]string)
	}
	for _, p := range Partitions {
		if s.data.Partitions[p] == nil {
			s.data.Partitions[p] = make(map[string]string)
		}
	}
}

func (s *JSONStore) loaded() error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) Get(p Partition, key string) (string, bool, error) {
	if err := checkPartition(p); err != nil {
		return "", false, err
	}
	if err := s.loaded(); err != nil {
		return "", false, err
	}
	v, ok := s.data.Partitions[p][key]
	return v, ok, nil
}

func (s *JSONStore) Set(p Partition, key, value string) error {
	return s.SetMany(p, map[string]string{key: value})
}

func (s *JSONStore) SetMany(p Partition, values map[string]string) error {
	if err := checkPartition(p); err != nil {
		return err
	}
	if err := s.loaded(); err != nil {
		return err
	}
	for k, v := range values {
		s.data.Partitions[p][k] = v
	}
	return s.save()
}

func (s *JSONStore) Delete(p Partition, key string) error {
	if err := checkPartition(p); err != nil {
		return err
	}
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.data.Partitions[p][key]; !ok {
		return nil
	}
	delete(s.data.Partitions[p], key)
	return s.save()
}

func (s *JSONStore) Keys(p Partition, prefix string) ([]string, error) {
	if err := checkPartition(p); err != nil {
		return nil, err
	}
	if err := s.loaded(); err != nil {
		return nil, err
	}
	keys := []string{}
	for k := range s.data.Partitions[p] {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// save writes to a temporary file and renames it over the store file.
func (s *JSONStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}
