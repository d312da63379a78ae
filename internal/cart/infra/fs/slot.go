package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const DefaultKey = "kikuchan_cart"

type SlotConfig struct {
	BaseDir string
	Key     string
}

// Slot stores the cart as <BaseDir>/<Key>.json.
type Slot struct {
	baseDir string
	key     string
}

func NewSlot(cfg SlotConfig) *Slot {
	base := cfg.BaseDir
	if base == "" {
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			base = filepath.Join(home, ".kikuchan")
		} else {
			base = "./.kikuchan"
		}
	}
	return &Slot{baseDir: base, key: safeKey(cfg.Key)}
}

func (s *Slot) Path() string {
	return filepath.Join(s.baseDir, s.key+".json")
}

func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	b, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cart slot: %w", err)
	}
	return b, nil
}

// Save writes a temp file in the same directory and renames it over the
// slot, so readers see either the old or the new value.
func (s *Slot) Save(ctx context.Context, data []byte) error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.baseDir, s.key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp slot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp slot: %w", err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace cart slot: %w", err)
	}
	return nil
}

func safeKey(key string) string {
	k := strings.TrimSpace(key)
	if k == "" {
		return DefaultKey
	}
	k = strings.ReplaceAll(k, "..", "")
	k = strings.ReplaceAll(k, string(filepath.Separator), "-")
	k = strings.ReplaceAll(k, "/", "-")
	return k
}
