package systems

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/automoto/construct/shared/leveldata"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// ItemStore is the key/value surface of gdata.Manager the level store
// needs. A missing item loads as nil data and a nil error.
type ItemStore interface {
	SaveItem(key string, data []byte) error
	LoadItem(key string) ([]byte, error)
}

// ErrNoStore is returned when persistence was never initialized.
var ErrNoStore = errors.New("level store not initialized")

const (
	levelIndexItem  = "levels"
	levelItemPrefix = "level_"
)

var (
	store  ItemStore
	logger = zap.NewNop()
)

// SetLogger routes the systems package's log output.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// InitPersistence opens the gdata store for appName.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open level store: %w", err)
	}
	store = m
	return nil
}

// SetStore swaps the backing store.
func SetStore(s ItemStore) {
	store = s
}

// SaveLevel stores entities under name and records name in the index.
func SaveLevel(name string, entities []leveldata.Entity) error {
	if store == nil {
		return ErrNoStore
	}
	if err := checkLevelName(name); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := leveldata.Encode(&buf, entities); err != nil {
		return fmt.Errorf("save level %q: %w", name, err)
	}
	if err := store.SaveItem(levelItemPrefix+name, buf.Bytes()); err != nil {
		return fmt.Errorf("save level %q: %w", name, err)
	}

	names, err := SavedLevels()
	if err != nil {
		return err
	}
	i := sort.SearchStrings(names, name)
	if i == len(names) || names[i] != name {
		names = append(names, "")
		copy(names[i+1:], names[i:])
		names[i] = name
		data, err := json.Marshal(names)
		if err != nil {
			return fmt.Errorf("encode level index: %w", err)
		}
		if err := store.SaveItem(levelIndexItem, data); err != nil {
			return fmt.Errorf("save level index: %w", err)
		}
	}

	logger.Info("level saved", zap.String("level", name), zap.Int("entities", len(entities)))
	return nil
}

// LoadLevel reads a level stored by SaveLevel. A name that was never saved
// is an error.
func LoadLevel(name string) (*leveldata.Level, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	if err := checkLevelName(name); err != nil {
		return nil, err
	}

	data, err := store.LoadItem(levelItemPrefix + name)
	if err != nil {
		return nil, fmt.Errorf("load level %q: %w", name, err)
	}
	if data == nil {
		return nil, fmt.Errorf("load level %q: not saved", name)
	}
	entities, err := leveldata.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load level %q: %w", name, err)
	}

	logger.Info("level loaded", zap.String("level", name), zap.Int("entities", len(entities)))
	return &leveldata.Level{Name: name, Entities: entities}, nil
}

// SavedLevels lists saved level names in sorted order.
func SavedLevels() ([]string, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	data, err := store.LoadItem(levelIndexItem)
	if err != nil {
		return nil, fmt.Errorf("load level index: %w", err)
	}
	if data == nil {
		// Nothing saved yet
		return nil, nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("decode level index: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// checkLevelName keeps names usable as gdata item keys, which become file
// names on desktop.
func checkLevelName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\:*?"<>|`) || strings.TrimSpace(name) != name {
		return fmt.Errorf("invalid level name %q", name)
	}
	return nil
}
