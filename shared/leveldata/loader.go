package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadTMX parses a TMX file and returns its entities. Object groups named
// after an entity type ("floor", "building", "player", "flag") become
// entities of that type; other groups and tile layers are ignored. It takes
// an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{Name: stem(tmxPath)}
	for _, og := range levelMap.ObjectGroups {
		typ := EntityType(strings.ToLower(og.Name))
		if !typ.Valid() {
			continue
		}
		for _, o := range og.Objects {
			// Tiled positions rectangles by their top-left corner.
			x, y, w, h := o.X+o.Width/2, o.Y+o.Height/2, o.Width, o.Height
			// Point objects carry no size; only the player has a sensible default.
			if typ == TypePlayer && (w == 0 || h == 0) {
				x, y = o.X, o.Y
				w, h = DefaultPlayerWidth, DefaultPlayerHeight
			}
			e := Entity{
				Type:    typ,
				X:       x,
				Y:       y,
				Width:   w,
				Height:  h,
				Texture: o.Properties.GetString("texture"),
			}
			if err := e.Validate(); err != nil {
				return nil, fmt.Errorf("%s object %d: %w", tmxPath, o.ID, err)
			}
			level.Entities = append(level.Entities, e)
		}
	}
	return level, nil
}

// LoadJSON reads an editor export from fsys.
func LoadJSON(fsys fs.FS, jsonPath string) (*Level, error) {
	f, err := fsys.Open(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", jsonPath, err)
	}
	defer f.Close()

	entities, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", jsonPath, err)
	}
	return &Level{Name: stem(jsonPath), Entities: entities}, nil
}

// Load picks the loader by file extension.
func Load(fsys fs.FS, p string) (*Level, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return LoadJSON(fsys, p)
	case ".tmx":
		return LoadTMX(fsys, p)
	default:
		return nil, fmt.Errorf("load %s: unsupported level format", p)
	}
}

// LoadAll discovers every .json and .tmx level in dir within fsys and
// returns them keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	var matches []string
	for _, pattern := range []string{path.Join(dir, "*.json"), path.Join(dir, "*.tmx")} {
		m, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .json or .tmx levels found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		level, err := Load(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		if _, dup := levels[level.Name]; dup {
			return nil, nil, fmt.Errorf("level %q defined twice in %s", level.Name, dir)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// Pick loads every level in dir and returns the one called name. An empty
// name picks the first level in name order.
func Pick(fsys fs.FS, dir, name string) (*Level, error) {
	levels, names, err := LoadAll(fsys, dir)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return levels[names[0]], nil
	}
	level, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("level %q not in %s (have %s): %w", name, dir, strings.Join(names, ", "), ErrUnknownLevel)
	}
	return level, nil
}

func stem(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}
