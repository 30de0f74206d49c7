package gameoptions

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/educreate/gamecore/internal/catalog"
	"github.com/educreate/gamecore/internal/fileformat"
)

// Result is the outcome of validating a set of options against a game's
// definitions.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Manager owns the per-game definition table. The table is built once, on
// first use or by an explicit Initialize, and is read-only afterwards.
type Manager struct {
	once sync.Once
	defs map[catalog.GameType][]Definition
}

// NewManager returns a manager whose definitions are not yet loaded.
func NewManager() *Manager {
	return &Manager{}
}

// Initialize loads the definition table. Calling it again has no effect.
func (m *Manager) Initialize() {
	m.once.Do(func() {
		m.defs = seedDefinitions()
	})
}

// Definitions returns the option definitions of a game type in display
// order. Game types without a template have none.
func (m *Manager) Definitions(gt catalog.GameType) []Definition {
	m.Initialize()
	defs := m.defs[gt]
	out := make([]Definition, len(defs))
	for i, d := range defs {
		out[i] = d.clone()
	}
	return out
}

// ByCategory returns the definitions of a game type in one category.
func (m *Manager) ByCategory(gt catalog.GameType, cat Category) []Definition {
	var out []Definition
	for _, d := range m.Definitions(gt) {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// Defaults returns the generic defaults with every definition's default
// value of the game type applied on top.
func (m *Manager) Defaults(gt catalog.GameType) Options {
	o := skeleton()
	for _, d := range m.Definitions(gt) {
		if err := SetValue(&o, d.ID, d.DefaultValue); err != nil {
			panic(fmt.Sprintf("gameoptions: default of %s: %v", d.ID, err))
		}
	}
	return o
}

// Validate checks every option the game type defines that is set in opts.
// A set value must satisfy the definition's constraint and predicate, and
// its dependencies must hold.
func (m *Manager) Validate(gt catalog.GameType, opts Options) Result {
	errs := []string{}
	for _, d := range m.Definitions(gt) {
		v, set := Value(&opts, d.ID)
		if !set {
			continue
		}

		if err := d.conforms(v); err != nil {
			errs = append(errs, fmt.Sprintf("%s 的值無效", d.Name))
		} else if d.Validate != nil {
			if err := d.Validate(v); err != nil {
				errs = append(errs, err.Error())
			}
		}

		if !dependenciesMet(d, &opts) {
			errs = append(errs, fmt.Sprintf("%s 的依賴條件未滿足", d.Name))
		}
	}
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// Merge is the package-level Merge.
func (m *Manager) Merge(defaults, user Options) Options {
	return Merge(defaults, user)
}

func dependenciesMet(d Definition, o *Options) bool {
	for _, dep := range d.Dependencies {
		v, ok := Value(o, dep.OptionID)
		if !ok || !equalValues(v, dep.Value) {
			return false
		}
	}
	return true
}

// Merge overlays user onto defaults. Every leaf set in user wins; others
// keep the default. Slices are replaced whole and GameSpecific maps merge
// key by key, recursing into nested maps. Neither argument is modified.
func Merge(defaults, user Options) Options {
	var out Options
	for _, b := range fields {
		v, ok := b.get(&user)
		if !ok {
			v, ok = b.get(&defaults)
		}
		if !ok {
			continue
		}
		if err := b.set(&out, v); err != nil {
			panic(fmt.Sprintf("gameoptions: merge %s: %v", b.path, err))
		}
	}
	out.GameSpecific = mergeMaps(defaults.GameSpecific, user.GameSpecific)
	return out
}

func mergeMaps(base, over map[string]any) map[string]any {
	if base == nil && over == nil {
		return nil
	}
	out := cloneMap(base)
	if out == nil {
		out = make(map[string]any, len(over))
	}
	for k, v := range over {
		if om, ok := v.(map[string]any); ok {
			if bm, ok := out[k].(map[string]any); ok {
				out[k] = mergeMaps(bm, om)
				continue
			}
		}
		out[k] = cloneValue(v)
	}
	return out
}

// Decode reads options encoded as f from r.
func Decode(r io.Reader, f fileformat.Format) (Options, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Options{}, fmt.Errorf("read options: %w", err)
	}
	raw, err := fileformat.ToJSON(data, f)
	if err != nil {
		return Options{}, err
	}
	var o Options
	if err := json.Unmarshal(raw, &o); err != nil {
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	return o, nil
}

// Load decodes the options file at path.
func Load(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("open options file: %w", err)
	}
	defer f.Close()

	o, err := Decode(f, fileformat.FromPath(path))
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}

var std = NewManager()

// Initialize loads the default manager's definitions.
func Initialize() { std.Initialize() }

// Definitions returns the default manager's definitions for gt.
func Definitions(gt catalog.GameType) []Definition { return std.Definitions(gt) }

// ByCategory returns the default manager's definitions for gt in cat.
func ByCategory(gt catalog.GameType, cat Category) []Definition { return std.ByCategory(gt, cat) }

// Defaults returns the default manager's defaults for gt.
func Defaults(gt catalog.GameType) Options { return std.Defaults(gt) }

// Validate validates opts with the default manager.
func Validate(gt catalog.GameType, opts Options) Result { return std.Validate(gt, opts) }
