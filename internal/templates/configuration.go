package templates

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/educreate/gamecore/internal/catalog"
	"github.com/educreate/gamecore/internal/fileformat"
)

// ErrTemplateNotFound is returned when a configuration names a template
// that is not in the catalog.
var ErrTemplateNotFound = errors.New("template not found")

// Configuration is a chosen template together with its style and option values.
type Configuration struct {
	TemplateID     catalog.GameType `json:"templateId"`
	VisualStyle    string           `json:"visualStyle"`
	GameOptions    map[string]any   `json:"gameOptions"`
	CustomSettings map[string]any   `json:"customSettings,omitempty"`
}

// NewConfiguration builds a configuration for template id. Every option of
// the template starts at its default; values in gameOptions override them
// by option id. An empty style selects DefaultStyle.
func NewConfiguration(id catalog.GameType, style string, gameOptions map[string]any) (Configuration, error) {
	if _, ok := catalog.GetTemplate(id); !ok {
		return Configuration{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	if style == "" {
		style = DefaultStyle
	}

	values := make(map[string]any)
	for _, opt := range Options(id) {
		values[opt.ID] = opt.Default
	}
	maps.Copy(values, gameOptions)

	return Configuration{
		TemplateID:  id,
		VisualStyle: style,
		GameOptions: values,
	}, nil
}

// ConfigurationErrors lists every problem with cfg: an unknown template,
// a style the template does not offer, radio values outside the declared
// choices and slider values that are not numbers within [min, max].
// Option ids the template does not declare are ignored.
func ConfigurationErrors(cfg Configuration) []error {
	if _, ok := catalog.GetTemplate(cfg.TemplateID); !ok {
		return []error{fmt.Errorf("%w: %s", ErrTemplateNotFound, cfg.TemplateID)}
	}

	var errs []error
	if _, ok := Style(cfg.TemplateID, cfg.VisualStyle); !ok {
		errs = append(errs, fmt.Errorf("style %q is not available for template %s", cfg.VisualStyle, cfg.TemplateID))
	}

	opts := Options(cfg.TemplateID)
	for _, id := range slices.Sorted(maps.Keys(cfg.GameOptions)) {
		value := cfg.GameOptions[id]
		i := slices.IndexFunc(opts, func(o GameOption) bool { return o.ID == id })
		if i < 0 {
			continue
		}
		if err := checkOption(opts[i], value); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// ValidateConfiguration reports whether cfg has no ConfigurationErrors.
func ValidateConfiguration(cfg Configuration) bool {
	return len(ConfigurationErrors(cfg)) == 0
}

func checkOption(opt GameOption, value any) error {
	switch opt.Type {
	case OptionRadio:
		s, ok := value.(string)
		if !ok || !slices.Contains(opt.Choices, s) {
			return fmt.Errorf("option %s: %v is not one of %v", opt.ID, value, opt.Choices)
		}
	case OptionSlider:
		if opt.Min == nil || opt.Max == nil {
			return nil
		}
		n, ok := fileformat.Number(value)
		if !ok {
			return fmt.Errorf("option %s: %v is not a number", opt.ID, value)
		}
		if n < *opt.Min || n > *opt.Max {
			return fmt.Errorf("option %s: %v is outside [%v, %v]", opt.ID, value, *opt.Min, *opt.Max)
		}
	}
	return nil
}

// DecodeConfiguration reads a configuration encoded as f from r.
func DecodeConfiguration(r io.Reader, f fileformat.Format) (Configuration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Configuration{}, fmt.Errorf("read configuration: %w", err)
	}
	raw, err := fileformat.ToJSON(data, f)
	if err != nil {
		return Configuration{}, err
	}
	var cfg Configuration
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("decode configuration: %w", err)
	}
	return cfg, nil
}

// LoadConfiguration decodes the configuration file at path.
func LoadConfiguration(path string) (Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("open configuration file: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfiguration(f, fileformat.FromPath(path))
	if err != nil {
		return Configuration{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
