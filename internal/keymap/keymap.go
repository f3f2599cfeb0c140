package keymap

import (
	"fmt"
	"slices"
	"strings"
)

// Binding ties keys to an action, with a description for the help popup.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "carousel" or "global"
}

// All contains the default key bindings.
var All = []Binding{
	// Carousel
	{ActionAdvance, []string{"right", "l", "down", "j"}, "Next", "carousel"},
	{ActionRetreat, []string{"left", "h", "up", "k"}, "Previous", "carousel"},
	{ActionToggleMode, []string{"tab", "enter"}, "Albums / tracks", "carousel"},

	// Global
	{ActionFind, []string{"/"}, "Find", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
}

// ByContext returns key bindings filtered by context.
func ByContext(bindings []Binding, context string) []Binding {
	var result []Binding
	for _, kb := range bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// WithOverrides returns a copy of base where every action named in
// overrides is bound to the given keys instead of its defaults. A key taken
// by an override is removed from other actions. ctrl+c always quits.
func WithOverrides(base []Binding, overrides map[string][]string) ([]Binding, error) {
	for name, keys := range overrides {
		if !Action(name).Valid() {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("action %q: no keys", name)
		}
	}

	taken := make(map[string]bool)
	for _, keys := range overrides {
		for _, k := range keys {
			taken[normalizeKey(k)] = true
		}
	}

	result := make([]Binding, 0, len(base))
	for _, b := range base {
		keys, ok := overrides[string(b.Action)]
		if ok {
			b.Keys = normalizeKeys(keys)
		} else {
			b.Keys = slices.DeleteFunc(slices.Clone(b.Keys), func(k string) bool {
				return taken[k]
			})
		}
		if b.Action == ActionQuit && !slices.Contains(b.Keys, "ctrl+c") {
			b.Keys = append(b.Keys, "ctrl+c")
		}
		result = append(result, b)
	}
	return result, nil
}

func normalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = normalizeKey(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// normalizeKey maps config spellings to Bubble Tea key strings.
func normalizeKey(k string) string {
	k = strings.TrimSpace(k)
	if strings.EqualFold(k, "space") {
		return " "
	}
	return k
}
