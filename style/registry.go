package style

import (
	"slices"
	"sync"
)

// Names of the built-in styles.
const (
	NameDefault   = "default"
	NameTokens    = "tokens"
	NameColors    = "colors"
	NamePrefix    = "prefix"
	NamePlain     = "plain"
	NameSequenced = "sequenced"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Style{
		NameDefault:   func() Style { return Default{} },
		NameTokens:    func() Style { return Funcs{TokenFunc: ThreeLetterToken} },
		NameColors:    func() Style { return Funcs{ColorFunc: BackgroundLevelColor} },
		NamePrefix:    func() Style { return Funcs{PrefixFunc: ArrowPrefixToken} },
		NamePlain:     func() Style { return Funcs{SeparatorFunc: PlainLineSeparator} },
		NameSequenced: func() Style { return NewSequenced(nil) },
	}
)

// Register makes a style available under name, replacing any previous
// registration. The factory is called on every Lookup.
func Register(name string, factory func() Style) {
	if factory == nil {
		return
	}
	registryMu.Lock()
	registry[name] = factory
	registryMu.Unlock()
}

// Lookup returns a new instance of the style registered under name.
func Lookup(name string) (Style, bool) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Names returns the registered style names in sorted order.
func Names() []string {
	registryMu.RLock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	registryMu.RUnlock()
	slices.Sort(names)
	return names
}
