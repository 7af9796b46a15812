package pragma

import (
	"sort"
	"strings"
)

// Catalog holds the extension and flag names known to one compiler version.
// It is immutable after construction; hosts build it once at startup and share
// it across requests.
type Catalog struct {
	extensions []string
	extSet     map[string]struct{}
	flags      []string
}

// NewCatalog builds a catalog from extension names and flag names (flags keep
// their leading dashes, e.g. "-Wunused-imports"). Input slices are copied and
// sorted; duplicates are dropped.
func NewCatalog(extensions, flags []string) *Catalog {
	c := &Catalog{
		extensions: dedupSorted(extensions),
		flags:      dedupSorted(flags),
	}
	c.extSet = make(map[string]struct{}, len(c.extensions))
	for _, ext := range c.extensions {
		c.extSet[ext] = struct{}{}
	}
	return c
}

// Builtin returns the catalog compiled into the binary. It is shared; callers
// must not mutate the returned slices.
func Builtin() *Catalog {
	return builtinCatalog
}

var builtinCatalog = NewCatalog(builtinExtensions, builtinFlags)

// Extensions returns the known extension names in sorted order.
func (c *Catalog) Extensions() []string {
	return c.extensions
}

// Flags returns the known compiler flag names in sorted order, dashes kept.
func (c *Catalog) Flags() []string {
	return c.flags
}

// HasExtension reports whether name is a known extension.
func (c *Catalog) HasExtension(name string) bool {
	_, ok := c.extSet[name]
	return ok
}

// FlagNames returns the flag names with leading dashes stripped, for
// completion inside OPTIONS_GHC pragmas.
func (c *Catalog) FlagNames() []string {
	names := make([]string, 0, len(c.flags))
	for _, f := range c.flags {
		name := strings.TrimLeft(f, "-")
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func dedupSorted(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// FlagSet is the resolved set of extensions in effect for a compiled module.
// A nil FlagSet means the module failed to parse; nothing is treated as
// enabled in that case.
type FlagSet struct {
	enabled map[string]struct{}
}

// NewFlagSet builds a flags snapshot from the enabled extension names.
func NewFlagSet(enabled []string) *FlagSet {
	fs := &FlagSet{enabled: make(map[string]struct{}, len(enabled))}
	for _, name := range enabled {
		fs.enabled[name] = struct{}{}
	}
	return fs
}

// ExtensionEnabled reports whether the extension is enabled in this snapshot.
// Safe on a nil receiver.
func (f *FlagSet) ExtensionEnabled(name string) bool {
	if f == nil {
		return false
	}
	_, ok := f.enabled[name]
	return ok
}
