package settings

import (
	"fmt"
	"iter"
	"slices"
)

// Registry owns settings grouped by category and indexed by name.
// Registration order is preserved and is the display order.
//
// Registry is not safe for concurrent mutation; hosts that dispatch
// callbacks from several goroutines must serialize access themselves.
type Registry struct {
	order      []Category
	byCategory map[Category][]*Setting
	byName     map[string]*Setting
	names      []string
}

// NewRegistry creates an empty settings registry
func NewRegistry() *Registry {
	return &Registry{
		byCategory: make(map[Category][]*Setting),
		byName:     make(map[string]*Setting),
	}
}

// AddSetting registers setting under category.
// The registry is unchanged when an error is returned.
func (r *Registry) AddSetting(setting *Setting, category Category) error {
	if setting == nil {
		return fmt.Errorf("cannot register a nil setting")
	}
	if !category.Valid() {
		return fmt.Errorf("%w: %d for setting %s", ErrInvalidCategory, int(category), setting.name)
	}
	if _, exists := r.byName[setting.name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSetting, setting.name)
	}

	if _, seen := r.byCategory[category]; !seen {
		r.order = append(r.order, category)
	}
	r.byCategory[category] = append(r.byCategory[category], setting)
	r.byName[setting.name] = setting
	r.names = append(r.names, setting.name)
	return nil
}

// Get returns the setting registered under name
func (r *Registry) Get(name string) (*Setting, error) {
	setting, exists := r.byName[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSetting, name)
	}
	return setting, nil
}

// SetValue validates value against the named setting and stores it.
// On failure the stored value is unchanged.
func (r *Registry) SetValue(name string, value interface{}) error {
	setting, err := r.Get(name)
	if err != nil {
		return err
	}
	return setting.set(value)
}

// Reset restores the named setting to its default
func (r *Registry) Reset(name string) error {
	setting, err := r.Get(name)
	if err != nil {
		return err
	}
	return setting.set(setting.def)
}

// CategoriesInOrder yields each category with its settings in first-registration order.
// The sequence can be ranged over any number of times.
func (r *Registry) CategoriesInOrder() iter.Seq2[Category, []*Setting] {
	return func(yield func(Category, []*Setting) bool) {
		for _, category := range r.order {
			if !yield(category, slices.Clone(r.byCategory[category])) {
				return
			}
		}
	}
}

// Names returns all setting names in registration order
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Len returns the number of registered settings
func (r *Registry) Len() int {
	return len(r.byName)
}
