package prompt

import (
	"fmt"
	"iter"
	"slices"

	"github.com/AlecAivazis/survey/v2"

	"github.com/nqrduck/spectrometer-simulator/pkg/settings"
)

// Store is the part of the simulator model the editor needs
type Store interface {
	CategoriesInOrder() iter.Seq2[settings.Category, []*settings.Setting]
	SetValue(name string, value interface{}) error
}

// AskFunc asks a single question; survey.AskOne in production
type AskFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// Editor walks settings and asks for a new value of each one
type Editor struct {
	ask AskFunc
}

// NewEditor creates an editor using survey for input
func NewEditor() *Editor {
	return &Editor{ask: survey.AskOne}
}

// NewEditorWithAsker creates an editor that asks through ask
func NewEditorWithAsker(ask AskFunc) *Editor {
	return &Editor{ask: ask}
}

// EditSettings prompts for every setting in the given categories, or in all
// categories when none are given, and stores each answer as it is confirmed.
// It returns the number of settings whose value changed.
func (e *Editor) EditSettings(store Store, categories ...settings.Category) (int, error) {
	changed := 0
	for category, list := range store.CategoriesInOrder() {
		if len(categories) > 0 && !slices.Contains(categories, category) {
			continue
		}
		for _, s := range list {
			value, err := e.promptForSetting(s)
			if err != nil {
				return changed, fmt.Errorf("failed to get %s: %w", s.Name(), err)
			}
			if value == s.Value() {
				continue
			}
			if err := store.SetValue(s.Name(), value); err != nil {
				return changed, err
			}
			changed++
		}
	}
	return changed, nil
}

func (e *Editor) promptForSetting(s *settings.Setting) (interface{}, error) {
	message := s.Name() + ":"

	switch s.Kind() {
	case settings.KindBoolean:
		current, _ := s.Value().(bool)
		prompt := &survey.Confirm{
			Message: message,
			Default: current,
			Help:    s.Description(),
		}
		var result bool
		if err := e.ask(prompt, &result); err != nil {
			return nil, err
		}
		return result, nil

	case settings.KindSelection:
		prompt := &survey.Select{
			Message: message,
			Options: s.Choices(),
			Default: s.FormatValue(),
			Help:    s.Description(),
		}
		var result string
		if err := e.ask(prompt, &result); err != nil {
			return nil, err
		}
		return result, nil

	default:
		prompt := &survey.Input{
			Message: message,
			Default: s.FormatValue(),
			Help:    s.Description(),
		}
		var result string
		if err := e.ask(prompt, &result, survey.WithValidator(validator(s))); err != nil {
			return nil, err
		}
		return settings.ParseValue(s, result)
	}
}

// validator rejects input that would not be accepted by the setting
func validator(s *settings.Setting) survey.Validator {
	return func(ans interface{}) error {
		raw, ok := ans.(string)
		if !ok {
			return fmt.Errorf("expected text input")
		}
		value, err := settings.ParseValue(s, raw)
		if err != nil {
			return err
		}
		return s.Validate(value)
	}
}
