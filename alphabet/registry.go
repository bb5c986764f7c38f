package alphabet

import (
	"sort"
	"sync"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/skiggle"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Module is an alphabet configuration together with the verifiers for its
// characters.
type Module struct {
	Config   Config
	Verifier skiggle.Verifier
	Tags     []language.Tag // languages the module is suited for
}

// DefaultModule is the name of the module used if no module matches a locale.
const DefaultModule = "latin"

var registry = struct {
	sync.RWMutex
	modules map[string]Module
}{modules: make(map[string]Module)}

// Register adds an alphabet module to the registry. The configuration of the
// module is normalized and validated. Registering a name twice replaces the
// former module.
func Register(m Module) error {
	m.Config = m.Config.Normalized()
	if err := m.Config.Validate(); err != nil {
		return err
	}
	if m.Verifier == nil {
		return errors.Errorf("alphabet module %q has no verifier", m.Config.Name)
	}
	registry.Lock()
	defer registry.Unlock()
	registry.modules[m.Config.Name] = m
	tracer().Debugf("registered alphabet module %q", m.Config.Name)
	return nil
}

// MustRegister is like Register, but panics on error. It is intended for
// init functions of alphabet modules.
func MustRegister(m Module) {
	if err := Register(m); err != nil {
		panic(err)
	}
}

// Lookup finds a module by name.
func Lookup(name string) (Module, bool) {
	registry.RLock()
	defer registry.RUnlock()
	m, ok := registry.modules[name]
	return m, ok
}

// Names returns the names of all registered modules, sorted.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()
	return namesLocked()
}

// ForLocale finds the module best suited for a language. If no module claims
// the language, DefaultModule is returned (if registered).
func ForLocale(tag language.Tag) (Module, bool) {
	registry.RLock()
	var tags []language.Tag
	var names []string
	for _, name := range namesLocked() {
		for _, t := range registry.modules[name].Tags {
			tags = append(tags, t)
			names = append(names, name)
		}
	}
	registry.RUnlock()
	if len(tags) > 0 {
		matcher := language.NewMatcher(tags)
		_, index, confidence := matcher.Match(tag)
		if confidence != language.No {
			tracer().Debugf("locale %v selects alphabet %q", tag, names[index])
			return Lookup(names[index])
		}
	}
	return Lookup(DefaultModule)
}

func namesLocked() []string {
	names := make([]string, 0, len(registry.modules))
	for name := range registry.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromEnvironment selects a module by the locale of the current user.
func FromEnvironment() (Module, bool) {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf(err.Error())
		userLocale = "en-US"
	}
	tracer().Debugf("user locale is %s", userLocale)
	return ForLocale(language.Make(userLocale))
}
