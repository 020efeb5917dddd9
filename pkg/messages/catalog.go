package messages

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when no requested language matches.
const DefaultLanguage = "en"

//go:embed catalog.yaml
var embedded []byte

// Catalog holds translated strings keyed by language and dot-separated key.
type Catalog struct {
	translations map[string]map[string]any
	tags         []language.Tag
	matcher      language.Matcher
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return Parse(embedded)
})

// Default returns the catalogue shipped with the package.
func Default() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		// The embedded catalogue is part of the build.
		panic(fmt.Sprintf("messages: invalid embedded catalog: %v", err))
	}
	return c
}

// Parse reads a YAML document whose top-level keys are language codes.
// The default language must be present.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrParseCatalog, err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyCatalog
	}
	if _, ok := raw[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingDefaultLanguage, DefaultLanguage)
	}

	langs := make([]string, 0, len(raw))
	for lang := range raw {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	// The default language goes first so the matcher falls back to it.
	tags := []language.Tag{language.Make(DefaultLanguage)}
	translations := make(map[string]map[string]any, len(raw))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
		}
		translations[tag.String()] = raw[lang]
		if lang != DefaultLanguage {
			tags = append(tags, tag)
		}
	}

	return &Catalog{
		translations: translations,
		tags:         tags,
		matcher:      language.NewMatcher(tags),
	}, nil
}

// Languages returns the languages in the catalogue, default first.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.tags))
	for i, tag := range c.tags {
		out[i] = tag.String()
	}
	return out
}

// Match resolves preferred language strings (BCP 47 tags or an
// Accept-Language value) to the best supported language.
func (c *Catalog) Match(preferred ...string) string {
	return c.matchTag(preferred...).String()
}

func (c *Catalog) matchTag(preferred ...string) language.Tag {
	var wanted []language.Tag
	for _, p := range preferred {
		if p == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		wanted = append(wanted, tags...)
	}
	if len(wanted) == 0 {
		return c.tags[0]
	}

	_, index, _ := c.matcher.Match(wanted...)
	return c.tags[index]
}

// T returns the translation of key for lang, substituting %{name}
// placeholders from args given as name, value pairs. Missing keys fall back to
// the default language and then to the key itself.
func (c *Catalog) T(lang, key string, args ...string) string {
	tag := c.matchTag(lang)

	tmpl, ok := lookup(c.translations[tag.String()], key)
	if !ok {
		tmpl, ok = lookup(c.translations[DefaultLanguage], key)
	}
	if !ok {
		tmpl = key
	}

	return substitute(tmpl, args)
}

// Upper returns s upper-cased with the casing rules of lang.
func (c *Catalog) Upper(lang, s string) string {
	return cases.Upper(c.matchTag(lang)).String(s)
}

// Title returns s title-cased with the casing rules of lang.
func (c *Catalog) Title(lang, s string) string {
	return cases.Title(c.matchTag(lang)).String(s)
}

func lookup(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}

	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		next, ok := val.(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}
