package parserconfig

import (
	"slices"
	"strings"

	"gopkg.in/ini.v1"
)

// DefaultSection holds options placed before the first header. Its options
// are visible from every section.
const DefaultSection = "DEFAULT"

// continuationIndent is stripped from the start of every continuation line.
const continuationIndent = " \t\f"

func loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		InsensitiveKeys:            true,
		IgnoreInlineComment:        true,
		IgnoreContinuation:         true,
		PreserveSurroundedQuote:    true,
		AllowPythonMultilineValues: true,
	}
}

func newFile() *ini.File {
	return ini.Empty(loadOptions())
}

// parse decodes data into a fresh file. path is only used in error messages.
func parse(path string, data []byte) (*ini.File, error) {
	file, err := ini.LoadSources(loadOptions(), data)
	if err != nil {
		return nil, errInvalidFormat(path, err)
	}

	if err := checkUnique(path, data, file); err != nil {
		return nil, err
	}

	for _, sec := range file.Sections() {
		for _, key := range sec.Keys() {
			if strings.Contains(key.Value(), "\n") {
				key.SetValue(joinLines(key.Value()))
			}
		}
	}

	return file, nil
}

// checkUnique rejects repeated section headers, DEFAULT included, and options
// defined twice in a section. The strict parse in merged silently merges both,
// so a permissive parse that keeps every occurrence is inspected against it.
func checkUnique(path string, data []byte, merged *ini.File) error {
	opts := loadOptions()
	opts.AllowNonUniqueSections = true
	opts.AllowShadows = true
	opts.AllowDuplicateShadowValues = true

	raw, err := ini.LoadSources(opts, data)
	if err != nil {
		return errInvalidFormat(path, err)
	}

	seen := make(map[string]struct{})
	for i, sec := range raw.Sections() {
		// The first section is the implicit DEFAULT. It only counts as a
		// definition when options precede the first header.
		if i == 0 && len(sec.Keys()) == 0 {
			continue
		}

		name := sec.Name()
		if _, ok := seen[name]; ok {
			return errDuplicateSectionInFile(name, path)
		}
		seen[name] = struct{}{}

		for _, key := range sec.Keys() {
			if repeated(key, merged.Section(name).Key(key.Name())) {
				return errDuplicateOption(name, key.Name(), path)
			}
		}
	}

	return nil
}

// repeated reports whether key, taken from the permissive parse, occurs more
// than once. Shadows are only listed when non-empty and the strict parse keeps
// the last occurrence, so both are consulted. An option repeated with nothing
// but empty values is not detected.
func repeated(key, last *ini.Key) bool {
	values := key.ValueWithShadows()
	switch {
	case len(values) > 1:
		return true
	case len(values) == 1 && values[0] != key.Value():
		return true
	}
	return last.Value() != key.Value()
}

// joinLines removes the indentation of the continuation lines of a multi-line
// value.
func joinLines(value string) string {
	lines := strings.Split(value, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.TrimLeft(lines[i], continuationIndent)
	}
	return strings.Join(lines, "\n")
}

func optionKey(option string) string {
	return strings.ToLower(option)
}

// ownKey looks option up in sec only, without the parser's parent-section
// fallback for dotted names.
func ownKey(sec *ini.Section, option string) (*ini.Key, bool) {
	name := optionKey(option)
	if !slices.Contains(sec.KeyStrings(), name) {
		return nil, false
	}
	return sec.Key(name), true
}
