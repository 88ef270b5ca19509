package parserconfig

import (
	"bytes"
	"slices"
	"strings"

	"gopkg.in/ini.v1"
)

// valueQuote wraps single-line values the parser would otherwise trim or
// unquote. The parser takes everything up to the last backtick on the line.
const valueQuote = "`"

// encode writes file in the layout parse reads back unchanged: DEFAULT first
// under its own header, then every section in order. Continuation lines of a
// multi-line value are indented with a tab.
func encode(buf *bytes.Buffer, file *ini.File) error {
	sections := slices.DeleteFunc(file.SectionStrings(), func(name string) bool {
		return name == DefaultSection
	})
	if defaults, err := file.GetSection(DefaultSection); err == nil && len(defaults.Keys()) > 0 {
		sections = append([]string{DefaultSection}, sections...)
	}

	for i, name := range sections {
		if err := checkSectionName(name); err != nil {
			return err
		}
		if i > 0 {
			buf.WriteString("\n")
		}

		sec := file.Section(name)
		writeComment(buf, sec.Comment)
		buf.WriteString("[" + name + "]\n")

		for _, key := range sec.Keys() {
			if err := checkOptionName(key.Name()); err != nil {
				return err
			}
			value, err := encodeValue(name, key.Name(), key.Value())
			if err != nil {
				return err
			}

			writeComment(buf, key.Comment)
			buf.WriteString(key.Name() + " = " + value + "\n")
		}
	}

	return nil
}

func writeComment(buf *bytes.Buffer, comment string) {
	for _, line := range strings.Split(comment, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line[0] != '#' && line[0] != ';':
			line = "; " + line
		}
		buf.WriteString(line + "\n")
	}
}

// encodeValue renders value as it follows "option = ". It fails with
// CodeInvalidInput for values that would not read back unchanged.
func encodeValue(section, option, value string) (string, error) {
	lines := strings.Split(value, "\n")
	if len(lines) == 1 {
		if needsQuote(value) {
			return valueQuote + value + valueQuote, nil
		}
		return value, nil
	}

	if needsQuote(lines[0]) {
		return "", errInvalidValue(section, option, "first line of a multi-line value cannot be quoted")
	}
	for _, line := range lines[1:] {
		if line != strings.TrimLeft(line, continuationIndent) {
			return "", errInvalidValue(section, option, "continuation lines cannot start with whitespace")
		}
	}

	return strings.Join(lines, "\n\t"), nil
}

// needsQuote reports whether the parser would alter line if written bare:
// surrounding whitespace is trimmed and a leading backtick or triple quote
// opens a quoted value.
func needsQuote(line string) bool {
	if line == "" {
		return false
	}
	return strings.TrimSpace(line) != line ||
		strings.HasPrefix(line, valueQuote) ||
		strings.HasPrefix(line, `"""`)
}

func checkSectionName(name string) error {
	if name == "" {
		return errInvalidName("section", name, "empty")
	}
	if strings.ContainsAny(name, "\r\n") {
		return errInvalidName("section", name, "line breaks are not allowed")
	}
	return nil
}

// checkOptionName accepts names that read back as the same plain option
// name. The parser gives a leading quote or a lone "-" special meaning.
func checkOptionName(name string) error {
	switch {
	case name == "":
		return errInvalidName("option", name, "empty")
	case name == "-":
		return errInvalidName("option", name, `"-" is reserved`)
	case strings.TrimSpace(name) != name:
		return errInvalidName("option", name, "surrounding whitespace is not allowed")
	case strings.ContainsAny(name, "=:\r\n"):
		return errInvalidName("option", name, "delimiters and line breaks are not allowed")
	case strings.ContainsAny(name[:1], "[#;`\""):
		return errInvalidName("option", name, "invalid leading character")
	}
	return nil
}
