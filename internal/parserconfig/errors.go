package parserconfig

import (
	"fmt"

	"github.com/shandysiswandi/parserconfig/internal/pkg/pkgerror"
)

func errTypeMismatch(v any) error {
	msg := fmt.Sprintf("expected a filesystem path but received a %q", fmt.Sprintf("%T", v))
	return pkgerror.NewValidation(nil, msg, pkgerror.CodeTypeMismatch)
}

func errIsDirectory(path string) error {
	msg := fmt.Sprintf("expected a file but %s is a directory", path)
	return pkgerror.NewValidation(nil, msg, pkgerror.CodeIsDirectory)
}

func errNotFound(path string, cause error) error {
	msg := fmt.Sprintf("%s not found on the filesystem", path)
	return pkgerror.NewFilesystem(cause, msg, pkgerror.CodeNotFound)
}

func errIO(op, path string, cause error) error {
	return pkgerror.NewInternal(cause, fmt.Sprintf("failed to %s %s", op, path))
}

func errInvalidFormat(path string, cause error) error {
	return pkgerror.NewParse(cause, fmt.Sprintf("failed to parse %s", path), pkgerror.CodeInvalidFormat)
}

func errDuplicateSectionInFile(section, path string) error {
	msg := fmt.Sprintf("section %q already exists in %s", section, path)
	return pkgerror.NewParse(nil, msg, pkgerror.CodeDuplicateSection)
}

func errDuplicateOption(section, option, path string) error {
	msg := fmt.Sprintf("option %q in section %q already exists in %s", option, section, path)
	return pkgerror.NewParse(nil, msg, pkgerror.CodeDuplicateOption)
}

func errDuplicateSection(section string) error {
	return pkgerror.NewValidation(nil, fmt.Sprintf("section %q already exists", section), pkgerror.CodeDuplicateSection)
}

func errInvalidName(kind, name, reason string) error {
	msg := fmt.Sprintf("invalid %s name %q: %s", kind, name, reason)
	return pkgerror.NewValidation(nil, msg, pkgerror.CodeInvalidInput)
}

func errInvalidValue(section, option, reason string) error {
	msg := fmt.Sprintf("value of option %q in section %q cannot be stored: %s", option, section, reason)
	return pkgerror.NewValidation(nil, msg, pkgerror.CodeInvalidInput)
}

func errSectionNotFound(section string) error {
	return pkgerror.NewLookup(nil, fmt.Sprintf("no section: %q", section), pkgerror.CodeSectionNotFound)
}

func errOptionNotFound(section, option string) error {
	msg := fmt.Sprintf("no option %q in section: %q", option, section)
	return pkgerror.NewLookup(nil, msg, pkgerror.CodeOptionNotFound)
}
