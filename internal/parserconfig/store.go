package parserconfig

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"

	"gopkg.in/ini.v1"
)

// newFileMode applies when Load or Save has to create the file. Files that
// already exist keep their permissions.
const newFileMode fs.FileMode = 0o600

// Store binds an INI file on disk to its parsed, in-memory form.
type Store struct {
	path   string
	create bool
	logger *slog.Logger

	file   *ini.File
	loaded bool
}

// New resolves path to an absolute path and loads it.
//
// It fails with CodeIsDirectory when path is a directory, and with
// CodeNotFound when path does not exist unless WithCreate(true) is given.
func New(path string, opts ...Option) (*Store, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errIO("resolve", path, err)
	}

	s := &Store{
		path:   abs,
		logger: slog.Default(),
		file:   newFile(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// NewFromValue is New for loosely typed sources such as decoded settings.
// v must be a string, a type whose underlying kind is string, or an *os.File;
// anything else fails with CodeTypeMismatch naming the received type.
func NewFromValue(v any, opts ...Option) (*Store, error) {
	path, err := pathFromValue(v)
	if err != nil {
		return nil, err
	}
	return New(path, opts...)
}

func pathFromValue(v any) (string, error) {
	switch p := v.(type) {
	case string:
		return p, nil
	case *os.File:
		if p != nil {
			return p.Name(), nil
		}
	default:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
			return rv.String(), nil
		}
	}
	return "", errTypeMismatch(v)
}

// Path returns the absolute path of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Loaded reports whether the store holds the file's content, i.e. it was
// loaded and not unloaded since.
func (s *Store) Loaded() bool {
	return s.loaded
}

// File exposes the parsed form for direct manipulation. The returned value is
// replaced by Load and Unload.
func (s *Store) File() *ini.File {
	return s.file
}

// Load re-reads the file and replaces the in-memory content with it. Nothing
// is merged with the previous content. On failure the previous content is
// kept.
func (s *Store) Load() error {
	info, err := os.Stat(s.path)
	switch {
	case err == nil && info.IsDir():
		return errIsDirectory(s.path)
	case errors.Is(err, fs.ErrNotExist):
		if !s.create {
			return errNotFound(s.path, err)
		}
		if err := s.touch(); err != nil {
			return err
		}
	case err != nil:
		return errIO("stat", s.path, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errNotFound(s.path, err)
		}
		return errIO("read", s.path, err)
	}

	file, err := parse(s.path, data)
	if err != nil {
		return err
	}

	s.file = file
	s.loaded = true
	s.logger.Info("configuration file loaded", "path", s.path)

	return nil
}

func (s *Store) touch() error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, newFileMode)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errNotFound(s.path, err)
		}
		return errIO("create", s.path, err)
	}
	if err := f.Close(); err != nil {
		return errIO("create", s.path, err)
	}

	s.logger.Debug("configuration file created", "path", s.path)

	return nil
}

// Unload discards the in-memory content and replaces it with an empty one.
// The file is left untouched.
func (s *Store) Unload() {
	s.file = newFile()
	s.loaded = false
	s.logger.Info("configuration store unloaded", "path", s.path)
}

// Save overwrites the file with the in-memory content. Content that could not
// be read back unchanged fails with CodeInvalidInput before the file is
// touched. A failed write may leave the file partially written.
func (s *Store) Save() error {
	var buf bytes.Buffer
	if err := encode(&buf, s.file); err != nil {
		return err
	}

	if err := os.WriteFile(s.path, buf.Bytes(), newFileMode); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errNotFound(s.path, err)
		}
		if info, statErr := os.Stat(s.path); statErr == nil && info.IsDir() {
			return errIsDirectory(s.path)
		}
		return errIO("write", s.path, err)
	}

	s.logger.Info("configuration file saved", "path", s.path)

	return nil
}

// Sections returns the section names in file order, without DefaultSection.
func (s *Store) Sections() []string {
	names := s.file.SectionStrings()
	return slices.DeleteFunc(names, func(name string) bool {
		return name == DefaultSection
	})
}

// HasSection reports whether section exists. DefaultSection is never reported.
func (s *Store) HasSection(section string) bool {
	if section == "" || section == DefaultSection {
		return false
	}
	_, err := s.file.GetSection(section)
	return err == nil
}

// AddSection appends an empty section.
func (s *Store) AddSection(section string) error {
	if err := checkSectionName(section); err != nil {
		return err
	}
	if section == DefaultSection || s.HasSection(section) {
		return errDuplicateSection(section)
	}
	if _, err := s.file.NewSection(section); err != nil {
		return errInvalidName("section", section, err.Error())
	}
	return nil
}

// RemoveSection deletes section and reports whether it existed.
// DefaultSection cannot be removed.
func (s *Store) RemoveSection(section string) bool {
	if !s.HasSection(section) {
		return false
	}
	s.file.DeleteSection(section)
	return true
}

// section resolves a section by name. DefaultSection always resolves; the
// parser's empty-name alias for it does not.
func (s *Store) section(name string) (*ini.Section, error) {
	if name == "" {
		return nil, errSectionNotFound(name)
	}
	sec, err := s.file.GetSection(name)
	if err != nil {
		return nil, errSectionNotFound(name)
	}
	return sec, nil
}

func (s *Store) defaults() *ini.Section {
	return s.file.Section(DefaultSection)
}

// Options returns the option names of section followed by the DefaultSection
// options it does not override.
func (s *Store) Options(section string) ([]string, error) {
	sec, err := s.section(section)
	if err != nil {
		return nil, err
	}

	names := sec.KeyStrings()
	if section == DefaultSection {
		return names, nil
	}
	for _, name := range s.defaults().KeyStrings() {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names, nil
}

// HasOption reports whether option resolves in section, directly or through
// DefaultSection. A missing section reports false.
func (s *Store) HasOption(section, option string) bool {
	sec, err := s.section(section)
	if err != nil {
		return false
	}
	_, ok := s.lookup(sec, option)
	return ok
}

// Get returns the value of option in section, falling back to DefaultSection.
func (s *Store) Get(section, option string) (string, error) {
	sec, err := s.section(section)
	if err != nil {
		return "", err
	}

	key, ok := s.lookup(sec, option)
	if !ok {
		return "", errOptionNotFound(section, option)
	}
	return key.String(), nil
}

func (s *Store) lookup(sec *ini.Section, option string) (*ini.Key, bool) {
	if key, ok := ownKey(sec, option); ok {
		return key, true
	}
	if sec.Name() == DefaultSection {
		return nil, false
	}
	return ownKey(s.defaults(), option)
}

// Set assigns value to option in an existing section. Setting an option in
// DefaultSection is always allowed.
//
// Names and values that Save could not write so that they read back unchanged
// fail with CodeInvalidInput. This covers option names holding a delimiter or
// a line break, and multi-line values whose first line would need quoting or
// whose continuation lines start with whitespace.
func (s *Store) Set(section, option, value string) error {
	sec, err := s.section(section)
	if err != nil {
		return err
	}

	name := optionKey(option)
	if err := checkOptionName(name); err != nil {
		return err
	}
	if _, err := encodeValue(section, name, value); err != nil {
		return err
	}

	if key, ok := ownKey(sec, name); ok {
		key.SetValue(value)
		return nil
	}
	if _, err := sec.NewKey(name, value); err != nil {
		return errInvalidName("option", name, err.Error())
	}
	return nil
}

// RemoveOption deletes option from section and reports whether it existed.
// Options inherited from DefaultSection are not affected.
func (s *Store) RemoveOption(section, option string) (bool, error) {
	sec, err := s.section(section)
	if err != nil {
		return false, err
	}

	if _, ok := ownKey(sec, option); !ok {
		return false, nil
	}
	sec.DeleteKey(optionKey(option))
	return true, nil
}

// Credentials returns the values of options in section, in the requested
// order. Names requested twice appear once. Any missing option fails the
// whole call with CodeOptionNotFound.
func (s *Store) Credentials(section string, options ...string) (Credentials, error) {
	sec, err := s.section(section)
	if err != nil {
		return nil, err
	}

	creds := make(Credentials, 0, len(options))
	for _, option := range options {
		if _, ok := creds.Get(option); ok {
			continue
		}

		key, ok := s.lookup(sec, option)
		if !ok {
			return nil, errOptionNotFound(section, option)
		}
		creds = append(creds, Credential{Option: option, Value: key.String()})
	}

	return creds, nil
}
