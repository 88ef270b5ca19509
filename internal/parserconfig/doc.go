// Package parserconfig is a thin store over an INI configuration file.
//
// A Store is bound to one file for its whole life. It is loaded on
// construction, can be unloaded (reset to empty) and reloaded, mutated in
// memory, and saved back by overwriting the file:
//
//	store, err := parserconfig.New("settings.ini", parserconfig.WithCreate(true))
//	if err != nil {
//	    return err
//	}
//
//	creds, err := store.Credentials("tutorial", "username", "password")
//	if err != nil {
//	    return err
//	}
//	user, _ := creds.Get("username")
//
//	_ = store.Set("tutorial", "example", "my_example")
//	err = store.Save()
//
// # Grammar
//
// Files follow the conventional INI layout: "[section]" headers, "key = value"
// or "key: value" options, ";" and "#" comment lines and ignored blank lines.
// Section names are case-sensitive, option names are not (they are stored in
// lower case). Options placed before the first header belong to the DEFAULT
// section, which is never listed by Sections and whose options are visible
// from every section. A section header, DEFAULT included, or an option
// repeated within the same section is rejected on load.
//
// Values are returned exactly as written, quotes included. Lines indented
// below an option continue its value; the indentation is dropped and the
// lines are joined with "\n". Save writes continuation lines indented with a
// tab and wraps single-line values in backticks when they would otherwise
// lose surrounding whitespace or a leading backtick or triple quote, so a
// saved file reads back unchanged.
//
// Every failure is a *pkgerror.Error whose Code identifies the failure kind.
// A Store is not safe for concurrent use.
package parserconfig
