package parserconfig

// Credential is one option/value pair returned by Store.Credentials.
type Credential struct {
	Option string
	Value  string
}

// Credentials is an ordered option to value mapping.
type Credentials []Credential

// Get returns the value recorded for option.
func (c Credentials) Get(option string) (string, bool) {
	for _, cred := range c {
		if cred.Option == option {
			return cred.Value, true
		}
	}
	return "", false
}

// Options returns the option names in order.
func (c Credentials) Options() []string {
	out := make([]string, len(c))
	for i, cred := range c {
		out[i] = cred.Option
	}
	return out
}

// Values returns the values in order, ready for positional unpacking.
func (c Credentials) Values() []string {
	out := make([]string, len(c))
	for i, cred := range c {
		out[i] = cred.Value
	}
	return out
}

// Map returns the pairs as a map. Order is lost.
func (c Credentials) Map() map[string]string {
	out := make(map[string]string, len(c))
	for _, cred := range c {
		out[cred.Option] = cred.Value
	}
	return out
}
