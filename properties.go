package tmx

import "strconv"

// Property is a single custom property attached to a map element.
type Property struct {
	Name  string
	Type  string
	Value string
}

// Properties is an ordered list of custom properties. Lookups scan from the
// end so that a later property with the same name overrides an earlier one.
type Properties []Property

// Get returns the value of the named property and whether it was present.
func (p Properties) Get(name string) (string, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Name == name {
			return p[i].Value, true
		}
	}
	return "", false
}

// GetString returns the named property value, or "" if absent.
func (p Properties) GetString(name string) string {
	v, _ := p.Get(name)
	return v
}

// GetInt returns the named property as an int, or 0 if absent or unparsable.
func (p Properties) GetInt(name string) int {
	v, ok := p.Get(name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// GetFloat returns the named property as a float64, or 0 if absent or
// unparsable.
func (p Properties) GetFloat(name string) float64 {
	v, ok := p.Get(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// GetBool returns the named property as a bool, or false if absent or
// unparsable. Tiled writes "true"/"false" but "1"/"0" also parse.
func (p Properties) GetBool(name string) bool {
	v, ok := p.Get(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}
