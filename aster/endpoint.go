package aster

// Param declares a single request parameter of an API operation.
type Param struct {
	Name        string
	Type        string
	Description string
	Required    bool
	// Enum restricts string parameters to a fixed value set.
	Enum []string
	// Items holds the element type when Type is "array".
	Items string
	// JSONEncoded marks composite parameters serialized as compact JSON text
	// before they are placed into the query string or form body.
	JSONEncoded bool
}

// Definition describes one upstream REST operation exposed as a tool.
// The order of Params is significant: it fixes the canonical parameter
// layout used both for signing and for the outgoing request.
type Definition struct {
	Name        string
	Description string
	Method      string
	Path        string
	// Signed marks privileged operations that require credentials, a
	// timestamp and an HMAC signature.
	Signed bool
	Params []Param
}

// Parameter is one key/value pair of an outgoing request, already
// stringified. Slices of Parameter preserve insertion order.
type Parameter struct {
	Key   string
	Value string
}

// Param returns the declared parameter with the given name, or nil.
func (d *Definition) Param(name string) *Param {
	for i := range d.Params {
		if d.Params[i].Name == name {
			return &d.Params[i]
		}
	}
	return nil
}

// RequiredParams returns the names of all required parameters in declaration order.
func (d *Definition) RequiredParams() []string {
	var result []string
	for i := range d.Params {
		if d.Params[i].Required {
			result = append(result, d.Params[i].Name)
		}
	}
	return result
}
