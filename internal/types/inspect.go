package types

// PropertyInfo describes one extracted property definition.
type PropertyInfo struct {
	Name string `yaml:"name"`
	// Value is the literal string for simple properties; complex
	// properties (no value attribute) report their subtree rendered
	// inline.
	Value   string `yaml:"value"`
	Complex bool   `yaml:"complex,omitempty"`
}

// DocumentReport is the inspectable summary of a xacro document after
// include resolution and directive extraction.
type DocumentReport struct {
	Source     string         `yaml:"source"`
	RootTag    string         `yaml:"root_tag"`
	Includes   []string       `yaml:"includes,omitempty"`
	Properties []PropertyInfo `yaml:"properties,omitempty"`
	Macros     []string       `yaml:"macros,omitempty"`
}
