package template

// Template is a parsed template document
type Template struct {
	Info    *Information `toml:"info,omitempty"`
	Options *Options     `toml:"options,omitempty"`
	Files   []File       `toml:"files"`
}

// Information describes a template. It is informational only.
type Information struct {
	Name        string `toml:"name,omitempty"`
	Author      string `toml:"author,omitempty"`
	Description string `toml:"description,omitempty"`
}

// IsEmpty reports whether no field is set
func (i *Information) IsEmpty() bool {
	return i == nil || (i.Name == "" && i.Author == "" && i.Description == "")
}

// File is one path/content pair of a template
type File struct {
	Path    string `toml:"path"`
	Content string `toml:"content,multiline"`
}

// Options configures how a template is materialized
type Options struct {
	// Git runs git init in ProjectRoot once every file is written
	Git bool `toml:"git"`
	// UseLiquid controls the Liquid pass; nil means enabled
	UseLiquid *bool `toml:"use_liquid,omitempty"`
	// JSONData is the document dotted placeholder names are queried against
	JSONData any `toml:"json_data,omitempty"`
	// ProjectRoot is substituted like any file field once extraction ends
	ProjectRoot string `toml:"project_root"`
}

// LiquidEnabled reports whether the Liquid pass applies
func (o *Options) LiquidEnabled() bool {
	return o == nil || o.UseLiquid == nil || *o.UseLiquid
}

// Clone returns a copy of o, or default options when o is nil
func (o *Options) Clone() *Options {
	if o == nil {
		return &Options{}
	}
	c := *o
	if o.UseLiquid != nil {
		v := *o.UseLiquid
		c.UseLiquid = &v
	}
	return &c
}

// Bool returns a pointer to v, for setting UseLiquid
func Bool(v bool) *bool {
	return &v
}
