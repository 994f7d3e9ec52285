// Package template parses spark template documents and materializes them
// into a directory tree.
//
// A template is a TOML document:
//
//	[info]
//	name = "rust"
//	description = "A rust binary"
//	author = "me"
//
//	[options]
//	git = true
//	project_root = "{{$PROJECTNAME}}"
//
//	[[files]]
//	path = "{{$PROJECTNAME}}/src/main.rs"
//	content = """
//	fn main() {}
//	"""
//
// Extractor walks the files in order. For each one it resolves the
// placeholders of the content and then the path into the keyword store,
// prompts for the project name the first time it is needed, substitutes,
// optionally renders the Liquid pass and writes the result. Generate does
// the reverse and turns a directory into a template.
package template
