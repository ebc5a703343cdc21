// Package builtin supplies the plugins, contents and setters pagekit boots the
// editor with. Modules that belong to other packages in a browser editor
// (block pane, schema viewer, data source pane, code editor, code generator)
// are stand-ins here: each places its widget in the layout so the result of a
// bootstrap run can be inspected from the command line.
package builtin
