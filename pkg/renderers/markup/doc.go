// Package markup renders a text form snapshot to HTML with pongo2. Each
// binding becomes an input carrying its value, visible errors and disabled
// flag; the form-level error appears only after a failed submission.
package markup
