// Package templates embeds the preview template, its stylesheet and the
// resume JSON schema so binaries and tests do not depend on the working
// directory.
package templates

import _ "embed"

//go:embed preview.html
var PreviewHTML string

//go:embed style.css
var StyleCSS string

//go:embed resume.schema.json
var ResumeSchema []byte
