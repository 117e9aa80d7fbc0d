// Package qmk builds and writes QMK Configurator keymap documents.
//
// The output format is the JSON a QMK Configurator export produces: fixed
// version/notes/documentation fields, derived keyboard and keymap names, one
// layout identifier, and a list of layers. This package owns the document
// struct, the transparent default layer, and file export; deciding which
// layout identifier goes into the document is the classifier's job.
package qmk
