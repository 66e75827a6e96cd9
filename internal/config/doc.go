// Package config defines the format-agnostic settings model of the renderer,
// its defaults and validation, and the Loader interface implemented by the
// settings file formats.
//
// Settings are layered: Default() first, then any settings files, then the
// command-line flags applied by the app package. Concrete loaders live in
// separate packages (hcl, yamlcfg).
package config
