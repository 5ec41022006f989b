// Package manifest provides types and utilities for loading, mutating, and
// saving extension manifest files. A manifest names the extension and
// carries its dotted version; the packager derives the artifact name from
// it and the version bumper rewrites it in place.
//
// # Manifest Format
//
// Manifests are flat JSON records (package.json style), with YAML accepted
// for projects that prefer it:
//
//	{
//	    "name": "pixel-tools",
//	    "displayName": "Pixel Tools",
//	    "version": "1.2.3"
//	}
//
// # Usage
//
// Load, bump, and save a manifest:
//
//	loader := manifest.NewLoader()
//	m, err := loader.Load("package.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m.SetVersion("1.3.0")
//	if err := loader.Save("package.json", m); err != nil {
//	    log.Fatal(err)
//	}
//
// Fields the loader does not interpret survive the round-trip; output key
// order is stable (sorted) in both formats.
package manifest
