// Package semver implements the fixed-arity dotted versions used by
// extension manifests. These are not full semantic versions: there is no
// prerelease or build metadata, and a fourth "increment" component is
// allowed (1.2.3.4). Bumping a component resets every component below it
// to zero.
package semver
