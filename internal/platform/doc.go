// Package platform models the optional, per-module platform configuration
// (the "android" extension of a module in the host build).
//
// A module either carries a Config or it does not. What a Config can do is
// discovered through small sub-capability interfaces rather than one wide
// interface, because plugins of different generations expose different
// subsets of settings:
//
//   - ToolchainVersionSetter: the toolchain (NDK) version can be forced.
//   - NamespaceAccessor: the packaging namespace can be read and written.
//
// Callers type-assert for the operation they need and skip it when the
// assertion fails. An unsupported operation is never an error.
package platform
