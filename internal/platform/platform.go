package platform

import (
	"fmt"
	"strings"
)

// Kinds understood by New.
const (
	KindAndroid = "android"
	KindLegacy  = "legacy"
	KindMinimal = "minimal"
)

// Config is the platform-configuration capability of a module. Kind is the
// only operation every implementation is guaranteed to support.
type Config interface {
	Kind() string
}

// ToolchainVersionSetter is implemented by configs whose toolchain version
// can be forced.
type ToolchainVersionSetter interface {
	SetToolchainVersion(version string)
}

// ToolchainVersionReader is implemented by configs that expose their current
// toolchain version.
type ToolchainVersionReader interface {
	ToolchainVersion() string
}

// NamespaceAccessor is implemented by configs that expose a readable and
// writable namespace. The boolean result of Namespace reports presence.
type NamespaceAccessor interface {
	Namespace() (string, bool)
	SetNamespace(namespace string)
}

// Settings carries the initial values a config is created with. Fields a
// given kind cannot hold are ignored.
type Settings struct {
	ToolchainVersion string
	Namespace        *string
	CompileSDK       int
}

// New builds the config implementation for kind.
func New(kind string, s Settings) (Config, error) {
	switch strings.ToLower(kind) {
	case KindAndroid, "":
		ext := &AndroidExtension{toolchainVersion: s.ToolchainVersion, CompileSDK: s.CompileSDK}
		if s.Namespace != nil {
			ext.SetNamespace(*s.Namespace)
		}
		return ext, nil
	case KindLegacy:
		ext := &LegacyExtension{CompileSDK: s.CompileSDK}
		if s.Namespace != nil {
			ext.SetNamespace(*s.Namespace)
		}
		return ext, nil
	case KindMinimal:
		return &MinimalExtension{}, nil
	default:
		return nil, fmt.Errorf("unknown platform kind %q", kind)
	}
}

// AndroidExtension is a current-generation config supporting every
// optional operation.
type AndroidExtension struct {
	toolchainVersion string
	namespace        *string
	CompileSDK       int
}

func (a *AndroidExtension) Kind() string { return KindAndroid }

func (a *AndroidExtension) ToolchainVersion() string { return a.toolchainVersion }

func (a *AndroidExtension) SetToolchainVersion(version string) { a.toolchainVersion = version }

func (a *AndroidExtension) Namespace() (string, bool) {
	if a.namespace == nil {
		return "", false
	}
	return *a.namespace, true
}

func (a *AndroidExtension) SetNamespace(namespace string) {
	a.namespace = &namespace
}

// LegacyExtension predates the toolchain setting: it exposes a namespace but
// no way to force the toolchain version.
type LegacyExtension struct {
	namespace  *string
	CompileSDK int
}

func (l *LegacyExtension) Kind() string { return KindLegacy }

func (l *LegacyExtension) Namespace() (string, bool) {
	if l.namespace == nil {
		return "", false
	}
	return *l.namespace, true
}

func (l *LegacyExtension) SetNamespace(namespace string) {
	l.namespace = &namespace
}

// MinimalExtension supports none of the optional operations.
type MinimalExtension struct{}

func (MinimalExtension) Kind() string { return KindMinimal }
