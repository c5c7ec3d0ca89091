// @MX:NOTE: [AUTO] Plugin type and platform enums shared by the wizard, manifest builder and config.
package models

// PluginType is the LiteLoaderQQNT plugin category written to manifest.json.
type PluginType string

const (
	// PluginTypeExtension is a regular plugin.
	PluginTypeExtension PluginType = "extension"

	// PluginTypeTheme restyles the host UI.
	PluginTypeTheme PluginType = "theme"

	// PluginTypeFramework provides APIs to other plugins.
	PluginTypeFramework PluginType = "framework"
)

// ValidPluginTypes returns all plugin types in prompt order.
func ValidPluginTypes() []PluginType {
	return []PluginType{PluginTypeExtension, PluginTypeTheme, PluginTypeFramework}
}

// IsValid checks if the plugin type is a known value.
func (t PluginType) IsValid() bool {
	switch t {
	case PluginTypeExtension, PluginTypeTheme, PluginTypeFramework:
		return true
	}
	return false
}

// Platform is an operating system identifier as reported by Node's process.platform.
type Platform string

const (
	PlatformWindows Platform = "win32"
	PlatformLinux   Platform = "linux"
	PlatformMacOS   Platform = "darwin"
)

// ValidPlatforms returns all supported platforms in prompt order.
func ValidPlatforms() []Platform {
	return []Platform{PlatformWindows, PlatformLinux, PlatformMacOS}
}

// IsValid checks if the platform is a known value.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformWindows, PlatformLinux, PlatformMacOS:
		return true
	}
	return false
}
