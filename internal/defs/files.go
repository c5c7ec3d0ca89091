package defs

// Files written into a scaffolded plugin.
const (
	// ManifestJSON is the LiteLoaderQQNT plugin manifest.
	ManifestJSON = "manifest.json"

	// PackageJSON is written when the npm toggle is on.
	PackageJSON = "package.json"

	// MainJS runs in the Electron main process.
	MainJS = "main.js"

	// PreloadJS runs in the preload context and receives the slug placeholder.
	PreloadJS = "preload.js"

	// RendererJS runs in the renderer process.
	RendererJS = "renderer.js"
)

// SourceDir is the subdirectory holding the inject scripts.
const SourceDir = "src"

// ConfigYAML is the scaffolder configuration file name.
const ConfigYAML = "config.yaml"

// AppName is the binary and configuration directory name.
const AppName = "create-llqqnt-plugin"
