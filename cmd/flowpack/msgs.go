package flowpack

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort  = "Package Flow Launcher plugins for deployment"
	MsgBuildShort = "Build the plugin into the host plugin directory"
	MsgCleanShort = "Strip installer clutter from a vendored lib directory"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	// Error formats
	MsgErrBuild = "build failed: %w"
)

// Long messages (multi-line help text)
const (
	MsgRootLong = `flowpack packages a Flow Launcher Python plugin's source tree into a clean,
versioned directory under the host application's plugin folder. Files matched
by the built-in exclusions or the plugin's ignore file are left out, and
third-party dependencies from requirements.txt are vendored into a lib
subdirectory.`

	MsgBuildLong = `Build reads plugin.json for the plugin's Name and Version, copies the
filtered source tree into {plugins-dir}/{Name}-{Version}, installs
requirements.txt dependencies into its lib subdirectory, and removes
installer clutter from the result.

The destination directory is deleted and recreated on every run; builds are
never incremental. Exclusions come from a built-in default list plus the
plugin's own ignore file (.gitignore by default), using gitignore-style
patterns: "*", "**", "?", leading "/" for root anchoring, trailing "/" as a
directory hint, and "!" for negation.`

	MsgCleanLong = `Clean removes pip metadata, bytecode caches, coverage output, and test
files from a vendored dependency directory. It is the same best-effort pass
that build runs after installing dependencies, exposed for re-running against
an existing build.`
)
