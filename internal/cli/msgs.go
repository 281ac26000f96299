package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Concatenate build files into a single output"
	MsgRootLong       = "concat reads a source directory, merges the files matching a set of patterns\ninto one output file and writes the result to a destination directory."
	MsgBuildShort     = "Run a build with the concat step"
	MsgBuildLong      = "Build reads every file below the source directory, concatenates the files\nmatching the configured patterns (plus any found in the search paths) into\nthe output file and writes the result to the destination directory.\n\nFlags override the config file and CONCAT_* environment variables."
	MsgBuildExample   = "  concat build -o main.css -f 'css/reset.css' -f 'css/**/*.css'\n  concat build --config site.yaml --clean\n  concat build -o vendor.js -f '*.js' --search-path node_modules/lib --keep"
	MsgGenConfigShort = "Print a sample configuration file"
	MsgVersionShort   = "Print version information"

	// Status messages
	MsgBuilt        = "Built %s"
	MsgBuildSummary = "%d files written to %s"
	MsgConfigUsed   = "config: %s"
	MsgVersion      = "concat version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot        = "Project root (default $CONCAT_ROOT or the current directory)"
	MsgFlagConfig      = "Config file (default concat.toml, .concat.toml, concat.yaml or concat.yml in the root)"
	MsgFlagOutput      = "Path of the concatenated file, relative to the destination"
	MsgFlagFiles       = "Pattern of files to concatenate, repeatable, in order"
	MsgFlagSearchPath  = "Directory searched for files matching the patterns, repeatable"
	MsgFlagKeep        = "Keep the concatenated files in the build"
	MsgFlagForceOutput = "Overwrite the output file if it already exists"
	MsgFlagSeparator   = "String appended after each file"
	MsgFlagNoNewline   = "Do not append a newline after each file"
	MsgFlagSource      = "Source directory, relative to the root"
	MsgFlagDestination = "Destination directory, relative to the root"
	MsgFlagClean       = "Remove the destination directory before writing"
	MsgFlagFormat      = "Config format (toml or yaml)"
	MsgFlagDefaults    = "Print the built-in defaults instead of a sample"
)
