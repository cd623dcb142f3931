package version

// Version is the release version, set via ldflags.
var Version = "dev"

// Revision is the VCS revision, set via ldflags.
var Revision = "dev"
