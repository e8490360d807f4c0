package domain

import "time"

// BuildOptions is the read-only option set for a dispatch run. It is
// validated once at dispatcher construction; a missing required value is a
// configuration error, not a runtime error.
type BuildOptions struct {
	// MaxLocalBuilds bounds the number of build subprocesses running in
	// parallel. Must be at least 1.
	MaxLocalBuilds int

	// RunUnitTests controls whether gradle runs unit tests during the build.
	RunUnitTests bool

	// GradleCachePath, when set, is passed as the gradle user home.
	GradleCachePath string

	// ChromeBin is the path to a Chrome binary, resolved from CHROME_BIN by
	// the config loader. The deck UI build skips its tests without it.
	ChromeBin string

	// BintrayOrg is the bintray organization packages are published under.
	BintrayOrg string

	// BintrayJarRepository is the bintray repository for jar artifacts.
	BintrayJarRepository string

	// BintrayDebianRepository is the bintray repository for debian packages.
	BintrayDebianRepository string

	// PublishWait is how long gradle waits for bintray to confirm a publish.
	PublishWait time.Duration
}

// Credentials holds the bintray API credentials. The config loader resolves
// them from the BINTRAY_USER and BINTRAY_KEY environment variables; nothing
// else in the codebase reads the environment for them.
type Credentials struct {
	User string
	Key  string
}
