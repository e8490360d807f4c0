package domain

// Repository identifies a source repository that can be built into one or
// more Debian packages. It is immutable for the duration of a build
// invocation; the dispatcher only reads it.
type Repository struct {
	// Name is the short service name, e.g. "orca".
	Name string

	// GitDir is the local checkout path of the repository.
	GitDir string
}
