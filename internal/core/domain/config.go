package domain

// Config is the fully resolved release configuration: the parsed YAML file
// plus the credential values resolved from the environment by the loader.
type Config struct {
	Build        BuildOptions
	Credentials  Credentials
	BomPath      string
	GateBaseURL  string
	Storage      StorageConfig
	Repositories []Repository
}

// StorageConfig describes the object store endpoint used by trigger
// operations. Credentials are resolved from the environment by the config
// loader, like the bintray credentials.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// Repository looks up a configured repository by name.
func (c *Config) Repository(name string) (Repository, bool) {
	for _, r := range c.Repositories {
		if r.Name == name {
			return r, true
		}
	}
	return Repository{}, false
}
