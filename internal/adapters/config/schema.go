package config

// releaseFile represents the structure of the release.yaml configuration file.
type releaseFile struct {
	Version      string          `yaml:"version"`
	Bintray      bintrayDTO      `yaml:"bintray"`
	Gradle       gradleDTO       `yaml:"gradle"`
	Bom          string          `yaml:"bom"`
	Gate         gateDTO         `yaml:"gate"`
	Storage      storageDTO      `yaml:"storage"`
	Repositories []repositoryDTO `yaml:"repositories"`
}

type bintrayDTO struct {
	Org              string `yaml:"org"`
	JarRepository    string `yaml:"jar_repository"`
	DebianRepository string `yaml:"debian_repository"`
	PublishWaitSecs  *int   `yaml:"publish_wait_secs"`
}

type gradleDTO struct {
	CachePath      string `yaml:"cache_path"`
	RunUnitTests   *bool  `yaml:"run_unit_tests"`
	MaxLocalBuilds *int   `yaml:"max_local_builds"`
}

type gateDTO struct {
	BaseURL string `yaml:"base_url"`
}

type storageDTO struct {
	Endpoint     string `yaml:"endpoint"`
	UseSSL       *bool  `yaml:"use_ssl"`
	AccessKeyEnv string `yaml:"access_key_env"`
	SecretKeyEnv string `yaml:"secret_key_env"`
}

type repositoryDTO struct {
	Name   string `yaml:"name"`
	GitDir string `yaml:"git_dir"`
}
