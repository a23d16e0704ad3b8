package config

// Server definition api_server YAML structure
type Server struct {
	Port       string   `mapstructure:"port"`
	ClientURLs []string `mapstructure:"client_urls"`

	Storage StorageConfig  `mapstructure:"storage"`
	Upload  UploadConfig   `mapstructure:"upload"`
	PG      DatabaseConfig `mapstructure:"pg"`
	MinIO   MinIOConfig    `mapstructure:"minio"`
}

// StorageConfig where binary assets live, "local" or "minio"
type StorageConfig struct {
	Mode      string `mapstructure:"mode"`
	LocalDir  string `mapstructure:"local_dir"`
	PublicURL string `mapstructure:"public_url"`
}

// UploadConfig upload limits and temp dir
type UploadConfig struct {
	TempDir          string `mapstructure:"temp_dir"`
	MaxVideoBytes    int    `mapstructure:"max_video_bytes"`
	MaxImageBytes    int    `mapstructure:"max_image_bytes"`
	PlaceholderThumb string `mapstructure:"placeholder_thumb"`
}

// DatabaseConfig definition db setting
type DatabaseConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	Database      string `mapstructure:"database"`
	RetryInterval int    `mapstructure:"retry_interval"`
	RetryCount    int    `mapstructure:"retry_count"`
}

// MinIOConfig definition minio setting
type MinIOConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	BucketName    string `mapstructure:"bucket_name"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	RetryInterval int    `mapstructure:"retry_interval"`
	RetryCount    int    `mapstructure:"retry_count"`
}
