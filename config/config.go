package config

type AppConfig struct {
	ListConfig *ListConfig
}

func New() *AppConfig {
	return &AppConfig{
		ListConfig: NewListConfig(),
	}
}
