package config

type App struct {
	Port          string `env:"APP_PORT" default:"8080"`
	DataDir       string `env:"DATA_DIR" default:"data"`
	JWTSecret     string `env:"JWT_SECRET" default:"local_dev_secret"`
	AdminUsername string `env:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" default:"admin123"`
	Env           string `env:"APP_ENV" default:"dev"`
}
