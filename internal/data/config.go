package data

type BridgeConfig struct {
	Port  string `mapstructure:"port"`
	Debug bool   `mapstructure:"debug"`

	// Name erscheint im Status-Endpunkt als Beschreibung der Bridge.
	Name string `mapstructure:"name"`

	// Erlaubte Origins für CORS; leer bedeutet alle Origins.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
