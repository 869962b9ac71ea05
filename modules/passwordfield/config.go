package passwordfield

// Config describes the bound field and where the service is mounted.
type Config struct {
	BasePath          string `env:"PASSWORD_BASE_PATH" envDefault:"/password"`
	InputID           string `env:"PASSWORD_INPUT_ID" envDefault:"password"`
	FormID            string `env:"PASSWORD_FORM_ID" envDefault:"password-form"`
	Optional          bool   `env:"PASSWORD_OPTIONAL" envDefault:"false"`
	DatastarScriptURL string `env:"DATASTAR_SCRIPT_URL" envDefault:"https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"`
}

func (c Config) withDefaults() Config {
	if c.InputID == "" {
		c.InputID = "password"
	}
	if c.FormID == "" {
		c.FormID = "password-form"
	}
	return c
}
