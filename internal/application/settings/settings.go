// Package settings defines application-level configuration data.
package settings

import "strings"

// ServerConfig defines the HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr" kong:"help='HTTP listen address',default=':3000'"`
}

// GenAIConfig defines Google Gemini integration settings.
type GenAIConfig struct {
	APIKey  string `yaml:"-" kong:"help='Google AI API key',env='GOOGLE_GENAI_API_KEY'"`
	Model   string `yaml:"model" kong:"help='Gemini model',default='gemini-2.0-flash'"`
	BaseURL string `yaml:"base_url" kong:"help='Gemini API base URL override'"`
}

// JournalConfig defines the generation journal settings.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled" kong:"help='Record generation attempts',default='true'"`
	File    string `yaml:"file" kong:"help='Journal database path'"`
}

// ClientConfig defines the terminal client settings.
type ClientConfig struct {
	Endpoint string `yaml:"endpoint" kong:"help='Menu API endpoint',default='http://localhost:3000/api/generate-menu'"`
}

// KeyMapConfig defines the keybindings of the terminal client.
type KeyMapConfig struct {
	Submit     string `yaml:"submit" kong:"help='Submit key',default='enter'"`
	Quit       string `yaml:"quit" kong:"help='Quit keys',default='esc,ctrl+c'"`
	Help       string `yaml:"help" kong:"help='Toggle help key',default='f1'"`
	ScrollUp   string `yaml:"scroll_up" kong:"help='Scroll result up key',default='pgup'"`
	ScrollDown string `yaml:"scroll_down" kong:"help='Scroll result down key',default='pgdown'"`
}

// LogConfig defines logging settings.
type LogConfig struct {
	Level string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
}

// Settings represents the application configuration.
type Settings struct {
	Server  ServerConfig  `yaml:"server" kong:"embed,prefix='server.'"`
	GenAI   GenAIConfig   `yaml:"genai" kong:"embed,prefix='genai.'"`
	Journal JournalConfig `yaml:"journal" kong:"embed,prefix='journal.'"`
	Client  ClientConfig  `yaml:"client" kong:"embed,prefix='client.'"`
	KeyMap  KeyMapConfig  `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Log     LogConfig     `yaml:"log" kong:"embed,prefix='log.'"`
}

// JournalPath returns the journal database path, or "" when journaling is off.
func (s Settings) JournalPath() string {
	if !s.Journal.Enabled {
		return ""
	}
	return strings.TrimSpace(s.Journal.File)
}
