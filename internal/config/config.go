package config

import (
	"os"

	"github.com/spf13/viper"
)

// SetDefaults registers the process-wide configuration surface. Every
// value can be overridden in podnest.yaml or per request via flags.
func SetDefaults() {
	viper.SetDefault("podcast.style", "conversational")
	viper.SetDefault("podcast.duration_minutes", 10)
	viper.SetDefault("podcast.output_dir", "outputs/podcast_audio")

	viper.SetDefault("extract.type", "auto") // firecrawl when a key is present
	viper.SetDefault("extract.timeout_seconds", 30)

	viper.SetDefault("llm.type", "auto")
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("llm.endpoint", "") // ollama endpoint, e.g. http://localhost:11434
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.max_tokens", 4000)
	viper.SetDefault("llm.timeout_seconds", 120)

	viper.SetDefault("tts.type", "auto")
	viper.SetDefault("tts.command", "") // local synthesis subprocess
	viper.SetDefault("tts.sample_rate", 24000)
	viper.SetDefault("tts.pause_seconds", 0.2)
	viper.SetDefault("tts.voice.speaker1", "af_heart")
	viper.SetDefault("tts.voice.speaker2", "am_liam")
}

// HasOpenAIKey reports whether an OpenAI credential is available.
func HasOpenAIKey() bool {
	return os.Getenv("OPENAI_API_KEY") != ""
}

// HasFirecrawlKey reports whether a Firecrawl credential is available.
func HasFirecrawlKey() bool {
	return os.Getenv("FIRECRAWL_API_KEY") != ""
}

// HasGoogleCredentials checks if Google Cloud credentials are available.
func HasGoogleCredentials() bool {
	_, ok := os.LookupEnv("GOOGLE_APPLICATION_CREDENTIALS")
	return ok
}
