package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"podnest/internal/cli/scheme/colours"
	"podnest/internal/config"
	"podnest/internal/domain/script"
	"podnest/internal/podcast/extract"
	"podnest/internal/podcast/llm"
	"podnest/internal/podcast/synth"
	"podnest/internal/studio"
)

func main() {
	config.SetDefaults()

	app := studio.New()

	rootCmd := &cobra.Command{
		Use:   "podnest",
		Short: "🎙️ Turn any article or text into a two-speaker podcast",
		Long: `
┌─────────────────────────────────────┐
│  🎙️ Welcome to Podnest!            │
│  Articles and notes, turned into    │
│  two-speaker podcast episodes ✨    │
└─────────────────────────────────────┘

Podnest collects text and web sources, writes a dialogue script with a
language model, and reads it aloud with two distinct voices.
		`,
		Run: func(cmd *cobra.Command, args []string) {
			showWelcome(app)
		},
	}

	// Add commands
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "📥 Add a content source",
		Long:  "Add pasted text or a website URL to the session's sources",
	}

	addTextCmd := &cobra.Command{
		Use:   "text [name]",
		Short: "📄 Add a text source",
		Long:  "Store text content under a name. Reads from --file or stdin.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			file, _ := cmd.Flags().GetString("file")
			content, err := readContent(file)
			if err != nil {
				colours.Error.Printf("❌ %v\n", err)
				return
			}
			src, err := app.AddText(args[0], content)
			if err != nil {
				colours.Error.Printf("❌ %v\n", err)
				return
			}
			colours.Success.Printf("✅ Added: %s (%d words)\n", src.Name, src.WordCount)
		},
	}
	addTextCmd.Flags().StringP("file", "f", "", "Read content from a file instead of stdin")

	addURLCmd := &cobra.Command{
		Use:   "url [url]",
		Short: "🌐 Add a website source",
		Long:  "Scrape a web page and store its readable text as a source",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			colours.Info.Printf("🌐 Scraping %s...\n", args[0])
			src, err := app.AddWebsite(context.Background(), args[0])
			if err != nil {
				colours.Error.Printf("❌ %v\n", err)
				return
			}
			colours.Success.Printf("✅ Added: %s (%d words)\n", src.Name, src.WordCount)
		},
	}

	addCmd.AddCommand(addTextCmd, addURLCmd)

	// Sources command
	sourcesCmd := &cobra.Command{
		Use:   "sources",
		Short: "📚 List the session's sources",
		Run: func(cmd *cobra.Command, args []string) {
			listSources(app)
		},
	}

	// Remove command
	removeCmd := &cobra.Command{
		Use:   "remove [source-id]",
		Short: "🗑️ Remove a source",
		Long:  "Remove a source by its ID. Removing an unknown ID does nothing.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.RemoveSource(args[0])
			colours.Success.Println("✅ Removed (if it existed)")
		},
	}

	// Generate command
	generateCmd := &cobra.Command{
		Use:   "generate [source-id-or-name]",
		Short: "🎙️ Generate a podcast from a source",
		Long:  "Write a two-speaker script for the source and synthesize it to audio",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runGenerate(app, cmd, args[0])
		},
	}
	generateCmd.Flags().StringP("style", "s", viper.GetString("podcast.style"),
		"Podcast style: conversational, interview, debate, educational")
	generateCmd.Flags().IntP("duration", "d", viper.GetInt("podcast.duration_minutes"),
		"Target duration in minutes: 5, 10, 15 or 20")
	generateCmd.Flags().String("voice1", viper.GetString("tts.voice.speaker1"), "Voice for Speaker 1")
	generateCmd.Flags().String("voice2", viper.GetString("tts.voice.speaker2"), "Voice for Speaker 2")
	generateCmd.Flags().StringP("out", "o", viper.GetString("podcast.output_dir"), "Output directory")

	// Play command
	playCmd := &cobra.Command{
		Use:   "play [file]",
		Short: "🔊 Play a generated podcast",
		Long:  "Play a WAV file (the combined podcast or a single segment)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			colours.Info.Printf("🔊 Playing %s...\n", args[0])
			if err := app.Play(args[0]); err != nil {
				colours.Error.Printf("❌ Playback error: %v\n", err)
				return
			}
			colours.Success.Println("✅ Done")
		},
	}

	// Voices command
	voicesCmd := &cobra.Command{
		Use:   "voices",
		Short: "🎤 List available voices",
		Run: func(cmd *cobra.Command, args []string) {
			listVoices(app)
		},
	}

	// Engines command
	enginesCmd := &cobra.Command{
		Use:   "engines",
		Short: "⚙️ Show configured engines and feature availability",
		Run: func(cmd *cobra.Command, args []string) {
			showEngines(app)
		},
	}

	rootCmd.AddCommand(addCmd, sourcesCmd, removeCmd, generateCmd, playCmd, voicesCmd, enginesCmd)

	if err := rootCmd.Execute(); err != nil {
		colours.Error.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}
}

func showWelcome(app *studio.Studio) {
	fmt.Println()
	colours.Title.Println("🎙️ Welcome to Podnest! 🎙️")
	fmt.Println()
	colours.Info.Println("📚 Available commands:")
	fmt.Println("  • podnest add text   - Add pasted text as a source")
	fmt.Println("  • podnest add url    - Scrape a web page as a source")
	fmt.Println("  • podnest sources    - List collected sources")
	fmt.Println("  • podnest generate   - Turn a source into a podcast")
	fmt.Println("  • podnest play       - Play a generated episode")
	fmt.Println("  • podnest engines    - Show feature availability")
	fmt.Println()

	caps := app.Capabilities()
	if !caps.Generation {
		colours.Warning.Println("⚠️ Script generation is unavailable: set OPENAI_API_KEY or configure llm.endpoint")
	}
	if !caps.Synthesis {
		colours.Warning.Println("⚠️ Audio synthesis is unavailable: set GOOGLE_APPLICATION_CREDENTIALS or configure tts.command")
	}
}

func listSources(app *studio.Studio) {
	sources := app.Sources()
	fmt.Println()
	colours.Title.Println("📚 Sources 📚")
	fmt.Println()

	if len(sources) == 0 {
		colours.Warning.Println("🔍 No sources yet. Add one with 'podnest add'.")
		return
	}

	for i, src := range sources {
		fmt.Printf("  %d. ", i+1)
		colours.Title.Printf("%s", src.Name)
		fmt.Printf("\n     📄 %s • %d words • added %s\n",
			src.Origin, src.WordCount, src.CreatedAt.Format("2006-01-02 15:04"))
		colours.Info.Printf("     ID: %s\n", src.ID)
		fmt.Println()
	}
	colours.Success.Printf("✨ %d sources ready for podcast generation\n", len(sources))
}

func runGenerate(app *studio.Studio, cmd *cobra.Command, sourceID string) {
	styleFlag, _ := cmd.Flags().GetString("style")
	minutes, _ := cmd.Flags().GetInt("duration")
	voice1, _ := cmd.Flags().GetString("voice1")
	voice2, _ := cmd.Flags().GetString("voice2")
	outDir, _ := cmd.Flags().GetString("out")

	style, err := script.ParseStyle(styleFlag)
	if err != nil {
		colours.Error.Printf("❌ %v\n", err)
		return
	}

	voices := synth.VoiceMap{
		script.Speaker1: voice1,
		script.Speaker2: voice2,
	}

	colours.Info.Println("✍️ Generating podcast script...")
	result, err := app.Generate(context.Background(), sourceID, style, minutes, voices, outDir)
	if err != nil {
		colours.Error.Printf("❌ %v\n", err)
		if studio.IsConfigurationError(err) {
			colours.Info.Println("💡 Run 'podnest engines' to see what is configured")
		}
		return
	}

	colours.Success.Printf("✅ Generated script with %d dialogue segments\n", result.Script.LineCount)
	colours.Info.Printf("📄 Script saved: %s\n", result.ScriptPath)

	printScript(result.Script)

	if result.Asset != nil {
		colours.Success.Printf("🎵 Podcast audio saved: %s (%.1fs, %d segments)\n",
			result.Asset.CombinedPath, result.Asset.Duration(), len(result.Asset.Clips))
		colours.Info.Printf("💡 Listen with: podnest play %s\n", result.Asset.CombinedPath)
	} else {
		colours.Warning.Printf("⚠️ %s\n", result.AudioNote)
	}
}

func printScript(sc script.Script) {
	fmt.Println()
	colours.Title.Println("📝 Generated Podcast Script")
	fmt.Println()
	for _, turn := range sc.Turns {
		switch turn.Speaker {
		case script.Speaker1:
			colours.Speaker1.Printf("👩 %s: ", turn.Speaker.Label())
		default:
			colours.Speaker2.Printf("👨 %s: ", turn.Speaker.Label())
		}
		fmt.Println(turn.Text)
		fmt.Println()
	}
}

func listVoices(app *studio.Studio) {
	engine := app.Engine()
	if engine == nil {
		colours.Warning.Println("⚠️ No TTS engine available")
		return
	}

	lister, ok := engine.(synth.VoiceLister)
	if !ok {
		colours.Info.Println("ℹ️ The active engine does not enumerate voices")
		return
	}

	voices, err := lister.Voices(context.Background())
	if err != nil {
		colours.Error.Printf("❌ Failed to list voices: %v\n", err)
		return
	}

	colours.Title.Println("🎤 Available Voices 🎤")
	for _, v := range voices {
		fmt.Printf("  • %s\n", v)
	}
}

func showEngines(app *studio.Studio) {
	caps := app.Capabilities()

	fmt.Println()
	colours.Title.Println("⚙️ Engines & Features ⚙️")
	fmt.Println()

	printFeature("Web extraction", caps.Extraction)
	fmt.Printf("   available extractors: %s\n", joinExtractTypes(extract.Available()))

	printFeature("Script generation", caps.Generation)
	fmt.Printf("   available generators: %s\n", joinLLMTypes(llm.Available()))

	printFeature("Speech synthesis", caps.Synthesis)
	fmt.Printf("   available engines: %s\n", joinEngineTypes(synth.AvailableEngines()))
}

func printFeature(name string, available bool) {
	if available {
		colours.Success.Printf("✅ %s\n", name)
	} else {
		colours.Warning.Printf("⚠️ %s (unavailable)\n", name)
	}
}

func joinExtractTypes(types []extract.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

func joinLLMTypes(types []llm.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

func joinEngineTypes(types []synth.EngineType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

// readContent reads the source text from a file or stdin.
func readContent(file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// Configuration management with Viper
func init() {
	viper.SetConfigName("podnest")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.podnest")
	viper.AddConfigPath(".")

	viper.ReadInConfig()
}
