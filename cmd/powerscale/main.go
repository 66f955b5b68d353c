// Package main is the entry point for the powerscale CLI
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/RocknRolo/PowerScale/pkg/api"
	"github.com/RocknRolo/PowerScale/pkg/theory"
	"github.com/RocknRolo/PowerScale/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	rootNote      string
	mode          int
	melodicMinor  bool
	harmonicMinor bool
	asString      bool
	outputFile    string
	bpm           float64
	octave        int
	serverPort    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "powerscale",
	Short: "Compute diatonic modes with correct note spellings",
	Long: `powerscale computes the tone sequence of any mode of the major, melodic
minor or harmonic minor scale from an arbitrary root note, keeping the
spelling music-theoretically correct: each of the seven letters A-G is used
exactly once, with accidentals chosen to match the interval pattern.

Examples:
  powerscale --root G# --mode 6 --string
  powerscale --root C --harmonic-minor
  powerscale midi --root Eb --mode 2 -o dorian.mid
  powerscale tui
  powerscale serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	RunE:    runScale,
}

var midiCmd = &cobra.Command{
	Use:   "midi",
	Short: "Write the scale to a Standard MIDI File",
	Long:  `Computes the scale and writes it as a MIDI file, played ascending one quarter note per degree.`,
	RunE:  runMIDI,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive scale explorer",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&rootNote, "root", "r", "C", "Root note, e.g. C, g#, Bbb")
	rootCmd.PersistentFlags().IntVarP(&mode, "mode", "m", 1, "Mode number (any integer, interpreted cyclically)")
	rootCmd.PersistentFlags().BoolVar(&melodicMinor, "melodic-minor", false, "Use the melodic minor scale family")
	rootCmd.PersistentFlags().BoolVar(&harmonicMinor, "harmonic-minor", false, "Use the harmonic minor scale family")

	rootCmd.Flags().BoolVarP(&asString, "string", "s", false, "Print the space-joined rendering instead of JSON")

	midiCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .mid file path (default <root>.mid)")
	midiCmd.Flags().Float64Var(&bpm, "bpm", theory.DefaultBPM, "Tempo in beats per minute")
	midiCmd.Flags().IntVar(&octave, "octave", theory.DefaultOctave, "Starting octave (C4 = middle C)")

	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	rootCmd.AddCommand(midiCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func selectedFamily() (theory.Family, error) {
	if melodicMinor && harmonicMinor {
		return theory.Major, errors.New("--melodic-minor and --harmonic-minor are mutually exclusive")
	}
	switch {
	case melodicMinor:
		return theory.MelodicMinor, nil
	case harmonicMinor:
		return theory.HarmonicMinor, nil
	default:
		return theory.Major, nil
	}
}

func computeScale() (theory.Scale, theory.Family, error) {
	family, err := selectedFamily()
	if err != nil {
		return theory.Scale{}, family, err
	}
	scale, err := theory.ComputeScale(rootNote, mode, family)
	return scale, family, err
}

func runScale(cmd *cobra.Command, args []string) error {
	scale, family, err := computeScale()
	if err != nil {
		return err
	}

	if asString {
		fmt.Println(scale.String())
		return nil
	}

	type toneOut struct {
		Letter     string `json:"letter"`
		Accidental int    `json:"accidental"`
		Name       string `json:"name"`
	}
	out := struct {
		Root     string    `json:"root"`
		Family   string    `json:"family"`
		Mode     int       `json:"mode"`
		ModeName string    `json:"mode_name"`
		Tones    []toneOut `json:"tones"`
	}{
		Root:     scale[0].String(),
		Family:   string(family),
		Mode:     theory.NormalizeMode(mode),
		ModeName: theory.ModeName(family, mode),
	}
	for _, tone := range scale {
		out.Tones = append(out.Tones, toneOut{
			Letter:     string(tone.Letter),
			Accidental: tone.Accidental,
			Name:       tone.String(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runMIDI(cmd *cobra.Command, args []string) error {
	scale, _, err := computeScale()
	if err != nil {
		return err
	}

	data, err := theory.ScaleSMF(scale, bpm, octave)
	if err != nil {
		return err
	}

	output := outputFile
	if output == "" {
		output = scale[0].String() + ".mid"
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%s)\n", output, scale)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}
