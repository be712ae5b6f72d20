// Package sim drives the document-grounded scenario dialogue: it turns an
// uploaded manual into session context and steps the simulation one user
// action at a time, guaranteeing every scenario reply carries an image cue.
package sim

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/skillsync-ai/simengine/internal/llm"
	"github.com/skillsync-ai/simengine/internal/session"
)

const (
	// minManualChars is the minimum reference text length for the dialogue
	// to run. Mirrors the extractor's own threshold, so "never parsed" and
	// "never uploaded" look the same to the caller.
	minManualChars = 50
	// displayThreshold is the extracted length below which the stored text
	// is replaced by the unreadable-document warning.
	displayThreshold = 20
	// manualExcerptLimit bounds how much reference text goes into a prompt.
	manualExcerptLimit = 4000
	// conceptWindow bounds how much scenario text feeds concept extraction.
	conceptWindow = 500
)

const (
	noManualReply       = "SYSTEM ERROR: No manual loaded."
	emptyDocPlaceholder = "WARNING: The uploaded document was empty or unreadable."
	conceptFallback     = "Technical Schematic"
	imageCueMarker      = "[Image of"
	// startAction is the frontend's kick-off move; the opening scene gets
	// no forced image cue.
	startAction = "START SIMULATION"
)

// TextExtractor produces best-effort plain text from uploaded file bytes.
type TextExtractor interface {
	Extract(data []byte, filename string) string
}

// Engine runs the scenario dialogue against a chat completion provider.
type Engine struct {
	store     *session.Store
	extractor TextExtractor
	provider  llm.Provider
	model     string
}

// NewEngine creates a dialogue engine.
func NewEngine(store *session.Store, extractor TextExtractor, provider llm.Provider, model string) *Engine {
	return &Engine{
		store:     store,
		extractor: extractor,
		provider:  provider,
		model:     model,
	}
}

// Upload extracts text from an uploaded document and resets the session with
// it. The returned count is the extracted length before any placeholder
// substitution, so callers can tell a near-empty document from a real one.
func (e *Engine) Upload(data []byte, filename string) int {
	text := e.extractor.Extract(data, filename)
	rawLen := len(text)

	if rawLen < displayThreshold {
		text = emptyDocPlaceholder
	}

	topic := topicFromFilename(filename)
	e.store.Reset(text, topic)
	log.Printf("[UPLOAD] extracted %d chars, topic set to %q", rawLen, topic)

	return rawLen
}

// Step advances the simulation by one user action and returns the scenario
// reply. Every failure path returns a caller-visible string; Step never
// returns an error.
func (e *Engine) Step(ctx context.Context, action, language string) string {
	manual := e.store.ManualText()
	if manual == "" || len(manual) < minManualChars {
		return noManualReply
	}

	e.store.Append(session.SpeakerUser, action)
	manual, recent, _ := e.store.Snapshot()

	// Thresholds are in characters; slicing bytes could cut a multibyte
	// manual mid-rune and feed invalid UTF-8 to the provider.
	excerpt := manual
	if r := []rune(excerpt); len(r) > manualExcerptLimit {
		excerpt = string(r[:manualExcerptLimit])
	}

	prompt := buildScenarioPrompt(excerpt, language, formatTurns(recent))

	reply, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Model:       e.model,
		Prompt:      prompt,
		MaxTokens:   2048,
		Temperature: 0.7,
	})
	if err != nil {
		return fmt.Sprintf("System Error: %v", err)
	}

	if !strings.Contains(reply, imageCueMarker) && action != startAction {
		if concept := e.extractConcept(ctx, reply); concept != "" {
			reply += fmt.Sprintf("\n\n[Image of %s]\n", concept)
		}
	}

	e.store.Append(session.SpeakerAI, reply)
	return reply
}

// extractConcept asks the model for the dominant physical object in the tail
// of the scenario text. It degrades to a fixed literal on any failure so the
// parent dialogue flow is never interrupted.
func (e *Engine) extractConcept(ctx context.Context, scenarioText string) string {
	if r := []rune(scenarioText); len(r) > conceptWindow {
		scenarioText = string(r[len(r)-conceptWindow:])
	}

	reply, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Model:     e.model,
		Prompt:    buildConceptPrompt(scenarioText),
		MaxTokens: 64,
	})
	if err != nil {
		log.Printf("[SIM] concept extraction failed: %v", err)
		return conceptFallback
	}

	concept := strings.TrimSpace(reply)
	if concept == "" {
		return conceptFallback
	}
	return concept
}

// topicFromFilename derives a human-readable topic label from the uploaded
// filename.
func topicFromFilename(filename string) string {
	topic := strings.TrimSuffix(filename, ".pdf")
	return strings.ReplaceAll(topic, "_", " ")
}

func formatTurns(turns []session.Turn) string {
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, fmt.Sprintf("%s: %s", t.Speaker, t.Text))
	}
	return strings.Join(lines, "\n")
}
