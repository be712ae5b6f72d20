// Package imagegen resolves a concept prompt into a displayable image
// reference: a base64 data URI from the hosted text-to-image model, or a
// deterministic public fallback URL when the primary path fails.
package imagegen

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"
)

// fallbackURLTemplate is the public image-by-prompt endpoint used when the
// hosted model is unavailable. The URL is built here but never called.
const fallbackURLTemplate = "https://image.pollinations.ai/prompt/%s?width=512&height=512&model=flux&nologo=true"

// Resolver turns concept prompts into image references. It never returns an
// error: every primary-path failure degrades to the fallback URL.
type Resolver struct {
	generator Generator
}

// NewResolver creates a Resolver over the given primary generator.
func NewResolver(generator Generator) *Resolver {
	return &Resolver{generator: generator}
}

// Resolve composes the full stylistic prompt and attempts the primary
// generator exactly once, falling back to the public endpoint on any failure.
// The returned reference is either a data URI or an HTTP URL; callers treat
// both uniformly as an image source.
func (r *Resolver) Resolve(ctx context.Context, concept, topic string) string {
	prompt := composePrompt(concept, topic)
	log.Printf("[IMAGE] prompt: %q", prompt)

	png, err := r.generator.Generate(ctx, prompt)
	if err == nil {
		log.Printf("[IMAGE] generated via primary model")
		return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	}

	log.Printf("[IMAGE] primary model failed (%v), using fallback endpoint", err)
	return fmt.Sprintf(fallbackURLTemplate, encodePrompt(prompt))
}

// composePrompt wraps the concept and topic in the fixed blueprint styling.
func composePrompt(concept, topic string) string {
	return fmt.Sprintf(
		"Technical schematic drawing of %s in context of %s, white lines on blue background, blueprint style, high definition",
		concept, topic,
	)
}

// encodePrompt substitutes spaces only. The fallback endpoint tolerates most
// other characters as-is; full percent-encoding is deliberately not applied.
func encodePrompt(prompt string) string {
	return strings.ReplaceAll(prompt, " ", "%20")
}
