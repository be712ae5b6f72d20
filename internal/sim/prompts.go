package sim

import "fmt"

// buildScenarioPrompt assembles the single grounded instruction prompt for a
// simulation step: role directive, manual excerpt, output language, the
// required scenario structure, and the trailing conversation.
func buildScenarioPrompt(manualExcerpt, language, conversationLog string) string {
	return fmt.Sprintf(`ROLE: Expert Simulator.

MANUAL:
%s

INSTRUCTIONS:
- Language: %s
- Create a narrative scenario followed by exactly 3 labeled choices (A, B, C)
- MUST include an image tag if a physical concept exists, in the form:

[Image of Object Name]

CHAT HISTORY:
%s
`, manualExcerpt, language, conversationLog)
}

// buildConceptPrompt asks for the single dominant physical object or setting
// in a scenario excerpt, suitable for a technical-diagram illustration.
func buildConceptPrompt(scenarioTail string) string {
	return fmt.Sprintf(`Extract the single most important physical object or setting
for a technical diagram. Return ONLY the noun.

TEXT:
%s
`, scenarioTail)
}
