package scout

import "regexp"

// deferredActionPatterns match fast-path replies that claim work was
// performed. A textual reply cannot have done anything; such answers
// must be rerouted through the full path so the action actually runs.
var deferredActionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bI'?ve (gone ahead and|already) \w+`),
	regexp.MustCompile(`(?i)\bI (have|just) (created|deleted|updated|moved|sent|scheduled|installed|executed|run)\b`),
	regexp.MustCompile(`(?i)\bI'?ve (created|deleted|updated|moved|sent|scheduled|installed|executed|run)\b`),
	regexp.MustCompile(`(?i)\b(done|completed)[.!] (the|your) (file|task|request)\b`),
	regexp.MustCompile(`(?i)\bhas been (created|deleted|updated|moved|sent|scheduled) for you\b`),
}

// requiresReroute reports whether a fast-path text contains
// deferred-action language.
func requiresReroute(text string) bool {
	for _, pattern := range deferredActionPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}
