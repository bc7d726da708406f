// File path: internal/context/types.go
package context

// NoContextSentinel signals that neither retrieval path produced anything
// and the persona should rely on its built-in knowledge.
const NoContextSentinel = "No specific context found, rely on your inner wisdom."

// Bundle is the merged retrieval output attached to a chat prompt. Dataset
// and Wellness are the individual path results and may each be empty;
// Combined is never empty (it falls back to NoContextSentinel).
type Bundle struct {
	Combined string `json:"combined"`
	Dataset  string `json:"dataset,omitempty"`
	Wellness string `json:"wellness,omitempty"`
}

// Empty reports whether no retrieval path contributed content.
func (b Bundle) Empty() bool {
	return b.Dataset == "" && b.Wellness == ""
}
