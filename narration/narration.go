package narration

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Sink is the ordered status log a generation cycle narrates into.
// Implementations must keep lines in append order.
type Sink interface {
	// Clear drops everything from the log at the start of a cycle
	Clear()
	// Line appends a plain status line
	Line(text string)
	// ErrorLine appends an error-styled line
	ErrorLine(text string)
}

// defaultScript is the canned "AI analysis" sequence. It carries no data
// dependency on the actual resolution; it only exists so the user sees a
// deliberate-looking processing phase.
var defaultScript = []string{
	"Booting skin analysis engine...",
	"Tokenizing input name...",
	"Scanning known naming conventions...",
	"Cross-referencing public skin archives...",
	"Scoring candidate matches...",
	"Preparing preview payload...",
}

const (
	minStepDelay = 600 * time.Millisecond
	maxStepDelay = 1000 * time.Millisecond
)

// Narrator plays the script into a sink with a delay before each step.
// Once started it runs to the end; cycles are gated on it finishing.
type Narrator struct {
	Steps []string
	// Sleep is swappable so tests don't wait out real delays
	Sleep func(d time.Duration)
}

func NewNarrator() *Narrator {
	return &Narrator{
		Steps: defaultScript,
		Sleep: time.Sleep,
	}
}

// Run emits every step in order. Not cancelable once started.
func (n *Narrator) Run(sink Sink) {
	for _, step := range n.Steps {
		n.Sleep(stepDelay())
		sink.Line(step)
	}
}

func stepDelay() time.Duration {
	spread := int64(maxStepDelay - minStepDelay)
	return minStepDelay + time.Duration(rand.Int63n(spread+1))
}

// BuilderSink collects narration into a strings.Builder, one line per
// entry. Used for per-request logs and in tests.
type BuilderSink struct {
	mu sync.Mutex
	b  strings.Builder
}

func (s *BuilderSink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b.Reset()
}

func (s *BuilderSink) Line(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b.WriteString(text)
	s.b.WriteString(";\n")
}

func (s *BuilderSink) ErrorLine(text string) {
	s.Line("[Error] " + text)
}

func (s *BuilderSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

// Lines returns the collected lines without the trailing separators.
func (s *BuilderSink) Lines() []string {
	raw := strings.TrimSuffix(s.String(), ";\n")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ";\n")
}
