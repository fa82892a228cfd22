package domain

import "sync"

const welcomeDocument = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>CodeCraft Preview</title>
  <style>
    body {
      font-family: system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      line-height: 1.6;
      color: #333;
      max-width: 1200px;
      margin: 0 auto;
      padding: 2rem;
      display: flex;
      flex-direction: column;
      align-items: center;
      justify-content: center;
      min-height: 100vh;
      background-color: #f8fafc;
    }
    .welcome { text-align: center; animation: fade-in 1s ease-out; }
    .logo {
      width: 80px;
      height: 80px;
      background-color: #3b82f6;
      border-radius: 12px;
      display: flex;
      align-items: center;
      justify-content: center;
      color: white;
      font-size: 2rem;
      font-weight: bold;
      margin: 0 auto 2rem;
    }
    h1 { margin-bottom: 1rem; font-size: 2.5rem; font-weight: 600; }
    p { margin-bottom: 2rem; color: #64748b; max-width: 600px; }
    @keyframes fade-in {
      from { opacity: 0; transform: translateY(20px); }
      to { opacity: 1; transform: translateY(0); }
    }
  </style>
</head>
<body>
  <div class="welcome">
    <div class="logo">C</div>
    <h1>Welcome to CodeCraft</h1>
    <p>Describe the page you want and the generated code will appear here.</p>
  </div>
</body>
</html>
`

// DefaultArtifact is what the workspace shows before the first generation.
func DefaultArtifact() ParsedArtifact {
	return ParsedArtifact{
		HTML: welcomeDocument,
		CSS:  PlaceholderCSS,
		JS:   PlaceholderJS,
	}
}

// Workspace holds the artifacts currently presented to the user.
type Workspace struct {
	mu         sync.RWMutex
	current    ParsedArtifact
	generating bool
}

// NewWorkspace creates a workspace showing DefaultArtifact.
func NewWorkspace() *Workspace {
	return &Workspace{
		mu:         sync.RWMutex{},
		current:    DefaultArtifact(),
		generating: false,
	}
}

// Current returns the displayed artifacts.
func (w *Workspace) Current() ParsedArtifact {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.current
}

// Generating reports whether a generation is outstanding.
func (w *Workspace) Generating() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.generating
}

// Begin marks a generation as outstanding.
func (w *Workspace) Begin() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.generating {
		return ErrGenerationInProgress
	}
	w.generating = true
	return nil
}

// Finish ends the outstanding generation. A nil result (failure) keeps the
// previous artifacts.
func (w *Workspace) Finish(result *ParsedArtifact) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.generating = false
	if result != nil {
		w.current = *result
	}
}
