package domain

import "strings"

const systemPrompt = `You are an expert front-end developer who builds clean, modern, responsive web pages.

You only respond with a single complete, self-contained HTML document.
No explanations or prose outside the code itself.
Your code should be valid, efficient, and production quality.
Ensure all HTML is semantic and accessible.
Use modern CSS features (flexbox, grid, custom properties).
Include responsive breakpoints for mobile, tablet, and desktop.
Add proper error handling and input validation to interactive elements.`

const userPromptHeader = `Generate a complete, standalone web page based on the following requirements.
Include all HTML, CSS, and JavaScript in a single file.

USER REQUIREMENTS:
`

const userPromptRequirements = `

TECHNICAL REQUIREMENTS:
1. Create valid, semantic HTML5 with proper accessibility attributes
2. Put all styles in one <style> element in the document head
3. Add responsive breakpoints for mobile, tablet, and desktop
4. Add appropriate interactivity with clean JavaScript in one <script> element
5. Include subtle animations and transitions for a polished feel
6. Ensure all interactive elements have hover and focus states
7. Generate placeholder content that matches the requested theme
8. Keep everything self-contained: no external stylesheets, scripts, or build steps

`

// FinalDirective always closes the user prompt.
const FinalDirective = "Return ONLY the complete HTML document with embedded CSS and JavaScript."

// BuildSystemPrompt returns the fixed system instruction.
func BuildSystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt wraps userText with the technical requirements.
func BuildUserPrompt(userText string) string {
	var b strings.Builder
	b.Grow(len(userPromptHeader) + len(userText) + len(userPromptRequirements) + len(FinalDirective))
	b.WriteString(userPromptHeader)
	b.WriteString(strings.TrimSpace(userText))
	b.WriteString(userPromptRequirements)
	b.WriteString(FinalDirective)
	return b.String()
}

// BuildMessages returns the system and user messages for userText.
func BuildMessages(userText string) []Message {
	return []Message{
		{Role: RoleSystem, Content: BuildSystemPrompt()},
		{Role: RoleUser, Content: BuildUserPrompt(userText)},
	}
}
