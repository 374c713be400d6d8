package assistant

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

const systemInstruction = "You are an AI veterinary assistant for pig and poultry farmers. Analyze symptoms and information from text, images, or audio to suggest potential issues and advise when to see a vet. If audio is provided, transcribe it first as part of your analysis. Do not give a final diagnosis. Be helpful, clear, and use formatting like lists or bold text to improve readability. Always end with a disclaimer that you are not a substitute for a professional veterinarian."

// defaultMediaPrompt stands in when the user sends media without text.
const defaultMediaPrompt = "Analyze the provided media (image and/or audio) and provide guidance."

// Gemini answers assistant turns with the Gemini API.
type Gemini struct {
	client *genai.Client
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: client}, nil
}

func (g *Gemini) Analyze(ctx context.Context, req Request) (string, error) {
	var parts []*genai.Part
	if req.Image != nil {
		parts = append(parts, genai.NewPartFromBytes(req.Image.Data, req.Image.MIMEType))
	}
	if req.Audio != nil {
		parts = append(parts, genai.NewPartFromBytes(req.Audio.Data, req.Audio.MIMEType))
	}
	text := req.Text
	if text == "" && len(parts) > 0 {
		text = defaultMediaPrompt
	}
	parts = append(parts, genai.NewPartFromText(text))

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, config)
	if err != nil {
		return "", err
	}
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// BiosecurityTips asks for three localized improvement tips for the farmer
// dashboard. languageName is the display name, e.g. "English" or "हिन्दी".
func (g *Gemini) BiosecurityTips(ctx context.Context, languageName string) (string, error) {
	prompt := fmt.Sprintf("Generate three concise, actionable biosecurity improvement tips for a small-to-medium scale pig and poultry farm in India. Focus on practical, low-cost measures. Format the response as a markdown list with bolded titles for each tip. IMPORTANT: Respond in %s.", languageName)

	result, err := g.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
