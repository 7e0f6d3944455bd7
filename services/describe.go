// Package services holds clients for external collaborators. The only one
// today is the menu-description generator.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// Fallbacks returned instead of an error. Menu management must never block
// or fail because the generation service is down or unconfigured.
const (
	fallbackNoKey   = "Delicious food item cooked to perfection."
	fallbackFailure = "Freshly prepared dish with premium ingredients."
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Describer asks a text-generation service for one-sentence menu
// descriptions.
type Describer struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewDescriber(apiKey, model string) *Describer {
	return &Describer{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// FoodDescription returns a short appetizing description for a menu item.
// Every failure path yields a fixed fallback string, never an error.
func (d *Describer) FoodDescription(ctx context.Context, foodName, category string) string {
	if d.apiKey == "" {
		return fallbackNoKey
	}

	prompt := fmt.Sprintf(
		"Write a short, appetizing, 1-sentence description (under 15 words) for a menu item named %q which is a %q dish. No quotes.",
		foodName, category,
	)
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return fallbackFailure
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", d.baseURL, d.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fallbackFailure
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", d.apiKey)

	resp, err := d.client.Do(req)
	if err != nil {
		log.Printf("describer: request failed: %v", err)
		return fallbackFailure
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("describer: unexpected status %d", resp.StatusCode)
		return fallbackFailure
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fallbackFailure
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return fallbackFailure
	}
	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return fallbackFailure
	}
	return text
}
