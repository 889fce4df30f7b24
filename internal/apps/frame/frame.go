// Package frame serves the share card that social clients render for
// /api/frame. Every answer is a 200 with a card, including failures.
package frame

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

const version = "vNext"

const (
	TitleDefault     = "DadPrep - The Ultimate Baby Guide for Fathers"
	TitleTracker     = "DadPrep Pregnancy Tracker"
	TitleNotAllowed  = "DadPrep - Method Not Allowed"
	TitleRecovered   = "DadPrep - Error Recovered"
	trackButtonIndex = 1
)

type Button struct {
	Label  string `json:"label"`
	Action string `json:"action"`
	Target string `json:"target,omitempty"`
}

type Card struct {
	Version string   `json:"version"`
	Image   string   `json:"image"`
	Title   string   `json:"title"`
	Buttons []Button `json:"buttons"`
}

type Envelope struct {
	Frames Card `json:"frames"`
}

// Cards builds every card from the configured image and site.
type Cards struct {
	Image string
	Site  string
}

func (c Cards) card(title string, buttons ...Button) Envelope {
	return Envelope{Frames: Card{Version: version, Image: c.Image, Title: title, Buttons: buttons}}
}

func (c Cards) Default() Envelope {
	return c.card(TitleDefault, Button{Label: "Track Pregnancy", Action: "post"})
}

func (c Cards) Tracker() Envelope {
	return c.card(TitleTracker, Button{Label: "Visit DadPrep", Action: "link", Target: c.Site})
}

func (c Cards) NotAllowed() Envelope {
	return c.card(TitleNotAllowed, Button{Label: "Try Again", Action: "post"})
}

func (c Cards) Recovered() Envelope {
	return c.card(TitleRecovered, Button{Label: "Try Again", Action: "post"})
}

// ForButton picks the card answering a button press.
func (c Cards) ForButton(index int) Envelope {
	if index == trackButtonIndex {
		return c.Tracker()
	}
	return c.Default()
}

var ErrMalformedBody = errors.New("frame: malformed request body")

// ButtonIndex reads the pressed button from the first place that has one:
// untrustedData.buttonIndex, buttonIndex, data.buttonIndex, then the query
// value. A field that is present but not a whole number counts as 0.
func ButtonIndex(body []byte, query string) (int, error) {
	var payload map[string]json.RawMessage
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}
	}

	for _, parent := range []string{"untrustedData", "", "data"} {
		if idx, ok := lookup(payload, parent); ok {
			return idx, nil
		}
	}

	if query != "" {
		n, err := strconv.Atoi(query)
		if err != nil {
			return 0, nil
		}
		return n, nil
	}
	return 0, nil
}

func lookup(payload map[string]json.RawMessage, parent string) (int, bool) {
	fields := payload
	if parent != "" {
		raw, ok := payload[parent]
		if !ok {
			return 0, false
		}
		fields = nil
		if err := json.Unmarshal(raw, &fields); err != nil {
			return 0, false
		}
	}
	raw, ok := fields["buttonIndex"]
	if !ok {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil || n != math.Trunc(n) {
		return 0, true
	}
	return int(n), true
}
