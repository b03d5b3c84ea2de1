package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	"github.com/diogo/planet/internal/models"
)

// AskResult is the backend's reply to a question
type AskResult struct {
	Answer string
	// Found is false when the response carried no usable answer field
	Found bool
}

// Text returns the answer, or the fixed fallback when none was found
func (r *AskResult) Text() string {
	if r == nil || !r.Found {
		return models.FallbackAnswer
	}
	return r.Answer
}

type askRequest struct {
	Question string `json:"question"`
}

// Ask posts question to the ask endpoint. A missing answer field is not an error.
func (c *Client) Ask(question string) (*AskResult, error) {
	payload, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal question: %w", err)
	}

	req, err := fhttp.NewRequest(fhttp.MethodPost, c.endpointURL(models.PathAsk), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, models.PathAsk, isSuccess)
	if err != nil {
		return nil, err
	}

	return parseAskResponse(body), nil
}

// parseAskResponse treats null, false, empty strings and non-JSON bodies as "no answer"
func parseAskResponse(body []byte) *AskResult {
	if !gjson.ValidBytes(body) {
		return &AskResult{}
	}

	answer := gjson.GetBytes(body, PathAnswer)
	switch {
	case !answer.Exists(), answer.Type == gjson.Null, answer.Type == gjson.False:
		return &AskResult{}
	case answer.Type == gjson.Number && answer.Num == 0:
		return &AskResult{}
	}

	text := answer.String()
	if text == "" {
		return &AskResult{}
	}
	return &AskResult{Answer: text, Found: true}
}
