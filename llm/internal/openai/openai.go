package openai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/quipdev/quip/config"
	"github.com/quipdev/quip/logging"
)

// message represents a single item in the Responses API input list.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// request defines the request payload sent to the OpenAI Responses API.
type request struct {
	Model        string       `json:"model"`
	Instructions string       `json:"instructions,omitempty"`
	Input        []message    `json:"input"`
	Text         *textOptions `json:"text,omitempty"`
}

// response defines the subset of a Responses API reply quip consumes.
type response struct {
	Output []outputItem `json:"output"`
}

type outputItem struct {
	Type    string        `json:"type"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type openaiErrorResponse struct {
	OpenAIError struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Param   string `json:"param"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (o openaiErrorResponse) Error() string {
	return fmt.Sprintf("OpenAI API error: %s", o.OpenAIError.Message)
}

// NOTE: baseEndpoint is a var (not const) to allow test overrides.
var baseEndpoint = "https://api.openai.com/v1/responses"

// Respond sends the system and user messages to the given model and returns
// the assistant's text output. Rate-limited calls are retried after 30s.
func Respond(modelID string, verbosity *config.Verbosity, systemMessage, userMessage string) (string, error) {
	resp, err := callOpenAI(modelID, verbosity, systemMessage, userMessage)
	if err != nil {
		var apiErr openaiErrorResponse
		if errors.As(err, &apiErr) && apiErr.OpenAIError.Code == "rate_limit_exceeded" {
			logging.Log.Warn("rate limit exceeded, retrying after 30s")
			<-time.After(30 * time.Second)
			return Respond(modelID, verbosity, systemMessage, userMessage)
		}
		return "", err
	}
	return outputText(resp)
}

// callOpenAI posts a single request and parses the reply. When
// request/response debugging is enabled the exchange is persisted to a
// uniquely-named JSON file in the OS temp dir.
func callOpenAI(modelID string, verbosity *config.Verbosity, systemMessage, userMessage string) (*response, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}

	// Construct request payload. The text block is attached only when the
	// target model honors it.
	reqPayload := request{
		Model:        modelID,
		Instructions: systemMessage,
		Input: []message{
			{Role: "user", Content: userMessage},
		},
	}
	reqPayload = applyTextOptions(reqPayload, modelID, verbosity)

	reqBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", baseEndpoint, bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", apiKey))

	logging.Log.Debugf("calling %s with model %s", baseEndpoint, reqPayload.Model)
	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp openaiErrorResponse
		if err := json.Unmarshal(respBytes, &errorResp); err != nil {
			return nil, fmt.Errorf("OpenAI API error: %s", string(respBytes))
		}
		return nil, errorResp
	}

	var parsed response
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return nil, err
	}

	if logging.RequestResponseDebug() {
		dumpExchange(reqBytes, respBytes)
	}

	return &parsed, nil
}

// outputText extracts the first output_text part of the first message item.
func outputText(resp *response) (string, error) {
	for _, item := range resp.Output {
		if item.Type != "message" {
			continue
		}
		for _, part := range item.Content {
			if part.Type == "output_text" {
				return part.Text, nil
			}
		}
	}
	return "", errors.New("no output text returned from OpenAI")
}

// dumpExchange persists the request/response pair to a unique temp-file.
func dumpExchange(reqBytes, respBytes []byte) {
	entry := struct {
		Request  json.RawMessage `json:"request"`
		Response json.RawMessage `json:"response"`
	}{
		Request:  reqBytes,
		Response: respBytes,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		logging.Log.Warnf("error marshalling OpenAI log entry: %v", err)
		return
	}
	f, err := os.CreateTemp("", "quip-openai-*.json")
	if err != nil {
		logging.Log.Warnf("error creating OpenAI log file: %v", err)
		return
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		logging.Log.Warnf("error writing OpenAI log file: %v", err)
		return
	}
	logging.Log.Debugf("wrote OpenAI log file to %s", f.Name())
}
