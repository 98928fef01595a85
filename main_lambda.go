//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/tidwall/gjson"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type optimizeResult struct {
	Part    int               `json:"part"`
	Answer  int               `json:"answer"`
	TimeMs  int64             `json:"timeMs"`
	Results []BlueprintResult `json:"results"`
}

// handler runs one part over the blueprints in the request body:
//
//	{"part": 1, "input": "Blueprint 1: ...\nBlueprint 2: ...", "workers": 2, "prune": true}
func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}
	if !gjson.Valid(body) {
		return errResp(400, "invalid JSON")
	}

	part := gjson.Get(body, "part")
	if !part.Exists() {
		return errResp(400, "missing part")
	}
	input := gjson.Get(body, "input").String()
	if input == "" {
		return errResp(400, "missing input")
	}

	cfg := DefaultConfig()
	if w := gjson.Get(body, "workers"); w.Exists() {
		cfg.Workers = int(w.Int())
	}
	if p := gjson.Get(body, "prune"); p.Exists() {
		cfg.Prune = p.Bool()
	}
	if err := cfg.Validate(); err != nil {
		return errResp(400, err.Error())
	}

	bps, err := ParseBlueprints(trimInput(input))
	if err != nil {
		return errResp(422, err.Error())
	}

	rep, err := NewRunner(cfg, nil).Run(ctx, int(part.Int()), bps)
	if errors.Is(err, ErrUnknownPart) {
		return errResp(400, err.Error())
	}
	if err != nil {
		return errResp(500, err.Error())
	}

	out := NewRunOutput(rep, 0)
	resp := optimizeResult{Part: rep.Part, Answer: rep.Answer, TimeMs: out.TotalMs, Results: out.Results}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
