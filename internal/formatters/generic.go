package formatters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/devtainer/devtainer/internal/check"
)

var jsonMarshalIndent = json.MarshalIndent

// UserResponse is the shape the check results take before formatting.
type UserResponse struct {
	Image   string        `json:"image"`
	Passed  bool          `json:"passed"`
	Results resultsByKind `json:"results"`
}

type resultsByKind struct {
	Passed []resultItem `json:"passed"`
	Failed []resultItem `json:"failed"`
	Errors []resultItem `json:"errors"`
}

type resultItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Output      string `json:"output,omitempty"`
}

func getResponse(r check.Results) UserResponse {
	return UserResponse{
		Image:  r.Image,
		Passed: r.PassedOverall(),
		Results: resultsByKind{
			Passed: toItems(r.Passed, false),
			Failed: toItems(r.Failed, true),
			Errors: toItems(r.Errors, true),
		},
	}
}

// toItems converts results, carrying tool output only for checks that
// did not pass to keep reports small.
func toItems(results []check.Result, includeOutput bool) []resultItem {
	items := make([]resultItem, 0, len(results))
	for _, r := range results {
		item := resultItem{
			Name:        r.Name(),
			Description: r.Description(),
		}
		if includeOutput {
			item.Output = r.Output
		}
		items = append(items, item)
	}
	return items
}

// genericJSONFormatter is a FormatterFunc that formats results as JSON.
func genericJSONFormatter(ctx context.Context, r check.Results) ([]byte, error) {
	response := getResponse(r)

	responseJSON, err := jsonMarshalIndent(response, "", "    ")
	if err != nil {
		e := fmt.Errorf("error formatting results with formatter %s: %w",
			"json",
			err,
		)

		return nil, e
	}

	return responseJSON, nil
}

// genericTextFormatter is a FormatterFunc that formats results as
// human-readable lines, one per check.
func genericTextFormatter(ctx context.Context, r check.Results) ([]byte, error) {
	response := getResponse(r)

	var b bytes.Buffer
	fmt.Fprintf(&b, "image: %s\n", response.Image)
	for _, item := range response.Results.Passed {
		fmt.Fprintf(&b, "PASSED: %s (%s)\n", item.Name, item.Description)
	}
	for _, item := range response.Results.Failed {
		fmt.Fprintf(&b, "FAILED: %s (%s)\n", item.Name, item.Description)
		if item.Output != "" {
			fmt.Fprintf(&b, "%s\n", item.Output)
		}
	}
	for _, item := range response.Results.Errors {
		fmt.Fprintf(&b, "ERROR: %s (%s)\n", item.Name, item.Description)
		if item.Output != "" {
			fmt.Fprintf(&b, "%s\n", item.Output)
		}
	}
	fmt.Fprintf(&b, "overall: passed=%t\n", response.Passed)

	return b.Bytes(), nil
}
