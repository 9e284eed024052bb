// Package tool holds the static catalog of ExprPredictor tools exposed by
// the bridge. The catalog is hand-maintained and must be kept in sync with
// what the mcp_demo executable actually supports; it is not derived from the
// backend at runtime.
package tool

import (
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrUnknownTool is returned for names outside the catalog. The capitalized
// message is part of the HTTP error contract.
var ErrUnknownTool = errors.New("Unknown tool")

// names fixes the catalog order used for listings and fallbacks.
var names = []string{
	"expr_predictor_obj_func",
	"expr_par_get_free_pars",
	"expr_predictor_train",
	"expr_predictor_predict",
	"expr_par_load",
	"expr_func_predict_expr",
}

var catalog = map[string]mcp.Tool{
	"expr_predictor_obj_func": {
		Name:        "expr_predictor_obj_func",
		Description: "Compute objective function value for ExprPredictor with given parameters",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"parameters": {Type: "object", Description: "ExprPar parameters object"},
			},
			Required: []string{"parameters"},
		},
	},
	"expr_par_get_free_pars": {
		Name:        "expr_par_get_free_pars",
		Description: "Extract free parameters from ExprPar object",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"parameters":    {Type: "object", Description: "ExprPar parameters object"},
				"coopMat":       {Type: "object", Description: "Cooperativity matrix"},
				"actIndicators": {Type: "array", Description: "Activator indicators"},
				"repIndicators": {Type: "array", Description: "Repressor indicators"},
			},
			Required: []string{"parameters", "coopMat", "actIndicators", "repIndicators"},
		},
	},
	"expr_predictor_train": {
		Name:        "expr_predictor_train",
		Description: "Train ExprPredictor model with given data",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"initialParameters": {Type: "object", Description: "Initial ExprPar parameters"},
				"trainingData":      {Type: "object", Description: "Training dataset"},
				"options":           {Type: "object", Description: "Training options"},
			},
			Required: []string{"initialParameters", "trainingData"},
		},
	},
	"expr_predictor_predict": {
		Name:        "expr_predictor_predict",
		Description: "Predict expression values using trained ExprPredictor",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"parameters": {Type: "object", Description: "Trained ExprPar parameters"},
				"sequences":  {Type: "array", Description: "Input sequences for prediction"},
				"conditions": {Type: "array", Description: "Experimental conditions"},
			},
			Required: []string{"parameters", "sequences"},
		},
	},
	"expr_par_load": {
		Name:        "expr_par_load",
		Description: "Load ExprPar parameters from file",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"filename":      {Type: "string", Description: "Path to parameter file"},
				"coopMat":       {Type: "object", Description: "Cooperativity matrix"},
				"repIndicators": {Type: "array", Description: "Repressor indicators"},
			},
			Required: []string{"filename", "coopMat", "repIndicators"},
		},
	},
	"expr_func_predict_expr": {
		Name:        "expr_func_predict_expr",
		Description: "Predict expression using ExprFunc",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"sites":                {Type: "array", Description: "Binding sites (SiteVec)"},
				"length":               {Type: "integer", Description: "Sequence length"},
				"factorConcentrations": {Type: "array", Description: "TF concentration values"},
			},
			Required: []string{"sites", "length", "factorConcentrations"},
		},
	},
}

// Schema returns the full descriptor for a catalog tool.
func Schema(name string) (mcp.Tool, error) {
	t, ok := catalog[name]
	if !ok {
		return mcp.Tool{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return t, nil
}

// Known reports whether name is in the catalog.
func Known(name string) bool {
	_, ok := catalog[name]
	return ok
}

// Names returns the catalog tool names in fixed order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Fallback returns the catalog descriptors without input schemas, in fixed
// order. Used when backend output yields no recognizable tool listing.
func Fallback() []mcp.Tool {
	out := make([]mcp.Tool, 0, len(names))
	for _, name := range names {
		t := catalog[name]
		out = append(out, mcp.Tool{Name: t.Name, Description: t.Description})
	}
	return out
}
