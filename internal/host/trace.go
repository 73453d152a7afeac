package host

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"gopkg.in/yaml.v2"
)

const traceLevel = 4

func traceTransition(log logr.Logger, msg, prev, next any) {
	log = log.V(traceLevel)
	if !log.Enabled() {
		return
	}
	diff, err := ModelDiff(prev, next)
	if err != nil {
		log.Error(err, "model dump failed")
		return
	}
	log.Info("transition", "msg", fmt.Sprintf("%T%+v", msg, msg), "diff", diff)
}

// Dump renders a model as YAML.
func Dump(model any) (string, error) {
	out, err := yaml.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("marshal model: %w", err)
	}
	return string(out), nil
}

// ModelDiff returns a unified diff between the YAML dumps of two models, or an
// empty string when they dump identically.
func ModelDiff(prev, next any) (string, error) {
	before, err := Dump(prev)
	if err != nil {
		return "", err
	}
	after, err := Dump(next)
	if err != nil {
		return "", err
	}
	if before == after {
		return "", nil
	}
	edits := myers.ComputeEdits(span.URIFromPath("model"), before, after)
	return strings.TrimPrefix(fmt.Sprint(gotextdiff.ToUnified("", "", before, edits)), "--- \n+++ \n"), nil
}
