// Command popupkit reads a popup definition in any supported format and
// prints the canonical JSON, the derived initial state, or the structured
// dialect rendering.
//
// Usage:
//
//	popupkit [-emit json|state|dsl] [-yaml] [-other] [file]
//
// With no file argument the definition is read from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	json "github.com/goccy/go-json"
	popupkit "github.com/spikehq/popupkit"
	"github.com/spikehq/popupkit/dsl"
)

func main() {
	emit := flag.String("emit", "json", "output form: json, state, or dsl")
	fromYAML := flag.Bool("yaml", false, "treat input as YAML")
	other := flag.Bool("other", false, "inject Other (please specify) options")
	flag.Parse()

	data, err := readInput(flag.Arg(0))
	if err != nil {
		fatal(err)
	}

	var def *popupkit.PopupDefinition
	if *fromYAML {
		def, err = popupkit.ParseYAML(data)
	} else {
		def, err = dsl.Parse(data)
	}
	if err != nil {
		fatal(err)
	}
	if *other {
		def = popupkit.InjectOtherOptions(def)
	}

	switch *emit {
	case "json":
		out, err := json.MarshalIndent(def, "", "  ")
		if err != nil {
			fatal(err)
		}
		fmt.Println(string(out))
	case "state":
		printState(def)
	case "dsl":
		fmt.Print(dsl.Serialize(def))
	default:
		fatal(fmt.Errorf("unknown -emit value %q", *emit))
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printState(def *popupkit.PopupDefinition) {
	st := popupkit.DeriveState(def)
	snapshot := popupkit.Snapshot(def, st)
	ids := make([]string, 0, len(st.Values))
	for id := range st.Values {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make(map[string]any, len(ids))
	for _, id := range ids {
		if v, ok := snapshot[id]; ok {
			out[id] = v
		} else {
			out[id] = nil
		}
	}
	enc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(enc))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "popupkit:", err)
	os.Exit(1)
}
