package export

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/san-kum/timeflow/internal/timeline"
)

func reflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
}

// FrameSchema describes one serialized frame.
func FrameSchema() *jsonschema.Schema {
	s := reflector().ReflectFromType(reflect.TypeOf(timeline.Snapshot{}))
	s.Title = "timeflow frame"
	s.Description = "One recorded frame: the particle, its live rings and the rainbow mode state."
	return s
}

// TraceSchema describes a full trace file.
func TraceSchema() *jsonschema.Schema {
	s := reflector().ReflectFromType(reflect.TypeOf(Trace{}))
	s.Title = "timeflow trace"
	s.Description = "A recorded timeline with its session id, viewport and cursor."
	return s
}

func MarshalSchema(s *jsonschema.Schema) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
