package resource

import (
	"encoding/json"
	"reflect"
	"strings"
)

// jsonKeys returns the JSON member names of the struct fields of v.
func jsonKeys(v any) map[string]struct{} {
	t := reflect.TypeOf(v)
	keys := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		keys[name] = struct{}{}
	}
	return keys
}

// splitExtra returns the members of the JSON object data that are not in
// known, or nil when there are none.
func splitExtra(data []byte, known map[string]struct{}) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	var extra map[string]json.RawMessage
	for k, v := range all {
		if _, ok := known[k]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[k] = v
	}
	return extra, nil
}

// mergeExtra adds the members of extra missing from the JSON object data.
func mergeExtra(data []byte, extra map[string]json.RawMessage) ([]byte, error) {
	if len(extra) == 0 {
		return data, nil
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := all[k]; !ok {
			all[k] = v
		}
	}
	return json.Marshal(all)
}

type serverJSON Server

var serverKeys = jsonKeys(serverJSON{})

// MarshalJSON encodes the server, including members kept in Extra.
func (s Server) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(serverJSON(s))
	if err != nil {
		return nil, err
	}
	return mergeExtra(data, s.Extra)
}

// UnmarshalJSON decodes the server and keeps unmodeled members in Extra.
func (s *Server) UnmarshalJSON(data []byte) error {
	var fields serverJSON
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extra, err := splitExtra(data, serverKeys)
	if err != nil {
		return err
	}
	fields.Extra = extra
	*s = Server(fields)
	return nil
}

type driveJSON Drive

var driveKeys = jsonKeys(driveJSON{})

// MarshalJSON encodes the drive, including members kept in Extra.
func (d Drive) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(driveJSON(d))
	if err != nil {
		return nil, err
	}
	return mergeExtra(data, d.Extra)
}

// UnmarshalJSON decodes the drive and keeps unmodeled members in Extra.
func (d *Drive) UnmarshalJSON(data []byte) error {
	var fields driveJSON
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extra, err := splitExtra(data, driveKeys)
	if err != nil {
		return err
	}
	fields.Extra = extra
	*d = Drive(fields)
	return nil
}
