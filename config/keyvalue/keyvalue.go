// Package keyvalue flattens a go-simpler/env tagged configuration struct into sorted
// key/value pairs and renders them as a shell script that sets the variables.
package keyvalue

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// KV is a key/value pair.
type KV struct{ Key, Value string }

// EnvKV returns the `env` tagged fields of the struct cfg, sorted by key. cfg must be a
// struct value, not a pointer. Fields without an env tag are skipped.
func EnvKV(cfg any) (kvs []KV) {
	v := reflect.ValueOf(cfg)
	t := v.Type()
	for i := range t.NumField() {
		k := t.Field(i).Tag.Get("env")
		if k == "" {
			continue
		}
		var val string
		switch f := v.Field(i).Interface().(type) {
		case string:
			val = f
		case []string:
			val = strings.Join(f, ",")
		default:
			val = fmt.Sprint(f)
		}
		kvs = append(kvs, KV{k, val})
	}
	slices.SortFunc(kvs, func(a, b KV) int { return strings.Compare(a.Key, b.Key) })
	return
}

// PrintEnv writes the configuration cfg as a bash script of exports.
func PrintEnv(cfg any, w io.Writer) {
	_, _ = fmt.Fprintln(w, "#!/usr/bin/env bash")
	for _, kv := range EnvKV(cfg) {
		val := kv.Value
		if strings.ContainsAny(val, " \t\"'$") {
			val = strconv.Quote(val)
		}
		_, _ = fmt.Fprintf(w, "export %s=%s\n", kv.Key, val)
	}
}
